package testref

import (
	"math/big"

	bn254ecc "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/cwbudde/webgpu-msm/internal/bigint"
	"github.com/cwbudde/webgpu-msm/internal/point"
)

// BN254NaiveMSM cross-checks a BN254 MSM result against gnark-crypto's own
// G1 scalar multiplication and addition, independent of every primitive
// this module defines (internal/bigint, internal/field, internal/point).
// Grounded on the gnark-crypto usage idiom in
// parsdao-pars/zk/pedersen.go (ScalarMultiplication + BigInt + Jacobian
// accumulation).
func BN254NaiveMSM(points []point.Affine, scalars []*big.Int) bn254ecc.G1Affine {
	var acc bn254ecc.G1Jac
	for i, a := range points {
		var g1 bn254ecc.G1Affine
		g1.X.SetBigInt(bigint.ToBig(a.X.ToCanonical()))
		g1.Y.SetBigInt(bigint.ToBig(a.Y.ToCanonical()))

		var s fr.Element
		s.SetBigInt(scalars[i])

		var scaled bn254ecc.G1Affine
		scaled.ScalarMultiplication(&g1, s.BigInt(new(big.Int)))

		var scaledJac bn254ecc.G1Jac
		scaledJac.FromAffine(&scaled)
		acc.AddAssign(&scaledJac)
	}

	var result bn254ecc.G1Affine
	result.FromJacobian(&acc)
	return result
}
