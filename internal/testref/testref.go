// Package testref is a deliberately minimal, independent MSM reference used
// only from tests. It is never imported by
// internal/msm or any production package: spec.md §1 explicitly scopes a
// from-scratch reference implementation out of this module's own
// responsibility, so the cross-check oracle here is kept separate and
// trivial on purpose rather than grown into a second production pipeline.
package testref

import (
	"math/big"

	"github.com/cwbudde/webgpu-msm/internal/curve"
	"github.com/cwbudde/webgpu-msm/internal/point"
)

// NaiveMSM computes sum_i scalars[i]*points[i] by plain double-and-add over
// big.Int scalars, with no decomposition, bucketing, or GPU involvement.
// It exists purely to cross-check the production pipeline's output, not to
// be fast.
func NaiveMSM(p curve.Params, points []point.Affine, scalars []*big.Int) point.Jacobian {
	acc := point.Identity(p.BaseField)
	for i, a := range points {
		jac := point.FromAffine(a, p.BaseField)
		acc = acc.Add(scalarMul(jac, scalars[i]))
	}
	return acc
}

// scalarMul computes k*p via big.Int-width double-and-add, independent of
// the production pipeline's fixed-width bigint.Int limb representation.
func scalarMul(p point.Jacobian, k *big.Int) point.Jacobian {
	result := point.Identity(p.X.Modulus())
	base := p
	n := k.BitLen()
	for i := 0; i < n; i++ {
		if k.Bit(i) == 1 {
			result = result.Add(base)
		}
		base = base.Double()
	}
	return result
}
