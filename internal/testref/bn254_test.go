package testref

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"

	"github.com/cwbudde/webgpu-msm/internal/bigint"
	"github.com/cwbudde/webgpu-msm/internal/point"
)

func TestBN254NaiveMSMAgreesWithGnarkCrypto(t *testing.T) {
	g, p := bn254Generator(t)
	points := []point.Affine{g, g}
	scalars := []*big.Int{big.NewInt(7), big.NewInt(11)}

	ours := NaiveMSM(p, points, scalars)
	oursAff, err := ours.ToAffine()
	if err != nil {
		t.Fatalf("ToAffine: %v", err)
	}

	theirs := BN254NaiveMSM(points, scalars)

	var wantX, wantY fp.Element
	wantX.SetBigInt(bigint.ToBig(oursAff.X.ToCanonical()))
	wantY.SetBigInt(bigint.ToBig(oursAff.Y.ToCanonical()))

	if !theirs.X.Equal(&wantX) || !theirs.Y.Equal(&wantY) {
		t.Fatalf("BN254NaiveMSM disagrees with internal/point pipeline")
	}
}
