package decompose

import (
	"math/big"
	"testing"

	"github.com/cwbudde/webgpu-msm/internal/curve"
	"github.com/cwbudde/webgpu-msm/internal/point"
)

func reconstruct(digits SignedDigits, chunkBits int) *big.Int {
	out := new(big.Int)
	for i := len(digits) - 1; i >= 0; i-- {
		out.Lsh(out, uint(chunkBits))
		out.Add(out, big.NewInt(int64(digits[i])))
	}
	return out
}

func TestDecomposeRoundTrip(t *testing.T) {
	p, err := curve.Lookup(curve.BN254)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	cfg := NewConfig(p, 16)

	values := []int64{0, 1, 42, 65535, 1 << 20, (1 << 32) - 1}
	for _, v := range values {
		scalar := big.NewInt(v)
		digits, err := Decompose(scalar, cfg)
		if err != nil {
			t.Fatalf("Decompose(%d): %v", v, err)
		}
		if len(digits) != cfg.NumChunks {
			t.Fatalf("Decompose(%d): got %d digits, want %d", v, len(digits), cfg.NumChunks)
		}
		got := reconstruct(digits, cfg.ChunkBits)
		if got.Cmp(scalar) != 0 {
			t.Fatalf("Decompose(%d): reconstructed %s", v, got)
		}
		for _, d := range digits {
			bound := int32(1) << uint(cfg.ChunkBits-1)
			if d > bound || d < -bound {
				t.Fatalf("Decompose(%d): digit %d out of bias range +/-%d", v, d, bound)
			}
		}
	}
}

func TestConvertPointInfinityIsZero(t *testing.T) {
	p, err := curve.Lookup(curve.BN254)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	limbs := ConvertPoint(point.Affine{IsInfinity: true}, p)
	for _, w := range limbs.X {
		if w != 0 {
			t.Fatalf("infinity point X not zero")
		}
	}
	for _, w := range limbs.Y {
		if w != 0 {
			t.Fatalf("infinity point Y not zero")
		}
	}
}
