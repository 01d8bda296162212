// Package decompose implements the DECOMP stage of the cuZK pipeline:
// splitting each scalar into fixed-width signed digits (one per subtask)
// and converting affine points into the on-device limb layout consumed by
// the SMVP kernel.
package decompose

import (
	"fmt"
	"math/big"

	"github.com/cwbudde/webgpu-msm/internal/bigint"
	"github.com/cwbudde/webgpu-msm/internal/curve"
	"github.com/cwbudde/webgpu-msm/internal/point"
)

// Config controls how a scalar field element is split into signed digits.
type Config struct {
	// ChunkBits is the window width in bits (the "chunk size" of spec §4.3).
	ChunkBits int
	// NumChunks is the number of windows covering the scalar field's bit
	// length: ceil(ScalarField.BitLen / ChunkBits).
	NumChunks int
}

// NewConfig derives a Config covering the full bit length of the scalar
// field of p with the given window width.
func NewConfig(p curve.Params, chunkBits int) Config {
	bits := p.R.BitLen()
	numChunks := (bits + chunkBits - 1) / chunkBits
	return Config{ChunkBits: chunkBits, NumChunks: numChunks}
}

// SignedDigits is the per-subtask signed-digit decomposition of one scalar.
// Each entry is in [-2^(ChunkBits-1), 2^(ChunkBits-1)], biased so a negative
// digit means "subtract this bucket's point instead of adding it" (spec's
// signed bucket index).
type SignedDigits []int32

// Decompose splits scalar (0 <= scalar < r) into cfg.NumChunks signed
// digits via the carry-propagating bias transform: a window value w in
// [0, 2^ChunkBits) at or above the bias 2^(ChunkBits-1) is rewritten as w-2^ChunkBits
// with a carry of 1 into the next-more-significant window.
func Decompose(scalar *big.Int, cfg Config) (SignedDigits, error) {
	if scalar.Sign() < 0 {
		return nil, fmt.Errorf("%w: scalar must be non-negative", ErrInvalidScalar)
	}

	digits := make(SignedDigits, cfg.NumChunks)
	windowMask := new(big.Int).Lsh(big.NewInt(1), uint(cfg.ChunkBits))
	windowMask.Sub(windowMask, big.NewInt(1))
	bias := int64(1) << uint(cfg.ChunkBits-1)
	base := int64(1) << uint(cfg.ChunkBits)

	tmp := new(big.Int).Set(scalar)
	var carry int64
	for i := 0; i < cfg.NumChunks; i++ {
		window := new(big.Int).And(tmp, windowMask)
		tmp.Rsh(tmp, uint(cfg.ChunkBits))

		w := window.Int64() + carry
		if w >= bias {
			digits[i] = int32(w - base)
			carry = 1
		} else {
			digits[i] = int32(w)
			carry = 0
		}
	}
	// A carry left over after the most-significant window has no digit to
	// go into, so it is reported as an error rather than dropped. For the
	// registered curves' scalar fields, NewConfig leaves enough headroom in
	// the top window that this does not happen for scalars below r.
	if carry != 0 {
		return nil, fmt.Errorf("%w: carry overflow, increase NumChunks", ErrInvalidScalar)
	}
	return digits, nil
}

// PointLimbs is the flattened on-device representation of one affine point:
// X and Y coordinate limbs, each NumWords long, in Montgomery form.
type PointLimbs struct {
	X, Y bigint.Int
}

// ConvertPoint converts an affine point into its on-device limb layout.
// The point at infinity is encoded per spec §3 as X=0, Y=0.
func ConvertPoint(a point.Affine, p curve.Params) PointLimbs {
	if a.IsInfinity {
		zero := bigint.New(p.NumWords)
		return PointLimbs{X: zero, Y: zero.Clone()}
	}
	return PointLimbs{X: a.X.Limbs(), Y: a.Y.Limbs()}
}

// ConvertPoints batch-converts affine points, as the DECOMP stage does for
// an entire input array before writing it to a GPU storage buffer.
func ConvertPoints(points []point.Affine, p curve.Params) []PointLimbs {
	out := make([]PointLimbs, len(points))
	for i, a := range points {
		out[i] = ConvertPoint(a, p)
	}
	return out
}

// DecomposeScalars batch-decomposes scalars (canonical, big-endian free —
// ordinary non-negative big.Int values less than the scalar field modulus).
func DecomposeScalars(scalars []*big.Int, cfg Config) ([]SignedDigits, error) {
	out := make([]SignedDigits, len(scalars))
	for i, s := range scalars {
		d, err := Decompose(s, cfg)
		if err != nil {
			return nil, fmt.Errorf("scalar %d: %w", i, err)
		}
		out[i] = d
	}
	return out, nil
}
