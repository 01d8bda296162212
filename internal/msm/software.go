package msm

import (
	"fmt"
	"log/slog"
	"math/big"

	"github.com/cwbudde/webgpu-msm/internal/csr"
	"github.com/cwbudde/webgpu-msm/internal/curve"
	"github.com/cwbudde/webgpu-msm/internal/decompose"
	"github.com/cwbudde/webgpu-msm/internal/point"
	"github.com/cwbudde/webgpu-msm/internal/reduction"
	"github.com/cwbudde/webgpu-msm/internal/smvp"
)

// runSoftware executes the full cuZK pipeline (DECOMP, per-chunk
// TRANSPOSE/SMVP/REDUCE, then HORNER) in pure Go, using exactly the same
// primitives (internal/bigint, internal/field, internal/point) the WGSL
// shader templates encode. It runs when the CPU backend is selected, or when
// BackendAuto finds no GPU runtime.
func runSoftware(p curve.Params, points []point.Affine, scalars []*big.Int, chunkBits int, strategy reduction.Strategy) (point.Jacobian, error) {
	cfg := decompose.NewConfig(p, chunkBits)
	numBuckets := 1 << uint(chunkBits-1)

	slog.Debug("msm: software pipeline start",
		"curve", p.Name, "n", len(points), "chunk_bits", chunkBits,
		"num_chunks", cfg.NumChunks, "num_buckets", numBuckets)

	digitsPerPoint, err := decompose.DecomposeScalars(scalars, cfg)
	if err != nil {
		return point.Jacobian{}, fmt.Errorf("decompose: %w", err)
	}

	jacPoints := make([]point.Jacobian, len(points))
	for i, a := range points {
		jacPoints[i] = point.FromAffine(a, p.BaseField)
	}

	windows := make([]point.Jacobian, cfg.NumChunks)
	for c := 0; c < cfg.NumChunks; c++ {
		entries := make([]csr.Entry, 0, len(points))
		for i, digits := range digitsPerPoint {
			digit := digits[c]
			if digit == 0 {
				continue
			}
			bucket := digit
			sign := int8(1)
			if bucket < 0 {
				bucket = -bucket
				sign = -1
			}
			entries = append(entries, csr.Entry{Row: int32(i), Col: bucket - 1, Sign: sign})
		}

		matrix, err := csr.BuildCSR(len(points), numBuckets, entries)
		if err != nil {
			return point.Jacobian{}, fmt.Errorf("chunk %d: transpose build: %w", c, err)
		}
		transposed := matrix.Transpose()

		buckets, err := smvp.Compute(transposed, jacPoints, p.BaseField)
		if err != nil {
			return point.Jacobian{}, fmt.Errorf("chunk %d: smvp: %w", c, err)
		}

		windowTotal, err := reduction.Reduce(buckets, strategy, p.BaseField)
		if err != nil {
			return point.Jacobian{}, fmt.Errorf("chunk %d: reduce: %w", c, err)
		}
		windows[c] = windowTotal

		slog.Debug("msm: chunk reduced", "chunk", c, "entries", len(entries))
	}

	result := reduction.Horner(windows, chunkBits, p.BaseField)
	slog.Debug("msm: software pipeline done", "curve", p.Name)
	return result, nil
}
