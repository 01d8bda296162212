// Package msm is the host orchestrator: it validates an MSM call, picks
// the workgroup/chunk geometry for the input size, selects a GPU or
// software backend, and wires DECOMP->TRANSPOSE->SMVP->REDUCE->HORNER
// (internal/decompose, internal/csr, internal/smvp, internal/reduction)
// into a single Jacobian result. Structurally this mirrors the teacher's
// internal/fit/pipeline.go (staged orchestration with slog logging) and
// internal/fit/renderer/backend.go (backend selection with
// construction-time-only fallback).
package msm

import (
	"fmt"
	"log/slog"
	"math/big"

	"github.com/cwbudde/webgpu-msm/internal/curve"
	"github.com/cwbudde/webgpu-msm/internal/gpu"
	"github.com/cwbudde/webgpu-msm/internal/point"
	"github.com/cwbudde/webgpu-msm/internal/reduction"
)

// Backend selects which pipeline implementation runs the MSM.
type Backend string

const (
	BackendAuto Backend = "auto"
	BackendGPU  Backend = "gpu"
	BackendCPU  Backend = "cpu"
)

// Algorithm names the bucket-assignment strategy (§4.9). MSM accepts both
// values, but both run the same CSR/transpose/SMVP pipeline; there is no
// separate Pippenger bucket-assignment path.
type Algorithm string

const (
	AlgorithmCuZK      Algorithm = "cuzk"
	AlgorithmPippenger Algorithm = "pippenger"
)

// Options controls backend/algorithm/geometry selection for one MSM call.
type Options struct {
	Backend   Backend
	Algorithm Algorithm
	// ChunkBits overrides the geometry-table-derived window width when
	// non-zero. Mostly useful for tests that want a small, fast geometry.
	ChunkBits int
	// ReductionStrategy selects the bucket-reduction algorithm (§4.6).
	// Defaults to the running-sum strategy the production shader uses.
	ReductionStrategy reduction.Strategy
}

// DefaultOptions returns the options the CLI and bench harness use unless
// overridden: automatic backend selection, the cuZK pipeline, geometry
// from the input-size tier table.
func DefaultOptions() Options {
	return Options{
		Backend:           BackendAuto,
		Algorithm:         AlgorithmCuZK,
		ReductionStrategy: reduction.StrategyRunningSum,
	}
}

// MSM computes sum_i scalars[i]*points[i] over the named curve. points and
// scalars must have equal, non-zero length; scalars must be non-negative
// and reduced modulo the curve's scalar field.
func MSM(curveName curve.Name, points []point.Affine, scalars []*big.Int, opts Options) (point.Jacobian, error) {
	if len(points) != len(scalars) {
		return point.Jacobian{}, fmt.Errorf("%w: %d points, %d scalars", ErrLengthMismatch, len(points), len(scalars))
	}
	if len(points) == 0 {
		return point.Jacobian{}, ErrEmptyInput
	}

	p, err := curve.Lookup(curveName)
	if err != nil {
		return point.Jacobian{}, fmt.Errorf("msm: %w", err)
	}

	if opts.Algorithm == "" {
		opts.Algorithm = AlgorithmCuZK
	}
	if opts.Algorithm != AlgorithmCuZK && opts.Algorithm != AlgorithmPippenger {
		return point.Jacobian{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, opts.Algorithm)
	}
	if opts.ReductionStrategy == "" {
		opts.ReductionStrategy = reduction.StrategyRunningSum
	}

	tier := GeometryFor(len(points))
	chunkBits := tier.ChunkBits
	if opts.ChunkBits > 0 {
		chunkBits = opts.ChunkBits
	}

	backend := opts.Backend
	if backend == "" {
		backend = BackendAuto
	}

	var rt *gpu.Runtime
	switch backend {
	case BackendCPU:
		// software pipeline, no GPU runtime needed
	case BackendGPU:
		rt, err = gpu.InitWebGPU()
		if err != nil {
			return point.Jacobian{}, fmt.Errorf("%w: %v", ErrGPURequested, err)
		}
	case BackendAuto:
		rt, err = gpu.InitWebGPU()
		if err != nil {
			slog.Info("msm: gpu backend unavailable, falling back to software pipeline", "reason", err)
			rt = nil
		}
	default:
		return point.Jacobian{}, fmt.Errorf("msm: unknown backend %q", backend)
	}

	if rt != nil {
		defer rt.Close()
		result, err := runGPU(rt, p, points, scalars, chunkBits, opts.Algorithm, opts.ReductionStrategy)
		if err != nil {
			// A runtime error on an explicitly-requested or auto-selected GPU
			// backend is surfaced, never silently retried on the software
			// pipeline mid-call (spec §7): the caller already paid the cost
			// of device acquisition, so a failure here is a real fault.
			return point.Jacobian{}, fmt.Errorf("msm: gpu pipeline: %w", err)
		}
		return result, nil
	}

	return runSoftware(p, points, scalars, chunkBits, opts.ReductionStrategy)
}
