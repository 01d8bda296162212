package msm

import "errors"

var (
	// ErrLengthMismatch is returned when points and scalars have different
	// lengths.
	ErrLengthMismatch = errors.New("msm: points and scalars length mismatch")
	// ErrEmptyInput is returned for a zero-length MSM call.
	ErrEmptyInput = errors.New("msm: empty input")
	// ErrUnknownAlgorithm is returned for an Options.Algorithm this module
	// does not implement.
	ErrUnknownAlgorithm = errors.New("msm: unknown algorithm")
	// ErrGPURequested is returned when Options.Backend is forced to "gpu"
	// but no GPU runtime could be acquired. Per the error-handling design,
	// an explicit backend request that cannot be honored is surfaced, not
	// silently downgraded.
	ErrGPURequested = errors.New("msm: gpu backend requested but unavailable")
)
