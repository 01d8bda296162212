package gpu

import "errors"

var (
	// ErrBackendUnavailable indicates the binary was built without the
	// 'gpu' build tag, or the compute system could not be opened on the
	// acquired GPU.
	ErrBackendUnavailable = errors.New("gpu: backend unavailable")
	// ErrNoAdapters indicates no compute-capable adapter could be acquired.
	ErrNoAdapters = errors.New("gpu: no adapters found")
	// ErrDeviceLost is surfaced when the device reports a loss mid-pipeline.
	// Per spec §7 this is surfaced to the caller, never silently retried.
	ErrDeviceLost = errors.New("gpu: device lost")
	// ErrMappingFailed is surfaced when a buffer map-async callback reports
	// failure during readback.
	ErrMappingFailed = errors.New("gpu: buffer mapping failed")
	// ErrShaderCompileFailed wraps a shader module compilation/validation
	// error reported by the device.
	ErrShaderCompileFailed = errors.New("gpu: shader compilation failed")
)
