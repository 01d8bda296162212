//go:build !gpu

// Package gpu's stub build: returns ErrBackendUnavailable from every entry
// point so callers (internal/msm) fall back to the software pipeline. This
// mirrors the teacher's internal/fit/gpu/opencl_runtime_stub.go.
package gpu

// Runtime is a placeholder when the binary is built without '-tags gpu'.
type Runtime struct{}

// InitWebGPU always fails in the stub build.
func InitWebGPU() (*Runtime, error) {
	return nil, ErrBackendUnavailable
}

// Close is a no-op on the stub Runtime.
func (r *Runtime) Close() {}

// Info returns a zero-value AdapterInfo on the stub Runtime.
func (r *Runtime) Info() AdapterInfo {
	return AdapterInfo{}
}

// EnumerateAdapters always fails in the stub build.
func EnumerateAdapters() ([]AdapterInfo, error) {
	return nil, ErrBackendUnavailable
}
