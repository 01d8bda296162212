//go:build gpu

// Package gpu provides the WebGPU device layer MSM dispatches its compute
// kernels through. This file is the real implementation, built only with
// '-tags gpu' — mirroring the teacher's internal/fit/gpu build-tag split
// (opencl_runtime_gpu.go vs opencl_runtime_stub.go), but targeting
// cogentcore.org/core/gpu's WebGPU-backed compute system instead of cgo
// OpenCL bindings.
package gpu

import (
	"fmt"
	"log/slog"
	"unsafe"

	cgpu "cogentcore.org/core/gpu"
)

// Runtime owns one compute GPU, its compute system, and the shader
// pipelines registered against it for the lifetime of a single MSM call.
type Runtime struct {
	gp   *cgpu.GPU
	sy   *cgpu.ComputeSystem
	info AdapterInfo
}

// InitWebGPU acquires a compute-capable GPU and opens a compute system on
// it. Failure here is a construction-time fallback signal for the caller
// (internal/msm selects the software pipeline instead); it is never
// retried internally.
func InitWebGPU() (*Runtime, error) {
	gp := cgpu.NewComputeGPU()
	if gp == nil {
		return nil, fmt.Errorf("%w: no compute-capable adapter", ErrNoAdapters)
	}

	sy := cgpu.NewComputeSystem(gp, "msm")
	if sy == nil {
		gp.Release()
		return nil, fmt.Errorf("%w: failed to open compute system", ErrBackendUnavailable)
	}

	info := AdapterInfo{
		Name:       gp.DeviceName,
		Backend:    "webgpu",
		DeviceType: "unknown",
	}
	slog.Info("gpu runtime initialized", "device", info.Name)

	return &Runtime{gp: gp, sy: sy, info: info}, nil
}

// Close releases the compute system and GPU handle.
func (r *Runtime) Close() {
	if r == nil {
		return
	}
	if r.sy != nil {
		r.sy.Release()
	}
	if r.gp != nil {
		r.gp.Release()
	}
}

// Info returns the adapter description selected at InitWebGPU time.
func (r *Runtime) Info() AdapterInfo {
	return r.info
}

// CompileKernel compiles WGSL source into a named compute pipeline on this
// runtime's compute system. A compile/validation failure is surfaced as
// ErrShaderCompileFailed, never silently skipped.
func (r *Runtime) CompileKernel(name, wgsl string) (*cgpu.ComputePipeline, error) {
	pl := cgpu.NewComputePipelineShaderSource(wgsl, name, r.sy)
	if pl == nil {
		return nil, fmt.Errorf("%w: kernel %q", ErrShaderCompileFailed, name)
	}
	return pl, nil
}

// DecompItem is the single-buffer, struct-of-arrays record the DECOMP
// kernel dispatches over: one invocation per point, reading scalar limbs
// and point limbs and writing signed digits plus the (unchanged) point
// limbs back into the same record. Mirrors the one-buffer-in-one-buffer-out
// compute shape demonstrated by the cogentcore/core gpu compute example
// (a single AddStruct value array read and written by one pipeline).
type DecompItem struct {
	ScalarLimbs [MaxLimbs]uint32
	PointX      [MaxLimbs]uint32
	PointY      [MaxLimbs]uint32
	Digits      [MaxChunks]int32
}

// MaxLimbs/MaxChunks bound the fixed-size arrays DecompItem can carry,
// covering both registered curves' widest field (BN254/Pallas both fit
// well under these bounds at WordSize=13).
const (
	MaxLimbs  = 24
	MaxChunks = 32
)

// RunDecomp dispatches the DECOMP kernel over items in place, following the
// grounded example's round trip: allocate one storage value per item,
// upload, dispatch, copy back to host, read back.
func (r *Runtime) RunDecomp(pl *cgpu.ComputePipeline, items []DecompItem, workgroupSize int) error {
	sgp := r.sy.Vars().AddGroup(cgpu.Storage)
	dv := sgp.AddStruct("DecompItem", int(unsafe.Sizeof(DecompItem{})), len(items), cgpu.ComputeShader)
	sgp.SetNValues(1)
	r.sy.Config()

	dvl := dv.Values.Values[0]
	cgpu.SetValueFrom(dvl, items)

	ce, err := r.sy.BeginComputePass()
	if err != nil {
		return fmt.Errorf("%w: begin compute pass: %v", ErrDeviceLost, err)
	}
	pl.Dispatch1D(ce, len(items), workgroupSize)
	ce.End()
	dvl.GPUToRead(r.sy.CommandEncoder)
	r.sy.EndComputePass()

	dvl.ReadSync()
	cgpu.ReadToBytes(dvl, items)
	return nil
}

// EnumerateAdapters reports the adapters WebGPU instance creation can see.
// cogentcore.org/core/gpu does not expose a general enumeration API
// distinct from "the GPU this process would bind to" (unlike OpenCL's
// platform/device matrix the teacher enumerates), so this reports the one
// adapter InitWebGPU would select.
func EnumerateAdapters() ([]AdapterInfo, error) {
	gp := cgpu.NewComputeGPU()
	if gp == nil {
		return nil, fmt.Errorf("%w", ErrNoAdapters)
	}
	defer gp.Release()
	return []AdapterInfo{{Name: gp.DeviceName, Backend: "webgpu", DeviceType: "unknown"}}, nil
}
