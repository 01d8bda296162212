// Package shaders renders the WGSL compute kernel templates used by
// internal/gpu, parameterized per curve (limb width, word count) and per
// pipeline configuration (chunk width, bucket count, workgroup geometry).
// It generalizes the teacher's embedded-kernel-source-as-a-constant-string
// pattern (internal/fit/renderer_opencl_gpu.go's openclKernelSource) into a
// templated family covering every curve this module registers.
package shaders

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/cwbudde/webgpu-msm/internal/bigint"
	"github.com/cwbudde/webgpu-msm/internal/curve"
)

//go:embed templates/*.wgsl.tmpl
var templatesFS embed.FS

var compiled = template.Must(template.ParseFS(templatesFS, "templates/*.wgsl.tmpl"))

// Kernel names, one per template file.
const (
	KernelDecomp    = "decomp.wgsl.tmpl"
	KernelTranspose = "transpose.wgsl.tmpl"
	KernelSMVP      = "smvp.wgsl.tmpl"
	KernelReduce    = "reduce.wgsl.tmpl"
)

// Params bundles every value a template may reference. Not every template
// uses every field.
type Params struct {
	CurveName     curve.Name
	NumWords      int
	WordSize      int
	WordMask      uint32
	ChunkBits     int
	NumChunks     int
	ChunkBias     int32
	NumBuckets    int
	Strategy      string
	WorkgroupSize int
}

// ParamsForCurve derives Params for curve p and window width chunkBits:
// the curve fields, plus NumChunks, ChunkBias and NumBuckets computed from
// chunkBits. WorkgroupSize defaults to 64 and Strategy is left empty; the
// caller overrides both as needed.
func ParamsForCurve(p curve.Params, chunkBits int) Params {
	numChunks := (p.R.BitLen() + chunkBits - 1) / chunkBits
	return Params{
		CurveName:     p.Name,
		NumWords:      p.NumWords,
		WordSize:      p.WordSize,
		WordMask:      bigint.WordMask,
		ChunkBits:     chunkBits,
		NumChunks:     numChunks,
		ChunkBias:     int32(1) << uint(chunkBits-1),
		NumBuckets:    1 << uint(chunkBits-1),
		WorkgroupSize: 64,
	}
}

// Render executes the named kernel template against params, returning the
// WGSL source text ready for shader-module compilation.
func Render(kernel string, params Params) (string, error) {
	var buf bytes.Buffer
	if err := compiled.ExecuteTemplate(&buf, kernel, params); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRenderFailed, kernel, err)
	}
	return buf.String(), nil
}
