package shaders

import (
	"strings"
	"testing"

	"github.com/cwbudde/webgpu-msm/internal/curve"
)

func TestRenderEveryKernelForEveryCurve(t *testing.T) {
	kernels := []string{KernelDecomp, KernelTranspose, KernelSMVP, KernelReduce}

	for _, name := range curve.Names() {
		p, err := curve.Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", name, err)
		}
		params := ParamsForCurve(p, 16)

		for _, kernel := range kernels {
			src, err := Render(kernel, params)
			if err != nil {
				t.Fatalf("Render(%s, %s): %v", kernel, name, err)
			}
			if !strings.Contains(src, string(name)) {
				t.Fatalf("Render(%s, %s): curve name missing from rendered source", kernel, name)
			}
			if !strings.Contains(src, "@compute") {
				t.Fatalf("Render(%s, %s): missing @compute entry point", kernel, name)
			}
		}
	}
}

func TestRenderUnknownKernel(t *testing.T) {
	p, err := curve.Lookup(curve.BN254)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if _, err := Render("does-not-exist.wgsl.tmpl", ParamsForCurve(p, 16)); err == nil {
		t.Fatalf("expected ErrRenderFailed")
	}
}
