package smvp

import (
	"testing"

	"github.com/cwbudde/webgpu-msm/internal/bigint"
	"github.com/cwbudde/webgpu-msm/internal/csr"
	"github.com/cwbudde/webgpu-msm/internal/curve"
	"github.com/cwbudde/webgpu-msm/internal/field"
	"github.com/cwbudde/webgpu-msm/internal/point"
)

func generatorPoint(t *testing.T) (point.Jacobian, curve.Params) {
	t.Helper()
	p, err := curve.Lookup(curve.BN254)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	m := p.BaseField
	gx := field.FromCanonical(bigint.FromBig(p.Gx, m.NumWords), m)
	gy := field.FromCanonical(bigint.FromBig(p.Gy, m.NumWords), m)
	return point.FromAffine(point.Affine{X: gx, Y: gy}, m), p
}

func TestComputeSumsBucketsWithSign(t *testing.T) {
	g, p := generatorPoint(t)
	points := []point.Jacobian{g, g, g}

	// bucket 0 gets points 0 and 1 positively (-> 2G), bucket 1 gets point 2 negatively (-> -G)
	entries := []csr.Entry{
		{Row: 0, Col: 0, Sign: 1},
		{Row: 1, Col: 0, Sign: 1},
		{Row: 2, Col: 1, Sign: -1},
	}
	m, err := csr.BuildCSR(3, 2, entries)
	if err != nil {
		t.Fatalf("BuildCSR: %v", err)
	}
	tr := m.Transpose()

	buckets, err := Compute(tr, points, p.BaseField)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(buckets))
	}

	want0 := g.Double()
	a0, _ := buckets[0].ToAffine()
	aw0, _ := want0.ToAffine()
	if !a0.X.Equal(aw0.X) || !a0.Y.Equal(aw0.Y) {
		t.Fatalf("bucket 0 != 2G")
	}

	want1 := g.Neg()
	a1, _ := buckets[1].ToAffine()
	aw1, _ := want1.ToAffine()
	if !a1.X.Equal(aw1.X) || !a1.Y.Equal(aw1.Y) {
		t.Fatalf("bucket 1 != -G")
	}
}

func TestComputeRejectsOutOfRangePointIndex(t *testing.T) {
	_, p := generatorPoint(t)
	entries := []csr.Entry{{Row: 0, Col: 0, Sign: 1}}
	m, err := csr.BuildCSR(1, 1, entries)
	if err != nil {
		t.Fatalf("BuildCSR: %v", err)
	}
	tr := m.Transpose()

	if _, err := Compute(tr, []point.Jacobian{}, p.BaseField); err == nil {
		t.Fatalf("expected out-of-range error")
	}
}
