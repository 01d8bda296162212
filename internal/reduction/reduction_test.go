package reduction

import (
	"testing"

	"github.com/cwbudde/webgpu-msm/internal/bigint"
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

func assertEqual(t *testing.T, got, want point.Jacobian, msg string) {
	t.Helper()
	ga, err := got.ToAffine()
	if err != nil {
		t.Fatalf("%s: ToAffine(got): %v", msg, err)
	}
	wa, err := want.ToAffine()
	if err != nil {
		t.Fatalf("%s: ToAffine(want): %v", msg, err)
	}
	if ga.IsInfinity != wa.IsInfinity {
		t.Fatalf("%s: infinity mismatch", msg)
	}
	if ga.IsInfinity {
		return
	}
	if !ga.X.Equal(wa.X) || !ga.Y.Equal(wa.Y) {
		t.Fatalf("%s: mismatch", msg)
	}
}

func TestStrategiesAgree(t *testing.T) {
	g, p := generatorPoint(t)
	buckets := []point.Jacobian{g, g.Double(), g.Double().Double()} // G, 2G, 4G

	want := serial(buckets, p.BaseField)
	gotRunning := runningSum(buckets, p.BaseField)
	gotParallel := parallel(buckets, p.BaseField)

	assertEqual(t, gotRunning, want, "running-sum vs serial")
	assertEqual(t, gotParallel, want, "parallel vs serial")
}

func TestReduceDispatchesStrategy(t *testing.T) {
	g, p := generatorPoint(t)
	buckets := []point.Jacobian{g}

	got, err := Reduce(buckets, StrategyRunningSum, p.BaseField)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	assertEqual(t, got, g, "single-bucket reduce")

	if _, err := Reduce(buckets, Strategy("bogus"), p.BaseField); err == nil {
		t.Fatalf("expected ErrUnknownStrategy")
	}
}

func TestHornerCombinesWindows(t *testing.T) {
	g, p := generatorPoint(t)
	chunkBits := 4
	windows := []point.Jacobian{g, g, g} // three windows, all equal to G

	got := Horner(windows, chunkBits, p.BaseField)

	// result = ((G*2^4 + G)*2^4 + G) = G*(2^8 + 2^4 + 1)
	k := int64(1)<<uint(2*chunkBits) + int64(1)<<uint(chunkBits) + 1
	want := g.ScalarMulNonNeg(k)

	assertEqual(t, got, want, "horner combine")
}
