package field

import (
	"math/big"
	"testing"

	"github.com/cwbudde/webgpu-msm/internal/bigint"
)

func testModulus(t *testing.T) Modulus {
	t.Helper()
	p, ok := new(big.Int).SetString("21888242871839275222246405745257275088696311157297823662689037894645226208583", 10)
	if !ok {
		t.Fatalf("bad modulus literal")
	}
	n := bigint.NumWords(p.BitLen())
	limbs := bigint.FromBig(p, n)
	return Modulus{
		Limbs:    limbs,
		N0:       bigint.N0(limbs),
		RSquared: bigint.RSquared(limbs),
		NumWords: n,
	}
}

func TestCanonicalRoundTrip(t *testing.T) {
	m := testModulus(t)
	x := bigint.FromBig(big.NewInt(424242), m.NumWords)
	e := FromCanonical(x, m)
	got := e.ToCanonical()
	if bigint.Cmp(got, x) != 0 {
		t.Fatalf("round trip mismatch: got %s want %s", bigint.ToBig(got), bigint.ToBig(x))
	}
}

func TestAddSubNeg(t *testing.T) {
	m := testModulus(t)
	a := FromCanonical(bigint.FromBig(big.NewInt(5), m.NumWords), m)
	b := FromCanonical(bigint.FromBig(big.NewInt(7), m.NumWords), m)

	sum := a.Add(b)
	if bigint.Cmp(sum.ToCanonical(), bigint.FromBig(big.NewInt(12), m.NumWords)) != 0 {
		t.Fatalf("add mismatch")
	}

	diff := a.Sub(b)
	expected := new(big.Int).Sub(big.NewInt(5), big.NewInt(7))
	expected.Mod(expected, bigint.ToBig(m.Limbs))
	if bigint.ToBig(diff.ToCanonical()).Cmp(expected) != 0 {
		t.Fatalf("sub mismatch: got %s want %s", bigint.ToBig(diff.ToCanonical()), expected)
	}

	negA := a.Neg()
	if !negA.Add(a).IsZero() {
		t.Fatalf("neg(a)+a != 0")
	}
}

func TestMulAgainstBigInt(t *testing.T) {
	m := testModulus(t)
	bigM := bigint.ToBig(m.Limbs)

	a := FromCanonical(bigint.FromBig(big.NewInt(111111), m.NumWords), m)
	b := FromCanonical(bigint.FromBig(big.NewInt(222222), m.NumWords), m)

	got := a.Mul(b).ToCanonical()
	want := new(big.Int).Mul(big.NewInt(111111), big.NewInt(222222))
	want.Mod(want, bigM)

	if bigint.ToBig(got).Cmp(want) != 0 {
		t.Fatalf("mul mismatch: got %s want %s", bigint.ToBig(got), want)
	}
}

func TestInverse(t *testing.T) {
	m := testModulus(t)
	a := FromCanonical(bigint.FromBig(big.NewInt(999983), m.NumWords), m)

	inv, err := a.Inverse()
	if err != nil {
		t.Fatalf("inverse error: %v", err)
	}
	if !a.Mul(inv).Equal(One(m)) {
		t.Fatalf("a * a^-1 != 1")
	}

	if _, err := Zero(m).Inverse(); err == nil {
		t.Fatalf("expected error inverting zero")
	}
}
