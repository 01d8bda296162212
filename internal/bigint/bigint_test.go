package bigint

import (
	"math/big"
	"testing"
)

func bn254FpLimbs() (Int, int) {
	p, _ := new(big.Int).SetString("21888242871839275222246405745257275088696311157297823662689037894645226208583", 10)
	n := NumWords(p.BitLen())
	return FromBig(p, n), n
}

func TestFromBigToBigRoundTrip(t *testing.T) {
	p, n := bn254FpLimbs()
	got := ToBig(p)
	want, _ := new(big.Int).SetString("21888242871839275222246405745257275088696311157297823662689037894645226208583", 10)
	if got.Cmp(want) != 0 {
		t.Fatalf("round trip mismatch: got %s want %s (n=%d)", got, want, n)
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	p, n := bn254FpLimbs()
	a := FromBig(big.NewInt(12345), n)
	b := FromBig(big.NewInt(6789), n)

	sum, carry := Add(a, b)
	if carry != 0 {
		t.Fatalf("unexpected carry")
	}
	if ToBig(sum).Cmp(big.NewInt(12345+6789)) != 0 {
		t.Fatalf("add mismatch: got %s", ToBig(sum))
	}

	diff, borrow := Sub(sum, b)
	if borrow != 0 {
		t.Fatalf("unexpected borrow")
	}
	if Cmp(diff, a) != 0 {
		t.Fatalf("sub did not invert add: got %s want %s", ToBig(diff), ToBig(a))
	}

	_ = p
}

func TestMontMulIdentity(t *testing.T) {
	p, n := bn254FpLimbs()
	n0 := N0(p)
	rSquared := RSquared(p)

	a := FromBig(big.NewInt(42), n)
	aMont := ToMont(a, p, rSquared, n0)
	back := FromMont(aMont, p, n0)

	if Cmp(back, a) != 0 {
		t.Fatalf("mont round trip mismatch: got %s want %s", ToBig(back), ToBig(a))
	}
}

func TestMontMulMatchesBigIntMultiplication(t *testing.T) {
	p, n := bn254FpLimbs()
	n0 := N0(p)
	rSquared := RSquared(p)
	bigP := ToBig(p)

	a := FromBig(big.NewInt(123456789), n)
	b := FromBig(big.NewInt(987654321), n)

	aMont := ToMont(a, p, rSquared, n0)
	bMont := ToMont(b, p, rSquared, n0)
	prodMont := MontMul(aMont, bMont, p, n0)
	got := FromMont(prodMont, p, n0)

	want := new(big.Int).Mul(big.NewInt(123456789), big.NewInt(987654321))
	want.Mod(want, bigP)

	if ToBig(got).Cmp(want) != 0 {
		t.Fatalf("montgomery mul mismatch: got %s want %s", ToBig(got), want)
	}
}

func TestBarrettReduceMatchesMod(t *testing.T) {
	p, n := bn254FpLimbs()
	params := NewBarrettParams(p)

	a := FromBig(big.NewInt(987654321987), 2*n)
	got := params.Reduce(a)

	want := new(big.Int).Mod(ToBig(a), ToBig(p))
	if ToBig(got).Cmp(want) != 0 {
		t.Fatalf("barrett mismatch: got %s want %s", ToBig(got), want)
	}
}
