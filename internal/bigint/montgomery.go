package bigint

import "math/big"

// N0 computes n0 = -m[0]^-1 mod 2^WordSize, the CIOS reduction constant for
// modulus m. m[0] must be odd (true for every prime-field modulus used here).
func N0(m Int) uint32 {
	const r = uint64(1) << WordSize
	inv := modInverse(uint64(m[0]&WordMask), r)
	return uint32((r - inv) % r)
}

// modInverse returns a^-1 mod m for odd m, via the extended Euclidean
// algorithm on 64-bit operands (r is always 2^13 here, well within range).
func modInverse(a, m uint64) uint64 {
	// a must be invertible mod m (a odd, m a power of two).
	g0, g1 := int64(m), int64(a)
	x0, x1 := int64(0), int64(1)
	for g1 != 0 {
		q := g0 / g1
		g0, g1 = g1, g0-q*g1
		x0, x1 = x1, x0-q*x1
	}
	x0 %= int64(m)
	if x0 < 0 {
		x0 += int64(m)
	}
	return uint64(x0)
}

// MontMul computes the CIOS Montgomery product of a and b modulo m, i.e.
// a*b*R^-1 mod m where R = 2^(WordSize*len(m)). a, b and m must all have the
// same limb count, and n0 must equal N0(m).
func MontMul(a, b, m Int, n0 uint32) Int {
	n := len(m)
	t := make([]uint64, n+2)

	for i := 0; i < n; i++ {
		var carry uint64
		bi := uint64(b[i] & WordMask)
		for j := 0; j < n; j++ {
			v := t[j] + uint64(a[j]&WordMask)*bi + carry
			t[j] = v & uint64(WordMask)
			carry = v >> WordSize
		}
		v := t[n] + carry
		t[n] = v & uint64(WordMask)
		t[n+1] += v >> WordSize

		mi := (t[0] * uint64(n0)) & uint64(WordMask)
		carry = 0
		for j := 0; j < n; j++ {
			v := t[j] + mi*uint64(m[j]&WordMask) + carry
			t[j] = v & uint64(WordMask)
			carry = v >> WordSize
		}
		v = t[n] + carry
		t[n] = v & uint64(WordMask)
		t[n+1] += v >> WordSize

		for j := 0; j <= n; j++ {
			t[j] = t[j+1]
		}
		t[n+1] = 0
	}

	out := New(n)
	for i := 0; i < n; i++ {
		out[i] = uint32(t[i] & uint64(WordMask))
	}
	return CondSub(out, m)
}

// ToMont converts a (an ordinary residue, 0 <= a < m) into Montgomery form,
// given the precomputed constant rSquared = R^2 mod m.
func ToMont(a, m, rSquared Int, n0 uint32) Int {
	return MontMul(a, rSquared, m, n0)
}

// FromMont converts a Montgomery-form value back to an ordinary residue.
func FromMont(a, m Int, n0 uint32) Int {
	one := New(len(m))
	one[0] = 1
	return MontMul(a, one, m, n0)
}

// RSquared computes R^2 mod m, R = 2^(WordSize*len(m)). This is a one-time
// curve-parameter-registration computation, not a per-call hot path, so it
// is computed via math/big rather than reimplementing wide shifts in limbs.
func RSquared(m Int) Int {
	n := len(m)
	bigM := ToBig(m)
	r := new(big.Int).Lsh(big.NewInt(1), uint(WordSize*n))
	rSquared := new(big.Int).Mul(r, r)
	rSquared.Mod(rSquared, bigM)
	return FromBig(rSquared, n)
}
