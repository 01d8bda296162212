// Package bigint implements fixed-width, 13-bit-limb integer arithmetic
// matching the on-device representation used by the WGSL field kernels.
// Every limb occupies a uint32 but only its low WordSize bits are ever
// significant; this mirrors the u32 storage the shaders use for a 13-bit
// logical word, so the CPU software pipeline and the GPU pipeline agree
// bit-for-bit on intermediate limb layout.
package bigint

import "math/big"

const (
	// WordSize is the number of significant bits per limb.
	WordSize = 13
	// WordMask isolates the significant bits of a limb.
	WordMask = (uint32(1) << WordSize) - 1
)

// Int is a little-endian, fixed-width sequence of WordSize-bit limbs.
type Int []uint32

// NumWords returns the number of WordSize-bit limbs needed to hold a value
// with the given bit length.
func NumWords(bits int) int {
	return (bits + WordSize - 1) / WordSize
}

// New returns a zero-valued Int with the given number of limbs.
func New(numWords int) Int {
	return make(Int, numWords)
}

// Clone returns an independent copy of a.
func (a Int) Clone() Int {
	b := make(Int, len(a))
	copy(b, a)
	return b
}

// FromBig converts x into a numWords-limb Int. x must be non-negative.
func FromBig(x *big.Int, numWords int) Int {
	out := New(numWords)
	tmp := new(big.Int).Set(x)
	mask := big.NewInt(int64(WordMask))
	for i := 0; i < numWords; i++ {
		word := new(big.Int).And(tmp, mask)
		out[i] = uint32(word.Uint64())
		tmp.Rsh(tmp, WordSize)
	}
	return out
}

// ToBig reconstructs the big.Int value represented by a.
func ToBig(a Int) *big.Int {
	out := new(big.Int)
	for i := len(a) - 1; i >= 0; i-- {
		out.Lsh(out, WordSize)
		out.Or(out, big.NewInt(int64(a[i]&WordMask)))
	}
	return out
}

// IsZero reports whether every limb of a is zero.
func IsZero(a Int) bool {
	for _, w := range a {
		if w != 0 {
			return false
		}
	}
	return true
}

// Cmp compares a and b as unsigned integers of equal width.
func Cmp(a, b Int) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Add computes a+b, returning the sum (same width as a) and the final
// carry-out limb (0 or 1).
func Add(a, b Int) (Int, uint32) {
	n := len(a)
	sum := New(n)
	var carry uint32
	for i := 0; i < n; i++ {
		v := a[i] + b[i] + carry
		sum[i] = v & WordMask
		carry = v >> WordSize
	}
	return sum, carry
}

// Sub computes a-b, returning the difference and the final borrow (0 or 1).
func Sub(a, b Int) (Int, uint32) {
	n := len(a)
	diff := New(n)
	var borrow uint32
	for i := 0; i < n; i++ {
		v := a[i] - b[i] - borrow
		if a[i] < b[i]+borrow {
			diff[i] = (v + (1 << WordSize)) & WordMask
			borrow = 1
		} else {
			diff[i] = v & WordMask
			borrow = 0
		}
	}
	return diff, borrow
}

// CondSub subtracts m from a if a >= m, returning the reduced value.
// Used after modular add/sub to fold a single modulus-width overflow.
func CondSub(a, m Int) Int {
	if Cmp(a, m) >= 0 {
		diff, _ := Sub(a, m)
		return diff
	}
	return a.Clone()
}
