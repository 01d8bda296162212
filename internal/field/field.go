// Package field implements Montgomery-domain prime-field arithmetic on top
// of internal/bigint, generic over a curve.Params modulus. Every Element
// lives in Montgomery form so that Mul is a single CIOS step, matching the
// representation the WGSL field kernels operate on.
package field

import (
	"fmt"
	"math/big"

	"github.com/cwbudde/webgpu-msm/internal/bigint"
)

// Modulus is the subset of curve.Params that field arithmetic needs. Kept
// narrow so this package does not import internal/curve (which itself will
// depend on field for constant derivation).
type Modulus struct {
	Limbs    bigint.Int
	N0       uint32
	RSquared bigint.Int
	NumWords int
}

// Element is a field element in Montgomery form.
type Element struct {
	limbs bigint.Int
	m     Modulus
}

// Zero returns the additive identity for modulus m.
func Zero(m Modulus) Element {
	return Element{limbs: bigint.New(m.NumWords), m: m}
}

// One returns the multiplicative identity for modulus m, in Montgomery form.
func One(m Modulus) Element {
	one := bigint.New(m.NumWords)
	one[0] = 1
	return FromCanonical(one, m)
}

// FromCanonical converts an ordinary residue (little-endian limbs, not in
// Montgomery form) into an Element.
func FromCanonical(x bigint.Int, m Modulus) Element {
	return Element{limbs: bigint.ToMont(x, m.Limbs, m.RSquared, m.N0), m: m}
}

// ToCanonical returns the ordinary (non-Montgomery) residue of e.
func (e Element) ToCanonical() bigint.Int {
	return bigint.FromMont(e.limbs, e.m.Limbs, e.m.N0)
}

// Limbs exposes the raw Montgomery-domain limbs, e.g. for writing into a
// GPU storage buffer.
func (e Element) Limbs() bigint.Int {
	return e.limbs.Clone()
}

// Modulus returns the field modulus e is defined over.
func (e Element) Modulus() Modulus {
	return e.m
}

// FromMontgomeryLimbs wraps limbs already known to be in Montgomery form,
// e.g. read back from a GPU buffer.
func FromMontgomeryLimbs(limbs bigint.Int, m Modulus) Element {
	return Element{limbs: limbs.Clone(), m: m}
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return bigint.IsZero(e.limbs)
}

// Equal reports whether e and other represent the same field element.
func (e Element) Equal(other Element) bool {
	return bigint.Cmp(e.limbs, other.limbs) == 0
}

// Add returns e+other mod p.
func (e Element) Add(other Element) Element {
	sum, _ := bigint.Add(e.limbs, other.limbs)
	return Element{limbs: bigint.CondSub(sum, e.m.Limbs), m: e.m}
}

// Sub returns e-other mod p.
func (e Element) Sub(other Element) Element {
	if bigint.Cmp(e.limbs, other.limbs) >= 0 {
		diff, _ := bigint.Sub(e.limbs, other.limbs)
		return Element{limbs: diff, m: e.m}
	}
	padded, _ := bigint.Add(e.limbs, e.m.Limbs)
	diff, _ := bigint.Sub(padded, other.limbs)
	return Element{limbs: diff, m: e.m}
}

// Neg returns -e mod p.
func (e Element) Neg() Element {
	return Zero(e.m).Sub(e)
}

// Mul returns e*other mod p via CIOS Montgomery multiplication.
func (e Element) Mul(other Element) Element {
	return Element{limbs: bigint.MontMul(e.limbs, other.limbs, e.m.Limbs, e.m.N0), m: e.m}
}

// Square returns e*e mod p.
func (e Element) Square() Element {
	return e.Mul(e)
}

// Inverse returns e^-1 mod p via Fermat's little theorem (p-2 exponent).
// Not a hot-path operation — used only at the Jacobian-to-affine conversion
// boundary and in test vector generation, so a square-and-multiply over the
// canonical modulus-minus-2 exponent is appropriate rather than a
// binary-GCD inversion kernel.
func (e Element) Inverse() (Element, error) {
	if e.IsZero() {
		return Element{}, fmt.Errorf("field: inverse of zero element")
	}
	exponent := new(big.Int).Sub(bigint.ToBig(e.m.Limbs), big.NewInt(2))
	pMinus2 := bigint.FromBig(exponent, e.m.NumWords)
	result := One(e.m)
	base := e
	for i := 0; i < len(pMinus2)*bigint.WordSize; i++ {
		word := pMinus2[i/bigint.WordSize]
		bit := (word >> uint(i%bigint.WordSize)) & 1
		if bit == 1 {
			result = result.Mul(base)
		}
		base = base.Square()
	}
	return result, nil
}
