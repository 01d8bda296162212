// Package point implements Jacobian and affine short-Weierstrass point
// arithmetic generic over a curve.Params base field, matching the
// representation and formulas the WGSL point-arithmetic kernels use
// (add-2007-bl, dbl-2009-l).
package point

import (
	"github.com/cwbudde/webgpu-msm/internal/field"
)

// Affine is a point in affine coordinates. The point at infinity is
// represented by IsInfinity=true; X/Y are undefined in that case.
type Affine struct {
	X, Y       field.Element
	IsInfinity bool
}

// Jacobian is a point in Jacobian projective coordinates (X, Y, Z) such that
// the affine point is (X/Z^2, Y/Z^3). Z=0 represents the point at infinity.
type Jacobian struct {
	X, Y, Z field.Element
}

// Identity returns the Jacobian point at infinity for base field m.
func Identity(m field.Modulus) Jacobian {
	return Jacobian{X: field.One(m), Y: field.One(m), Z: field.Zero(m)}
}

// IsIdentity reports whether j is the point at infinity.
func (j Jacobian) IsIdentity() bool {
	return j.Z.IsZero()
}

// FromAffine lifts an affine point into Jacobian coordinates over base
// field m.
func FromAffine(a Affine, m field.Modulus) Jacobian {
	if a.IsInfinity {
		return Identity(m)
	}
	return Jacobian{X: a.X, Y: a.Y, Z: field.One(m)}
}

// ToAffine converts j back to affine coordinates. Returns the identity
// affine point (IsInfinity=true) if j is the point at infinity.
func (j Jacobian) ToAffine() (Affine, error) {
	if j.IsIdentity() {
		return Affine{IsInfinity: true}, nil
	}
	zInv, err := j.Z.Inverse()
	if err != nil {
		return Affine{}, err
	}
	zInv2 := zInv.Square()
	zInv3 := zInv2.Mul(zInv)
	return Affine{X: j.X.Mul(zInv2), Y: j.Y.Mul(zInv3)}, nil
}

// Double computes 2*j using the dbl-2009-l formulas (a=0 short Weierstrass).
func (j Jacobian) Double() Jacobian {
	if j.IsIdentity() || j.Y.IsZero() {
		return Identity(j.Z.Modulus())
	}

	a := j.X.Square()         // A = X1^2
	b := j.Y.Square()         // B = Y1^2
	c := b.Square()           // C = B^2

	xPlusB := j.X.Add(b)
	t := xPlusB.Square()
	t = t.Sub(a).Sub(c)
	d := t.Add(t) // D = 2*((X1+B)^2-A-C)

	e := a.Add(a).Add(a) // E = 3*A
	f := e.Square()      // F = E^2

	x3 := f.Sub(d).Sub(d)

	eightC := c.Add(c)
	eightC = eightC.Add(eightC)
	eightC = eightC.Add(eightC)
	y3 := e.Mul(d.Sub(x3)).Sub(eightC)

	yz := j.Y.Mul(j.Z)
	z3 := yz.Add(yz)

	return Jacobian{X: x3, Y: y3, Z: z3}
}

// Add computes j+other using the add-2007-bl formulas. Handles both operands
// being the identity, and the doubling case (other == j, tested via field
// equality rather than pointer identity since callers pass values).
func (j Jacobian) Add(other Jacobian) Jacobian {
	if j.IsIdentity() {
		return other
	}
	if other.IsIdentity() {
		return j
	}

	z1z1 := j.Z.Square()
	z2z2 := other.Z.Square()

	u1 := j.X.Mul(z2z2)
	u2 := other.X.Mul(z1z1)

	z1Cubed := j.Z.Mul(z1z1)
	z2Cubed := other.Z.Mul(z2z2)
	s1 := j.Y.Mul(z2Cubed)
	s2 := other.Y.Mul(z1Cubed)

	if u1.Equal(u2) {
		if !s1.Equal(s2) {
			return Identity(j.Z.Modulus())
		}
		return j.Double()
	}

	h := u2.Sub(u1)
	i := h.Add(h).Square()
	jj := h.Mul(i)
	r := s2.Sub(s1)
	r = r.Add(r)
	v := u1.Mul(i)

	x3 := r.Square().Sub(jj).Sub(v).Sub(v)
	y3 := r.Mul(v.Sub(x3)).Sub(s1.Mul(jj).Add(s1.Mul(jj)))

	zSum := j.Z.Add(other.Z)
	z3 := zSum.Square().Sub(z1z1).Sub(z2z2).Mul(h)

	return Jacobian{X: x3, Y: y3, Z: z3}
}

// Neg returns -j (same X/Z, negated Y).
func (j Jacobian) Neg() Jacobian {
	return Jacobian{X: j.X, Y: j.Y.Neg(), Z: j.Z}
}

// DoubleN returns 2^n * j, applying Double n times. Used by Horner combine
// to shift a running total by one chunk's window width.
func (j Jacobian) DoubleN(n int) Jacobian {
	out := j
	for i := 0; i < n; i++ {
		out = out.Double()
	}
	return out
}

// ScalarMulNonNeg computes k*j via naive double-and-add, for k>=0. This is
// a reference-speed helper (internal/reduction's serial strategy, plus CPU
// cross-checks), not the production bucket-reduction algorithm.
func (j Jacobian) ScalarMulNonNeg(k int64) Jacobian {
	result := Identity(j.Z.Modulus())
	if k == 0 {
		return result
	}
	base := j
	for k > 0 {
		if k&1 == 1 {
			result = result.Add(base)
		}
		base = base.Double()
		k >>= 1
	}
	return result
}
