package bigint

import "math/big"

// BarrettParams holds the precomputed constant for Barrett reduction modulo
// m: mu = floor(2^(2*WordSize*len(m)) / m). internal/curve precomputes one
// for each curve's scalar field (Params.ScalarBarrett); the MSM pipeline
// itself does not call Reduce.
type BarrettParams struct {
	M  Int
	Mu Int // width 2*len(M)+1, holds mu
}

// NewBarrettParams computes the Barrett constant for modulus m.
func NewBarrettParams(m Int) BarrettParams {
	n := len(m)
	bigM := ToBig(m)
	k := uint(WordSize * n)
	mu := new(big.Int).Lsh(big.NewInt(1), 2*k)
	mu.Div(mu, bigM)
	return BarrettParams{M: m.Clone(), Mu: FromBig(mu, 2*n+1)}
}

// Reduce reduces a double-width value x (2*len(m) limbs) modulo m using the
// schoolbook Barrett algorithm. x must be non-negative and less than m^2.
func (p BarrettParams) Reduce(x Int) Int {
	n := len(p.M)
	k := uint(WordSize * n)

	bigX := ToBig(x)
	q := new(big.Int).Rsh(bigX, k-1)
	q.Mul(q, ToBig(p.Mu))
	q.Rsh(q, k+1)

	r := new(big.Int).Mul(q, ToBig(p.M))
	r.Sub(bigX, r)

	bigM := ToBig(p.M)
	for r.Sign() < 0 || r.Cmp(bigM) >= 0 {
		if r.Sign() < 0 {
			r.Add(r, bigM)
		} else {
			r.Sub(r, bigM)
		}
	}
	return FromBig(r, n)
}
