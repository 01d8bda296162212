package curve

import (
	"math/big"
	"testing"

	bn254ecc "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

func TestLookupKnownCurves(t *testing.T) {
	for _, name := range []Name{BN254, Pallas} {
		p, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", name, err)
		}
		if p.NumWords == 0 {
			t.Fatalf("%s: NumWords not derived", name)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup(Name("secp256k1")); err == nil {
		t.Fatalf("expected ErrUnknownCurve")
	}
}

func TestBN254ModuliMatchGnarkCrypto(t *testing.T) {
	p, err := Lookup(BN254)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	if p.P.Cmp(fp.Modulus()) != 0 {
		t.Fatalf("base field modulus mismatch:\n got  %s\n want %s", p.P, fp.Modulus())
	}
	if p.R.Cmp(fr.Modulus()) != 0 {
		t.Fatalf("scalar field modulus mismatch:\n got  %s\n want %s", p.R, fr.Modulus())
	}

	_, _, g1Aff, _ := bn254ecc.Generators()
	gx := g1Aff.X.BigInt(new(big.Int))
	if p.Gx.Cmp(gx) != 0 {
		t.Fatalf("generator X mismatch: got %s want %s", p.Gx, gx)
	}
}
