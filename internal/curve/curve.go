// Package curve holds the registry of elliptic-curve parameter sets MSM can
// run over, and derives the limb-level constants (Montgomery/Barrett
// parameters, word counts) both the CPU software pipeline and the WGSL
// shader templates are generated from.
package curve

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/cwbudde/webgpu-msm/internal/bigint"
	"github.com/cwbudde/webgpu-msm/internal/field"
)

// Name identifies a registered curve.
type Name string

const (
	BN254  Name = "bn254"
	Pallas Name = "pallas"
)

// Params holds every constant a component needs to operate over one curve:
// the base-field modulus (for point coordinates) and scalar-field modulus
// (for exponents), the curve equation's b coefficient, the generator, and
// the derived limb/Montgomery/Barrett constants.
type Params struct {
	Name Name

	P *big.Int // base field modulus
	R *big.Int // scalar field modulus
	B *big.Int // short-Weierstrass y^2 = x^3 + B
	Gx *big.Int
	Gy *big.Int

	WordSize int // bits per limb, always bigint.WordSize
	NumWords int // limbs needed for P

	BaseField   field.Modulus
	ScalarField field.Modulus
	ScalarBarrett bigint.BarrettParams
}

var (
	registryMu sync.RWMutex
	registry   = map[Name]Params{}
)

// Register adds (or replaces) a curve's parameter set in the global registry.
func Register(p Params) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[p.Name] = p
}

// Lookup returns the registered Params for name.
func Lookup(name Name) (Params, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	p, ok := registry[name]
	if !ok {
		return Params{}, fmt.Errorf("%w: %s", ErrUnknownCurve, name)
	}
	return p, nil
}

// Names returns every registered curve name.
func Names() []Name {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]Name, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	return names
}

// newParams derives the limb/Montgomery/Barrett constants for a curve given
// its decimal modulus and generator strings. Called once per curve from
// this package's init().
func newParams(name Name, pDec, rDec, bDec, gxDec, gyDec string) Params {
	p := mustBig(pDec)
	r := mustBig(rDec)
	b := mustBig(bDec)
	gx := mustBig(gxDec)
	gy := mustBig(gyDec)

	numWords := bigint.NumWords(p.BitLen())
	pLimbs := bigint.FromBig(p, numWords)
	baseField := field.Modulus{
		Limbs:    pLimbs,
		N0:       bigint.N0(pLimbs),
		RSquared: bigint.RSquared(pLimbs),
		NumWords: numWords,
	}

	scalarWords := bigint.NumWords(r.BitLen())
	rLimbs := bigint.FromBig(r, scalarWords)
	scalarField := field.Modulus{
		Limbs:    rLimbs,
		N0:       bigint.N0(rLimbs),
		RSquared: bigint.RSquared(rLimbs),
		NumWords: scalarWords,
	}

	return Params{
		Name:          name,
		P:             p,
		R:             r,
		B:             b,
		Gx:            gx,
		Gy:            gy,
		WordSize:      bigint.WordSize,
		NumWords:      numWords,
		BaseField:     baseField,
		ScalarField:   scalarField,
		ScalarBarrett: bigint.NewBarrettParams(rLimbs),
	}
}

func mustBig(dec string) *big.Int {
	v, ok := new(big.Int).SetString(dec, 10)
	if !ok {
		panic(fmt.Sprintf("curve: invalid decimal literal %q", dec))
	}
	return v
}

func init() {
	// BN254 (alt_bn128): constants cross-checked against
	// github.com/consensys/gnark-crypto/ecc/bn254 (fp.Modulus / fr.Modulus)
	// and original_source/src/utils/bigint.rs.
	Register(newParams(
		BN254,
		"21888242871839275222246405745257275088696311157297823662689037894645226208583",
		"21888242871839275222246405745257275088548364400416034343698204186575808495617",
		"3",
		"1",
		"2",
	))

	// Pallas: constants from original_source/src/halo2curves/pallas.rs and
	// original_source/src/ark/pallas.rs. No importable public Go package
	// carries Pallas support (see DESIGN.md), so these literals are the
	// ground truth. Generator is (-1, 2): (-1)^3 + 5 = 4 = 2^2.
	Register(newParams(
		Pallas,
		"28948022309329048855892746252171976963363056481941560715954676764349967630337",
		"28948022309329048855892746252171976963363056481941647379679742748393362948097",
		"5",
		"28948022309329048855892746252171976963363056481941560715954676764349967630336",
		"2",
	))
}
