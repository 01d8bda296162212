package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/cwbudde/webgpu-msm/internal/bigint"
	"github.com/cwbudde/webgpu-msm/internal/curve"
	"github.com/cwbudde/webgpu-msm/internal/field"
	"github.com/cwbudde/webgpu-msm/internal/point"
)

// readPoints parses the §6.2 point buffer layout: 64 bytes per point, 32
// bytes x followed by 32 bytes y, both little-endian canonical. A point
// whose y field is all-zero decodes to the identity.
func readPoints(path string, p curve.Params) ([]point.Affine, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read points: %w", err)
	}
	if len(raw)%64 != 0 {
		return nil, fmt.Errorf("read points: %d bytes is not a multiple of 64", len(raw))
	}

	m := p.BaseField
	n := len(raw) / 64
	points := make([]point.Affine, n)
	for i := 0; i < n; i++ {
		rec := raw[i*64 : (i+1)*64]
		xBytes, yBytes := rec[:32], rec[32:]

		isIdentity := true
		for _, b := range yBytes {
			if b != 0 {
				isIdentity = false
				break
			}
		}
		if isIdentity {
			points[i] = point.Affine{IsInfinity: true}
			continue
		}

		x := bigint.FromBig(leBytesToBig(xBytes), m.NumWords)
		y := bigint.FromBig(leBytesToBig(yBytes), m.NumWords)
		points[i] = point.Affine{
			X: field.FromCanonical(x, m),
			Y: field.FromCanonical(y, m),
		}
	}
	return points, nil
}

// readScalars parses the §6.2 scalar buffer layout: 32 little-endian
// canonical bytes per scalar.
func readScalars(path string) ([]*big.Int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scalars: %w", err)
	}
	if len(raw)%32 != 0 {
		return nil, fmt.Errorf("read scalars: %d bytes is not a multiple of 32", len(raw))
	}

	n := len(raw) / 32
	scalars := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		scalars[i] = leBytesToBig(raw[i*32 : (i+1)*32])
	}
	return scalars, nil
}

func leBytesToBig(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(be)
}
