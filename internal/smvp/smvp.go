// Package smvp implements the SMVP (sparse matrix-vector product) stage:
// for each bucket column of the transposed CSR/CSC matrix, sum the signed
// contributions of every point assigned to that bucket.
package smvp

import (
	"fmt"

	"github.com/cwbudde/webgpu-msm/internal/csr"
	"github.com/cwbudde/webgpu-msm/internal/field"
	"github.com/cwbudde/webgpu-msm/internal/point"
)

// Compute returns one Jacobian point per bucket (transposed.NumRows of
// them): the sum of points[row] (negated where the recorded sign is -1)
// over every entry in that bucket's row. transposed must be the result of
// (*csr.Matrix).Transpose, so its rows are buckets and its Indices are
// point indices.
func Compute(transposed *csr.Matrix, points []point.Jacobian, m field.Modulus) ([]point.Jacobian, error) {
	buckets := make([]point.Jacobian, transposed.NumRows)
	for b := 0; b < transposed.NumRows; b++ {
		sum := point.Identity(m)
		pointIndices, signs := transposed.Row(b)
		for i, idx := range pointIndices {
			if int(idx) < 0 || int(idx) >= len(points) {
				return nil, fmt.Errorf("%w: point index %d out of range [0,%d)", ErrPointIndexOutOfRange, idx, len(points))
			}
			p := points[idx]
			if signs[i] < 0 {
				p = p.Neg()
			}
			sum = sum.Add(p)
		}
		buckets[b] = sum
	}
	return buckets, nil
}
