// Package csr builds the sparse point-to-bucket matrix produced by the
// DECOMP stage and transposes it from row-major (CSR, one row per point)
// to column-major (CSC, one column per bucket) so the SMVP stage can walk
// each bucket's contributing points contiguously.
package csr

import "fmt"

// Entry is one (point, bucket) assignment produced by scalar decomposition.
// Sign is +1 when the point should be added to the bucket sum and -1 when
// it should be subtracted, per the signed-digit bias of internal/decompose.
type Entry struct {
	Row  int32 // point index
	Col  int32 // bucket index
	Sign int8
}

// Matrix is a compressed sparse row/column matrix: for row r, the entries
// occupy Indices[RowPtr[r]:RowPtr[r+1]] (and the parallel Signs slice).
// Before Transpose, rows are points and Indices holds bucket indices; after
// Transpose, rows are buckets and Indices holds point indices.
type Matrix struct {
	NumRows int
	NumCols int
	RowPtr  []int32
	Indices []int32
	Signs   []int8
}

// Row returns the column indices and signs belonging to row r.
func (m *Matrix) Row(r int) ([]int32, []int8) {
	start, end := m.RowPtr[r], m.RowPtr[r+1]
	return m.Indices[start:end], m.Signs[start:end]
}

// BuildCSR constructs a CSR matrix from entries via a counting sort on Row,
// so construction is O(numRows + len(entries)) with no comparison sort.
func BuildCSR(numRows, numCols int, entries []Entry) (*Matrix, error) {
	for _, e := range entries {
		if int(e.Row) < 0 || int(e.Row) >= numRows {
			return nil, fmt.Errorf("%w: row %d out of range [0,%d)", ErrOutOfRange, e.Row, numRows)
		}
		if int(e.Col) < 0 || int(e.Col) >= numCols {
			return nil, fmt.Errorf("%w: col %d out of range [0,%d)", ErrOutOfRange, e.Col, numCols)
		}
	}

	rowPtr := make([]int32, numRows+1)
	for _, e := range entries {
		rowPtr[e.Row+1]++
	}
	for r := 0; r < numRows; r++ {
		rowPtr[r+1] += rowPtr[r]
	}

	indices := make([]int32, len(entries))
	signs := make([]int8, len(entries))
	cursor := make([]int32, numRows)
	copy(cursor, rowPtr[:numRows])

	for _, e := range entries {
		pos := cursor[e.Row]
		indices[pos] = e.Col
		signs[pos] = e.Sign
		cursor[e.Row]++
	}

	return &Matrix{NumRows: numRows, NumCols: numCols, RowPtr: rowPtr, Indices: indices, Signs: signs}, nil
}

// Transpose returns the column-major view of m: a new Matrix whose rows are
// m's columns and whose Indices hold m's original row numbers, via the same
// counting-sort approach used by BuildCSR.
func (m *Matrix) Transpose() *Matrix {
	colPtr := make([]int32, m.NumCols+1)
	for _, c := range m.Indices {
		colPtr[c+1]++
	}
	for c := 0; c < m.NumCols; c++ {
		colPtr[c+1] += colPtr[c]
	}

	indices := make([]int32, len(m.Indices))
	signs := make([]int8, len(m.Signs))
	cursor := make([]int32, m.NumCols)
	copy(cursor, colPtr[:m.NumCols])

	for row := 0; row < m.NumRows; row++ {
		start, end := m.RowPtr[row], m.RowPtr[row+1]
		for k := start; k < end; k++ {
			col := m.Indices[k]
			pos := cursor[col]
			indices[pos] = int32(row)
			signs[pos] = m.Signs[k]
			cursor[col]++
		}
	}

	return &Matrix{NumRows: m.NumCols, NumCols: m.NumRows, RowPtr: colPtr, Indices: indices, Signs: signs}
}
