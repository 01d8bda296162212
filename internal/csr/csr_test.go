package csr

import "testing"

func sampleEntries() []Entry {
	// 4 points, 3 buckets.
	return []Entry{
		{Row: 0, Col: 1, Sign: 1},
		{Row: 1, Col: 0, Sign: -1},
		{Row: 2, Col: 1, Sign: 1},
		{Row: 3, Col: 2, Sign: 1},
	}
}

func TestBuildCSRRowLayout(t *testing.T) {
	m, err := BuildCSR(4, 3, sampleEntries())
	if err != nil {
		t.Fatalf("BuildCSR: %v", err)
	}

	cols, signs := m.Row(0)
	if len(cols) != 1 || cols[0] != 1 || signs[0] != 1 {
		t.Fatalf("row 0: got cols=%v signs=%v", cols, signs)
	}
	cols, signs = m.Row(1)
	if len(cols) != 1 || cols[0] != 0 || signs[0] != -1 {
		t.Fatalf("row 1: got cols=%v signs=%v", cols, signs)
	}
}

func TestBuildCSROutOfRange(t *testing.T) {
	if _, err := BuildCSR(2, 2, []Entry{{Row: 5, Col: 0, Sign: 1}}); err == nil {
		t.Fatalf("expected out-of-range error")
	}
}

func TestTransposeGroupsByColumn(t *testing.T) {
	m, err := BuildCSR(4, 3, sampleEntries())
	if err != nil {
		t.Fatalf("BuildCSR: %v", err)
	}
	tr := m.Transpose()

	if tr.NumRows != 3 || tr.NumCols != 4 {
		t.Fatalf("unexpected transposed dims: rows=%d cols=%d", tr.NumRows, tr.NumCols)
	}

	// Bucket 1 should contain points 0 and 2.
	rows, signs := tr.Row(1)
	if len(rows) != 2 {
		t.Fatalf("bucket 1: got %d entries, want 2", len(rows))
	}
	seen := map[int32]bool{}
	for i, r := range rows {
		seen[r] = true
		if signs[i] != 1 {
			t.Fatalf("bucket 1 entry %d: sign %d, want 1", i, signs[i])
		}
	}
	if !seen[0] || !seen[2] {
		t.Fatalf("bucket 1: got rows=%v, want {0,2}", rows)
	}

	// Bucket 0 should contain point 1 with a negative sign.
	rows, signs = tr.Row(0)
	if len(rows) != 1 || rows[0] != 1 || signs[0] != -1 {
		t.Fatalf("bucket 0: got rows=%v signs=%v", rows, signs)
	}
}
