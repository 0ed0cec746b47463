package matrix_test

import (
	"testing"

	"github.com/katalvlaran/bipart/matrix"
)

// completeRows builds the adjacency rows of the complete graph K_n.
func completeRows(n int) [][]int {
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		for j := range rows[i] {
			if i != j {
				rows[i][j] = 1
			}
		}
	}

	return rows
}

// BenchmarkFromRows_Complete256 measures validated ingestion of K_256,
// the worst case for the symmetry sweep (every cell set off-diagonal).
func BenchmarkFromRows_Complete256(b *testing.B) {
	rows := completeRows(256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.FromRows(rows); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkHas_RowSweep measures the cost of one full ascending column
// sweep, the inner loop of every traversal in this module.
func BenchmarkHas_RowSweep(b *testing.B) {
	m, err := matrix.FromRows(completeRows(1024))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	found := 0
	for i := 0; i < b.N; i++ {
		for v := 0; v < m.Order(); v++ {
			if m.Has(512, v) {
				found++
			}
		}
	}
	_ = found
}
