// Package graphfile: report constructors and the 0-based to 1-based boundary.
package graphfile

import (
	"github.com/katalvlaran/bipart/bipartite"
	"github.com/katalvlaran/bipart/matrix"
)

// NewPartitionReport freezes a bipartite verdict. Both classes are shifted
// to 1-based numbering; their discovery order is preserved. The slices are
// copied, so later mutation of bp does not leak into the report.
// m and bp must come from one successful Partition run over the same graph.
func NewPartitionReport(m *matrix.Matrix, bp *bipartite.Bipartition) *Report {
	return &Report{
		Order:     m.Order(),
		Edges:     m.Edges(),
		Bipartite: true,
		Parts:     [][]int{oneBased(bp.A), oneBased(bp.B)},
	}
}

// NewCycleReport freezes an odd-cycle verdict. The raw backward walk from
// bipartite.OddCycle is reversed into forward order and shifted to 1-based
// numbering, so the triangle walk [2 1 0] renders as 1 2 3.
// m and cycle must come from one OddCycle run over the same graph.
func NewCycleReport(m *matrix.Matrix, cycle []int) *Report {
	return &Report{
		Order:    m.Order(),
		Edges:    m.Edges(),
		OddCycle: reversedOneBased(cycle),
	}
}

// oneBased returns a fresh slice with every vertex shifted by one.
// The result is never nil, so empty classes render as [] rather than null.
func oneBased(vs []int) []int {
	out := make([]int, len(vs))
	for i, v := range vs {
		out[i] = v + 1
	}

	return out
}

// reversedOneBased returns a fresh slice with the order flipped and every
// vertex shifted by one.
func reversedOneBased(vs []int) []int {
	out := make([]int, len(vs))
	for i, v := range vs {
		out[len(vs)-1-i] = v + 1
	}

	return out
}
