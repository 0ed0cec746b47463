// SPDX-License-Identifier: MIT

// Package matrix: dense storage and validated constructors.
// Cells live in a single flat row-major slice; cell (u,v) sits at offset
// u*order+v. Both constructors enforce the structural rules of an undirected
// simple graph eagerly, so accessors never re-validate on the hot path.
package matrix

import (
	"fmt"
	"strings"
)

// Matrix is the adjacency matrix of an undirected simple graph over the
// vertex set [0, order). It is square, binary, symmetric and zero on the
// main diagonal; FromRows rejects anything else and Set preserves the
// invariants on mutation.
//
// The zero value is not usable; obtain instances via New or FromRows.
// Accessors are O(1); Clone, Edges and String are O(order²).
type Matrix struct {
	order int    // number of vertices (side of the square)
	cells []bool // row-major edge flags, length order*order
}

// New returns an edgeless matrix of the given order.
// Returns ErrBadOrder when order < 1.
// Complexity: O(order²) for the backing allocation.
func New(order int) (*Matrix, error) {
	// 1) Shape gate: a graph needs at least one vertex.
	if order < 1 {
		return nil, fmt.Errorf("New(%d): %w", order, ErrBadOrder)
	}

	// 2) Allocate the flat row-major store with every cell clear.
	return &Matrix{order: order, cells: make([]bool, order*order)}, nil
}

// FromRows builds a matrix from explicit 0/1 rows, validating every
// structural rule of an undirected simple graph. The first violated rule
// wins, in a fixed priority:
//
//	ErrBadOrder -> ErrNonSquare -> ErrNotBinary -> ErrNonZeroDiagonal -> ErrAsymmetry
//
// The returned matrix copies the cell values; later changes to rows do not
// affect it. Complexity: O(order²), one ingestion pass plus a symmetry sweep.
func FromRows(rows [][]int) (*Matrix, error) {
	// 1) Order gate: an empty row set describes no vertices at all.
	n := len(rows)
	if n < 1 {
		return nil, fmt.Errorf("FromRows: empty row set: %w", ErrBadOrder)
	}
	m := &Matrix{order: n, cells: make([]bool, n*n)}

	// 2) Ingestion sweep: squareness, binarity and the diagonal in one pass.
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d cells, want %d: %w", i, len(row), n, ErrNonSquare)
		}
		for j, cell := range row {
			if cell != 0 && cell != 1 {
				return nil, fmt.Errorf("FromRows: cell (%d,%d) = %d: %w", i, j, cell, ErrNotBinary)
			}
			if cell == 1 && i == j {
				return nil, fmt.Errorf("FromRows: cell (%d,%d): %w", i, j, ErrNonZeroDiagonal)
			}
			m.cells[i*n+j] = cell == 1
		}
	}

	// 3) Symmetry sweep over the upper triangle; the lower is its mirror.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.cells[i*n+j] != m.cells[j*n+i] {
				return nil, fmt.Errorf("FromRows: cells (%d,%d) and (%d,%d) disagree: %w", i, j, j, i, ErrAsymmetry)
			}
		}
	}

	return m, nil
}

// Order returns the number of vertices. Complexity: O(1).
func (m *Matrix) Order() int { return m.order }

// Has reports whether the undirected edge (u,v) is present. Indices outside
// [0, order) report false rather than panic, so ascending column sweeps need
// no bounds guard of their own. Complexity: O(1).
func (m *Matrix) Has(u, v int) bool {
	if u < 0 || v < 0 || u >= m.order || v >= m.order {
		return false
	}

	return m.cells[u*m.order+v]
}

// Set records the undirected edge (u,v), mirroring it into (v,u) so the
// matrix stays symmetric. Setting an existing edge is a no-op.
// Returns ErrOutOfRange for indices outside [0, order) and ErrNonZeroDiagonal
// for u == v. Complexity: O(1).
func (m *Matrix) Set(u, v int) error {
	// 1) Range gate first, diagonal second; mirrors the FromRows priority.
	if u < 0 || v < 0 || u >= m.order || v >= m.order {
		return fmt.Errorf("Set(%d,%d) on order %d: %w", u, v, m.order, ErrOutOfRange)
	}
	if u == v {
		return fmt.Errorf("Set(%d,%d): %w", u, v, ErrNonZeroDiagonal)
	}

	// 2) Mirrored write keeps the symmetry invariant intact.
	m.cells[u*m.order+v] = true
	m.cells[v*m.order+u] = true

	return nil
}

// Edges returns the number of undirected edges, each counted once.
// Complexity: O(order²) over the upper triangle.
func (m *Matrix) Edges() int {
	count := 0
	for u := 0; u < m.order; u++ {
		for v := u + 1; v < m.order; v++ {
			if m.cells[u*m.order+v] {
				count++
			}
		}
	}

	return count
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(order²).
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{order: m.order, cells: make([]bool, len(m.cells))}
	copy(out.cells, m.cells)

	return out
}

// String renders the matrix as space-separated 0/1 rows, one row per line,
// matching the row section of the plain text file format.
// Complexity: O(order²).
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.Grow(2 * m.order * m.order)
	for u := 0; u < m.order; u++ {
		for v := 0; v < m.order; v++ {
			if v > 0 {
				sb.WriteByte(' ')
			}
			if m.cells[u*m.order+v] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
