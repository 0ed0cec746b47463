// Package bipartite - structural verifiers for claimed results.
//
// This file contains small, tight helpers that re-check the two kinds of
// witness this package produces:
//  1. VerifyPartition confirms a claimed Bipartition against the matrix.
//  2. VerifyOddCycle confirms a claimed odd cycle against the matrix.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go,
//     wrapped with the first offending vertex or edge.
//   - O(V²) worst-case for partitions, O(len(cycle)) for cycles.
package bipartite

import (
	"fmt"

	"github.com/katalvlaran/bipart/matrix"
)

// VerifyPartition checks that bp is a genuine bipartition of m.
//
// Contract:
//   - The classes are disjoint and every vertex of [0, Order) is claimed
//     exactly once.
//   - No edge of m keeps both endpoints inside one class.
//   - Class order and vertex order inside a class do not matter.
//
// Any violation yields an ErrPartitionInvalid wrap naming the first
// offending vertex or edge; a nil matrix yields ErrNilMatrix.
// Complexity: O(V²) time, O(V) extra space.
func VerifyPartition(m *matrix.Matrix, bp *Bipartition) error {
	if m == nil {
		return ErrNilMatrix
	}
	if bp == nil {
		return fmt.Errorf("nil bipartition: %w", ErrPartitionInvalid)
	}
	n := m.Order()

	// Stage 1: membership sweep. Each listed vertex must be in range and
	// claimed by exactly one class.
	side := make([]int, n) // colorNone until a class claims the vertex
	claim := func(v, c int) error {
		if v < 0 || v >= n {
			return fmt.Errorf("vertex %d outside [0,%d): %w", v, n, ErrPartitionInvalid)
		}
		if side[v] != colorNone {
			return fmt.Errorf("vertex %d claimed twice: %w", v, ErrPartitionInvalid)
		}
		side[v] = c

		return nil
	}
	for _, v := range bp.A {
		if err := claim(v, colorA); err != nil {
			return err
		}
	}
	for _, v := range bp.B {
		if err := claim(v, colorB); err != nil {
			return err
		}
	}

	// Stage 2: coverage. Distinct claims plus a full count mean no vertex
	// was left out.
	if got := len(bp.A) + len(bp.B); got != n {
		return fmt.Errorf("classes cover %d of %d vertices: %w", got, n, ErrPartitionInvalid)
	}

	// Stage 3: edge sweep over the upper triangle. Every edge must cross
	// between the classes.
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if m.Has(u, v) && side[u] == side[v] {
				return fmt.Errorf("edge (%d,%d) stays inside one class: %w", u, v, ErrPartitionInvalid)
			}
		}
	}

	return nil
}

// VerifyOddCycle checks that cycle is a genuine odd cycle in m.
//
// Contract:
//   - At least 3 vertices and an odd count of them.
//   - All vertices distinct and inside [0, Order).
//   - Consecutive vertices adjacent, the last adjacent to the first.
//   - Orientation does not matter: the raw backward order produced by
//     OddCycle and any rotation or reversal of it pass equally.
//
// Any violation yields an ErrCycleInvalid wrap naming the first offending
// vertex or edge; a nil matrix yields ErrNilMatrix.
// Complexity: O(len(cycle)) time, O(len(cycle)) extra space.
func VerifyOddCycle(m *matrix.Matrix, cycle []int) error {
	if m == nil {
		return ErrNilMatrix
	}
	n := len(cycle)

	// Stage 1: length gate. Simple cycles need three vertices; odd ones an
	// odd count.
	if n < 3 {
		return fmt.Errorf("cycle of length %d is too short: %w", n, ErrCycleInvalid)
	}
	if n%2 == 0 {
		return fmt.Errorf("cycle of length %d is even: %w", n, ErrCycleInvalid)
	}

	// Stage 2: range and distinctness in one sweep.
	seen := make(map[int]struct{}, n)
	for _, v := range cycle {
		if v < 0 || v >= m.Order() {
			return fmt.Errorf("vertex %d outside [0,%d): %w", v, m.Order(), ErrCycleInvalid)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("vertex %d repeats: %w", v, ErrCycleInvalid)
		}
		seen[v] = struct{}{}
	}

	// Stage 3: ring sweep. Every consecutive pair, wrap-around included,
	// must be an edge of m.
	for i, v := range cycle {
		u := cycle[(i+1)%n]
		if !m.Has(v, u) {
			return fmt.Errorf("missing edge (%d,%d): %w", v, u, ErrCycleInvalid)
		}
	}

	return nil
}
