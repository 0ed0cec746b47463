// SPDX-License-Identifier: MIT
// Package graphgen: the four primitive shapes.
//
// Contract:
//   - Every generator validates its parameter domain first (fail fast,
//     no allocation on invalid input).
//   - Vertices are numbered by the shape definition; edge emission order
//     is ascending and deterministic.
//   - Only sentinel errors, wrapped with the method tag; never panics.
//
// Complexity: O(order²) per generator, dominated by the matrix allocation.
package graphgen

import (
	"fmt"

	"github.com/katalvlaran/bipart/matrix"
)

// Cycle builds the ring C_n: vertex i joined to (i+1) mod n.
// Bipartite exactly when n is even. Requires n >= 3.
func Cycle(n int) (*matrix.Matrix, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
	}
	m, err := matrix.New(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCycle, err)
	}
	for i := 0; i < n; i++ {
		if err = m.Set(i, (i+1)%n); err != nil {
			return nil, fmt.Errorf("%s: Set(%d,%d): %w", methodCycle, i, (i+1)%n, err)
		}
	}

	return m, nil
}

// Path builds the chain P_n: vertex i joined to i+1. Always bipartite.
// Requires n >= 1; P_1 is a single edgeless vertex.
func Path(n int) (*matrix.Matrix, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
	}
	m, err := matrix.New(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPath, err)
	}
	for i := 0; i < n-1; i++ {
		if err = m.Set(i, i+1); err != nil {
			return nil, fmt.Errorf("%s: Set(%d,%d): %w", methodPath, i, i+1, err)
		}
	}

	return m, nil
}

// Complete builds K_n: every distinct pair joined. Non-bipartite for n >= 3.
// Requires n >= 1.
func Complete(n int) (*matrix.Matrix, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minPathNodes, ErrTooFewVertices)
	}
	m, err := matrix.New(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodComplete, err)
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if err = m.Set(u, v); err != nil {
				return nil, fmt.Errorf("%s: Set(%d,%d): %w", methodComplete, u, v, err)
			}
		}
	}

	return m, nil
}

// CompleteBipartite builds K_{a,b}: the left class occupies [0, a), the
// right class [a, a+b), and every cross pair is joined. Bipartite by
// construction. Requires a >= 1 and b >= 1.
func CompleteBipartite(a, b int) (*matrix.Matrix, error) {
	if a < minClassSize || b < minClassSize {
		return nil, fmt.Errorf("%s: classes %dx%d, min=%d each: %w", methodBipartite, a, b, minClassSize, ErrTooFewVertices)
	}
	m, err := matrix.New(a + b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBipartite, err)
	}
	for u := 0; u < a; u++ {
		for v := a; v < a+b; v++ {
			if err = m.Set(u, v); err != nil {
				return nil, fmt.Errorf("%s: Set(%d,%d): %w", methodBipartite, u, v, err)
			}
		}
	}

	return m, nil
}
