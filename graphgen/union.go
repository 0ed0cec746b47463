// SPDX-License-Identifier: MIT
// Package graphgen: disjoint union of matrices.
//
// Contract:
//   - Operands are laid out block-diagonally in argument order; operand k
//     occupies the index range starting at the sum of earlier orders.
//   - Operands are read only; the result shares no storage with them.
//   - Only sentinel errors, wrapped with the method tag; never panics.
//
// Complexity: O(total²) time for the result allocation plus O(Σ orderᵢ²)
// for the copy sweeps.
package graphgen

import (
	"fmt"

	"github.com/katalvlaran/bipart/matrix"
)

// Union builds the disjoint union of the given graphs: one matrix whose
// components are the operands, renumbered block by block. Useful for
// multi-component fixtures such as "a square plus a triangle".
func Union(parts ...*matrix.Matrix) (*matrix.Matrix, error) {
	// 1) Operand gates: something to unite, and nothing nil among it.
	if len(parts) == 0 {
		return nil, fmt.Errorf("%s: %w", methodUnion, ErrNoOperands)
	}
	total := 0
	for i, p := range parts {
		if p == nil {
			return nil, fmt.Errorf("%s: operand %d: %w", methodUnion, i, ErrNilOperand)
		}
		total += p.Order()
	}

	// 2) One matrix over the summed vertex range.
	out, err := matrix.New(total)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodUnion, err)
	}

	// 3) Copy each operand's upper triangle at its block offset.
	base := 0
	for _, p := range parts {
		n := p.Order()
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if !p.Has(u, v) {
					continue
				}
				if err = out.Set(base+u, base+v); err != nil {
					return nil, fmt.Errorf("%s: Set(%d,%d): %w", methodUnion, base+u, base+v, err)
				}
			}
		}
		base += n
	}

	return out, nil
}
