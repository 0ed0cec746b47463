// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors and accessors MUST return these sentinels and tests
// MUST check them via errors.Is. Nothing here panics on user input; panics
// are reserved for programmer errors in private helpers (if any).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. When positional context is essential (a row or
// cell index), wrap with fmt.Errorf("ctx: %w", ErrX) at the reporting site;
// callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> order -> squareness -> binarity -> diagonal -> symmetry
// -> index range.

var (
	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used
	// where a constructed matrix is required.
	ErrNilMatrix = errors.New("matrix: matrix is nil")

	// ErrBadOrder is returned when a requested or ingested order is not positive.
	// Constructors must validate the order before allocation.
	ErrBadOrder = errors.New("matrix: order must be positive")

	// ErrNonSquare signals that the ingested rows do not form an order x order
	// square (some row is shorter or longer than the row count).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotBinary signals that a cell holds a value other than 0 or 1.
	// Adjacency matrices of unweighted graphs admit no other values.
	ErrNotBinary = errors.New("matrix: cell is neither 0 nor 1")

	// ErrNonZeroDiagonal signals a set cell on the main diagonal, which would
	// encode a self-loop. Simple graphs have none.
	ErrNonZeroDiagonal = errors.New("matrix: non-zero diagonal entry")

	// ErrAsymmetry signals that cell (i,j) disagrees with cell (j,i).
	// Undirected edges must be mirrored.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrOutOfRange indicates that a vertex index is outside [0, order).
	// The mutator Set MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
