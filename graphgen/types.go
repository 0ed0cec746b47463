// SPDX-License-Identifier: MIT
// Package graphgen: sentinel errors and shape minimums.
// Generators return only these sentinels (wrapped with method context) and
// never panic on user input.
package graphgen

import "errors"

var (
	// ErrTooFewVertices is returned when a requested order is below the
	// minimum the shape needs to exist.
	ErrTooFewVertices = errors.New("graphgen: too few vertices for this shape")

	// ErrNoOperands is returned by Union when no matrices are given.
	ErrNoOperands = errors.New("graphgen: no operands")

	// ErrNilOperand is returned by Union when an operand is nil.
	ErrNilOperand = errors.New("graphgen: nil matrix operand")
)

// File-local constants (no magic numbers; stable method tags for context).
const (
	methodCycle     = "Cycle"
	methodPath      = "Path"
	methodComplete  = "Complete"
	methodBipartite = "CompleteBipartite"
	methodUnion     = "Union"

	minCycleNodes = 3 // shorter rings collapse into loops or double edges
	minPathNodes  = 1 // a single vertex is a valid, edgeless chain
	minClassSize  = 1 // each side of K_{a,b} needs at least one vertex
)
