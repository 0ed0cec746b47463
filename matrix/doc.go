// Package matrix stores undirected simple graphs as dense adjacency matrices.
//
// The matrix package provides:
//
//   - Matrix, a flat row-major 0/1 square with O(1) edge lookups and
//     O(V²) memory.
//   - New for edgeless matrices of a given order, the seed every
//     generator grows from.
//   - FromRows for ingesting explicit rows under strict validation:
//     square shape, binary cells, zero diagonal, symmetry.
//
// Validation happens once, at construction. Every *Matrix observable by
// callers already satisfies the structural rules of an undirected simple
// graph, so traversals read cells without re-checking. All violations are
// reported through the sentinel errors in errors.go and matched with
// errors.Is.
//
// Matrices are best for dense or small graphs where O(V²) memory and
// O(V²) scan time are acceptable.
package matrix
