// Package graphgen builds adjacency matrices for the standard test shapes
// of bipartiteness analysis.
//
// What & Why
//
//	Every generator returns a fresh, fully validated *matrix.Matrix, so a
//	generated graph is indistinguishable from one ingested from rows. The
//	shapes are the usual suspects of two-coloring work:
//
//   - Cycle(n): the ring C_n; bipartite exactly when n is even, and the
//     smallest odd-cycle witness factory otherwise.
//   - Path(n): the chain P_n; always bipartite, never cyclic.
//   - Complete(n): K_n; non-bipartite for n >= 3, with triangles everywhere.
//   - CompleteBipartite(a, b): K_{a,b}; bipartite by construction, dense.
//   - Union(parts...): the disjoint union, for multi-component fixtures.
//
// Determinism
//
//	Vertex numbering is fixed by the shape definition: ring and chain
//	edges run i to i+1, the bipartite left class occupies [0, a). Equal
//	arguments always produce equal matrices.
//
// Error Conditions
//
//   - ErrTooFewVertices
//     An order below the minimum of the shape (3 for Cycle, 1 elsewhere,
//     1 per class for CompleteBipartite).
//
//   - ErrNoOperands
//     Union called with no matrices at all.
//
//   - ErrNilOperand
//     Union called with a nil matrix among the operands.
//
// All generators run in O(order²) time, dominated by the matrix allocation.
package graphgen
