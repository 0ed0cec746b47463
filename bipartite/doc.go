// Package bipartite decides whether an undirected simple graph is
// two-colorable and produces a checkable witness either way: a bipartition
// of the vertex set, or the cycle a traversal closes when no bipartition
// exists.
//
// What & Why
//
//   - What is a bipartite graph?
//     A graph G = (V, E) is bipartite when V splits into two disjoint
//     classes A and B such that every edge joins a vertex of A with a
//     vertex of B. Equivalently, G contains no cycle of odd length.
//
//   - Why bipartiteness matters:
//
//   - Matching: assignment problems (jobs to workers, students to schools)
//     are modeled on bipartite graphs before any matching algorithm runs.
//
//   - Scheduling and conflict: two-colorability is the cheapest conflict
//     test; an odd cycle is the minimal certificate that two resources
//     cannot alternate.
//
//   - Structure: many algorithms branch on bipartiteness first, because
//     both the yes and the no answer come with a proof object.
//
// Algorithms Provided
//
//   - Partition(m *matrix.Matrix) (*Bipartition, error)
//
//   - Strategy: iterative depth-first two-coloring. Roots are taken in
//     ascending vertex order, one per still-uncolored component, and always
//     open class A. Neighbor columns are scanned in ascending order; every
//     tree edge assigns the opposite color and the first edge joining two
//     same-colored vertices aborts the whole run.
//
//   - Result: vertices appear in each class in discovery order of the
//     traversal, not in sorted order.
//
//   - OddCycle(m *matrix.Matrix) ([]int, error)
//
//   - Strategy: an independent depth-first traversal that keeps parent
//     links instead of colors. The first edge that reaches an already
//     visited vertex other than the immediate parent closes a cycle, which
//     is reconstructed by walking the parent chain backward.
//
//   - Result: the cycle lists 0-based vertices in backward walk order:
//     the vertex that saw the back-edge, its parents, then the far endpoint
//     of the back-edge. The first closed cycle wins and its length is not
//     recounted; VerifyOddCycle exists for callers that need the guarantee.
//
// Determinism
//
//	Both traversals scan roots and neighbor columns in ascending order, so
//	equal matrices always produce equal classes and equal cycles. The two
//	traversals share no state; OddCycle does not reuse the coloring.
//
// Error Conditions
//
//	All functions return sentinel errors matched via errors.Is:
//
//	- ErrNilMatrix
//	    - A nil *matrix.Matrix was passed to any function here.
//
//	- ErrNotBipartite (Partition only)
//	    - Some edge joins two vertices that any two-coloring must place in
//	      the same class.
//
//	- ErrNoOddCycle (OddCycle only)
//	    - The traversal closed no cycle at all, which happens exactly when
//	      the graph is a forest.
//
//	- ErrPartitionInvalid (VerifyPartition only)
//	    - The claimed classes overlap, miss a vertex, leave the vertex
//	      range, or keep an edge inside one class.
//
//	- ErrCycleInvalid (VerifyOddCycle only)
//	    - The claimed cycle is too short, has even length, repeats a
//	      vertex, or lists consecutive vertices with no edge between them.
//
// GoDoc Summary
//
//   - Partition(m) (*Bipartition, error)
//     Two-color every component; classes in discovery order on success,
//     ErrNotBipartite on the first conflicting edge.
//
//   - OddCycle(m) ([]int, error)
//     Extract the first cycle closed by a back-edge, listed backward;
//     ErrNoOddCycle on forests.
//
//   - VerifyPartition(m, bp) error
//     Structurally re-check a claimed bipartition in O(V²).
//
//   - VerifyOddCycle(m, cycle) error
//     Structurally re-check a claimed odd cycle in O(len(cycle)).
//
// Both traversals run in O(V²) time over the adjacency rows and O(V)
// extra memory, with explicit stacks instead of recursion so deep
// components cannot exhaust the goroutine stack.
package bipartite
