// Package bipartite defines result types, traversal state and sentinel
// errors shared by the two-coloring and odd-cycle extraction passes.
package bipartite

import "errors"

var (
	// ErrNilMatrix is returned when a nil *matrix.Matrix is passed to
	// Partition, OddCycle or either verifier.
	ErrNilMatrix = errors.New("bipartite: matrix is nil")

	// ErrNotBipartite is returned by Partition when some edge joins two
	// vertices that any two-coloring must place in the same class.
	ErrNotBipartite = errors.New("bipartite: graph is not bipartite")

	// ErrNoOddCycle is returned by OddCycle when the traversal closes no
	// cycle, which happens exactly when the graph is a forest.
	ErrNoOddCycle = errors.New("bipartite: traversal closed no cycle")

	// ErrPartitionInvalid is returned by VerifyPartition when a claimed
	// bipartition fails a structural check.
	ErrPartitionInvalid = errors.New("bipartite: invalid bipartition")

	// ErrCycleInvalid is returned by VerifyOddCycle when a claimed cycle
	// fails a structural check.
	ErrCycleInvalid = errors.New("bipartite: invalid odd cycle")
)

// Vertex coloring states used by Partition.
const (
	colorNone = iota // colorNone: the vertex has not been reached yet.
	colorA           // colorA: the class of every traversal root.
	colorB           // colorB: the class assigned across each tree edge.
)

// parentNone marks a vertex with no traversal parent (roots and the unvisited).
const parentNone = -1

// Bipartition is a proof of bipartiteness: two disjoint vertex classes
// covering [0, order) such that every edge crosses between them. Vertices
// appear in each class in discovery order of the two-coloring traversal.
type Bipartition struct {
	// A holds the vertices colored like the traversal roots.
	A []int

	// B holds the vertices colored opposite to the roots.
	B []int
}

// frame is one level of the explicit traversal stacks: a vertex plus the
// next neighbor column to examine when the frame resumes after a descent.
type frame struct {
	vertex int
	next   int
}
