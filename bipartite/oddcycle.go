// Package bipartite: cycle extraction via parent-chain reconstruction.
package bipartite

import "github.com/katalvlaran/bipart/matrix"

// OddCycle runs a depth-first traversal independent of Partition, keeping
// parent links instead of colors, and returns the first cycle closed by a
// back-edge: an edge from the current vertex to an already visited vertex
// other than its immediate parent.
//
// The returned slice lists 0-based vertices in backward walk order: the
// vertex that saw the back-edge, then its parent chain, then the far
// endpoint of the back-edge. Callers that need forward order reverse it.
//
// The first closed cycle wins and its length is not recounted here. On a
// graph rejected by Partition the usual pairing is Partition then OddCycle;
// use VerifyOddCycle when the caller must be certain the witness is odd.
//
// Returns:
//
//	[]int - the reconstructed cycle, on the first back-edge.
//	error - ErrNilMatrix for a nil matrix,
//	        ErrNoOddCycle when no cycle closes, i.e. the graph is a forest.
//
// Complexity: O(V²) time over the adjacency rows, O(V) extra memory.
func OddCycle(m *matrix.Matrix) ([]int, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	t := &tracer{
		m:       m,
		order:   m.Order(),
		visited: make([]bool, m.Order()),
		parent:  make([]int, m.Order()),
	}

	// 1) No vertex has a parent until a tree edge claims it.
	for v := range t.parent {
		t.parent[v] = parentNone
	}

	// 2) Ascending root scan mirrors Partition, one tree per component.
	for root := 0; root < t.order; root++ {
		if t.visited[root] {
			continue
		}
		t.visited[root] = true
		if cycle := t.trace(root); cycle != nil {
			return cycle, nil
		}
	}

	return nil, ErrNoOddCycle
}

// tracer carries the mutable state of one OddCycle run.
type tracer struct {
	m       *matrix.Matrix
	order   int
	visited []bool
	parent  []int
}

// trace explores the component rooted at root with an explicit stack that
// replays the recursive order, and reconstructs the first cycle closed by
// an edge to a visited non-parent vertex. Returns nil when the component
// holds no cycle.
func (t *tracer) trace(root int) []int {
	stack := make([]frame, 0, t.order)
	stack = append(stack, frame{vertex: root})
	for len(stack) > 0 {
		top := len(stack) - 1
		v := stack[top].vertex
		descended := false

		// 1) Ascending column sweep from the saved cursor.
		for stack[top].next < t.order {
			u := stack[top].next
			stack[top].next++
			if !t.m.Has(v, u) {
				continue
			}
			if !t.visited[u] {
				// 1a) Tree edge: remember the parent, then descend.
				t.visited[u] = true
				t.parent[u] = v
				stack = append(stack, frame{vertex: u})
				descended = true
			} else if t.parent[v] != u {
				// 1b) Back-edge to an ancestor: the parent chain from v down
				//     to u plus the edge (v,u) forms the cycle, walked backward.
				cycle := make([]int, 0, t.order)
				cycle = append(cycle, v)
				for cur := t.parent[v]; cur != u; cur = t.parent[cur] {
					cycle = append(cycle, cur)
				}

				return append(cycle, u)
			}
			if descended {
				break
			}
		}

		// 2) Cursor exhausted: the subtree under v closed no cycle.
		if !descended {
			stack = stack[:top]
		}
	}

	return nil
}
