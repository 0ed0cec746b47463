// Package bipartite: depth-first two-coloring over the whole vertex set.
package bipartite

import "github.com/katalvlaran/bipart/matrix"

// Partition attempts to split the vertices of m into two classes with no
// edge inside either class. Roots are taken in ascending vertex order, one
// per still-uncolored component, and always open class A; neighbor columns
// are scanned in ascending order. The first edge whose endpoints share a
// color aborts the whole run.
//
// Returns:
//
//	*Bipartition - classes in discovery order, when m is bipartite.
//	error        - ErrNilMatrix for a nil matrix,
//	               ErrNotBipartite on the first conflicting edge.
//
// Isolated vertices become single-vertex components and join class A.
// Complexity: O(V²) time over the adjacency rows, O(V) extra memory.
func Partition(m *matrix.Matrix) (*Bipartition, error) {
	// 1) Guard the only invalid input shape; constructed matrices are sound.
	if m == nil {
		return nil, ErrNilMatrix
	}

	// 2) Shared traversal state: one color slot per vertex plus the classes
	//    accumulated in discovery order.
	p := &painter{
		m:      m,
		order:  m.Order(),
		colors: make([]int, m.Order()),
		part:   &Bipartition{},
	}

	// 3) Ascending root scan: every uncolored vertex seeds a new tree.
	for root := 0; root < p.order; root++ {
		if p.colors[root] != colorNone {
			continue
		}
		if !p.paint(root) {
			// 4) One same-colored edge anywhere disqualifies the graph.
			return nil, ErrNotBipartite
		}
	}

	return p.part, nil
}

// painter carries the mutable state of one Partition run.
type painter struct {
	m      *matrix.Matrix
	order  int
	colors []int
	part   *Bipartition
}

// paint two-colors the component rooted at root with an explicit stack that
// replays the recursive order: descend on the first uncolored neighbor,
// resume the saved column cursor once the subtree finishes. Reports false
// on the first edge joining two same-colored vertices.
func (p *painter) paint(root int) bool {
	// 1) Roots always open class A.
	p.assign(root, colorA)

	// 2) One frame per vertex on the current tree path.
	stack := make([]frame, 0, p.order)
	stack = append(stack, frame{vertex: root})
	for len(stack) > 0 {
		top := len(stack) - 1
		v := stack[top].vertex
		descended := false

		// 3) Ascending column sweep from the saved cursor.
		for stack[top].next < p.order {
			u := stack[top].next
			stack[top].next++
			if !p.m.Has(v, u) {
				continue
			}
			switch p.colors[u] {
			case colorNone:
				// 3a) Tree edge: opposite color, then descend immediately.
				p.assign(u, opposite(p.colors[v]))
				stack = append(stack, frame{vertex: u})
				descended = true
			case p.colors[v]:
				// 3b) Same color on both endpoints: not two-colorable.
				return false
			}
			if descended {
				break
			}
		}

		// 4) Cursor exhausted: the subtree under v is fully colored.
		if !descended {
			stack = stack[:top]
		}
	}

	return true
}

// assign colors v and appends it to the matching class, preserving
// discovery order.
func (p *painter) assign(v, c int) {
	p.colors[v] = c
	if c == colorA {
		p.part.A = append(p.part.A, v)
	} else {
		p.part.B = append(p.part.B, v)
	}
}

// opposite flips between the two classes.
func opposite(c int) int {
	if c == colorA {
		return colorB
	}

	return colorA
}
