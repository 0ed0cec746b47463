package bipartite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bipart/bipartite"
	"github.com/katalvlaran/bipart/matrix"
)

func TestOddCycle_NilMatrix(t *testing.T) {
	cycle, err := bipartite.OddCycle(nil)
	assert.Nil(t, cycle)
	assert.ErrorIs(t, err, bipartite.ErrNilMatrix)
}

func TestOddCycle_Triangle(t *testing.T) {
	cycle, err := bipartite.OddCycle(mustMatrix(t, [][]int{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}))
	require.NoError(t, err)

	// Vertex 2 sees the back-edge to 0 and the chain walks backward.
	assert.Equal(t, []int{2, 1, 0}, cycle)
}

func TestOddCycle_Pentagon(t *testing.T) {
	m := withEdges(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	cycle, err := bipartite.OddCycle(m)
	require.NoError(t, err)

	assert.Equal(t, []int{4, 3, 2, 1, 0}, cycle)
}

func TestOddCycle_CompleteGraph(t *testing.T) {
	// In K_5 the third discovered vertex already neighbors the root, so
	// the very first chain of two tree edges closes a triangle.
	m := withEdges(t, 5, [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {0, 4},
		{1, 2}, {1, 3}, {1, 4},
		{2, 3}, {2, 4},
		{3, 4},
	})
	cycle, err := bipartite.OddCycle(m)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 1, 0}, cycle)
}

func TestOddCycle_FirstComponentWins(t *testing.T) {
	// Two disjoint triangles: the lower-numbered component is reported.
	m := withEdges(t, 6, [][2]int{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
	})
	cycle, err := bipartite.OddCycle(m)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 1, 0}, cycle)
}

func TestOddCycle_SkipsAcyclicComponent(t *testing.T) {
	// A single edge first, then a triangle: the edge closes nothing and
	// the scan moves on to the cyclic component.
	m := withEdges(t, 5, [][2]int{
		{0, 1},
		{2, 3}, {3, 4}, {4, 2},
	})
	cycle, err := bipartite.OddCycle(m)
	require.NoError(t, err)

	assert.Equal(t, []int{4, 3, 2}, cycle)
}

func TestOddCycle_Forest(t *testing.T) {
	// A path and an isolated vertex: no back-edge ever closes.
	m := withEdges(t, 4, [][2]int{{0, 1}, {1, 2}})
	cycle, err := bipartite.OddCycle(m)
	assert.Nil(t, cycle)
	assert.ErrorIs(t, err, bipartite.ErrNoOddCycle)
}

func TestOddCycle_SingleVertex(t *testing.T) {
	cycle, err := bipartite.OddCycle(edgeless(t, 1))
	assert.Nil(t, cycle)
	assert.ErrorIs(t, err, bipartite.ErrNoOddCycle)
}

// TestOddCycle_EvenSquare pins the contract literally: the first closed
// cycle is returned even when it is even. A bare square is bipartite, so
// Partition would never hand it to OddCycle, but calling it directly shows
// what the traversal closes.
func TestOddCycle_EvenSquare(t *testing.T) {
	m := withEdges(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	cycle, err := bipartite.OddCycle(m)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 2, 1, 0}, cycle)
	assert.ErrorIs(t, bipartite.VerifyOddCycle(m, cycle), bipartite.ErrCycleInvalid)
}

// TestOddCycle_EvenCycleClosedBeforeOddOne shows the same contract on a
// non-bipartite graph: a square with a pendant triangle hanging off vertex
// 1 closes the square first, so the witness is even and only VerifyOddCycle
// tells the caller so.
func TestOddCycle_EvenCycleClosedBeforeOddOne(t *testing.T) {
	m := withEdges(t, 6, [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // square, closed first
		{1, 4}, {4, 5}, {5, 1}, // triangle reached later
	})
	_, err := bipartite.Partition(m)
	require.ErrorIs(t, err, bipartite.ErrNotBipartite)

	cycle, err := bipartite.OddCycle(m)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 2, 1, 0}, cycle)
	assert.ErrorIs(t, bipartite.VerifyOddCycle(m, cycle), bipartite.ErrCycleInvalid)
}

// TestOddCycle_AgreesWithPartition checks the usual pairing: on graphs
// whose first closed cycle is odd, Partition rejects and OddCycle hands
// back a witness that survives verification.
func TestOddCycle_AgreesWithPartition(t *testing.T) {
	cases := map[string]*matrix.Matrix{
		"triangle":      withEdges(t, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}}),
		"pentagon":      withEdges(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}),
		"heptagon":      withEdges(t, 7, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 0}}),
		"two triangles": withEdges(t, 6, [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}}),
		"complete four": withEdges(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}),
	}
	for name, m := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := bipartite.Partition(m)
			require.ErrorIs(t, err, bipartite.ErrNotBipartite)

			cycle, err := bipartite.OddCycle(m)
			require.NoError(t, err)
			assert.NoError(t, bipartite.VerifyOddCycle(m, cycle))
		})
	}
}

// TestOddCycle_LeavesPartitionUntouched makes sure the two passes stay
// independent: running OddCycle first changes nothing about Partition.
func TestOddCycle_LeavesPartitionUntouched(t *testing.T) {
	m := withEdges(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})

	_, err := bipartite.OddCycle(m)
	require.NoError(t, err)

	bp, err := bipartite.Partition(m)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, bp.A)
	assert.Equal(t, []int{1, 3}, bp.B)
}
