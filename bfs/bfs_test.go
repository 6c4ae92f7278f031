package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/duopath/bfs"
	"github.com/katalvlaran/duopath/core"
)

// graphOf builds an n-vertex graph from an edge list.
func graphOf(t testing.TB, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		_, err = g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := graphOf(t, 1)
	_, err = bfs.BFS(g, 1)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.BFS(g, -1)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	res, err := bfs.BFS(graphOf(t, 1), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
	assert.Equal(t, []int{0}, res.Depth)
	assert.Equal(t, []int{bfs.Unvisited}, res.Parent)
}

// TestCycleAndDepths covers a simple cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	// 0–1–2–3–0 undirected cycle
	g := graphOf(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	// neighbors are ascending, so the order is fully determined
	assert.Equal(t, []int{0, 1, 3, 2}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 1}, res.Depth)
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := graphOf(t, 4, [2]int{0, 1}, [2]int{2, 3})

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
	assert.False(t, res.Reached(2))
	assert.False(t, res.Reached(3))

	_, err = res.PathTo(3)
	require.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := graphOf(t, 3, [2]int{0, 1}, [2]int{1, 2})

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)

	res, err = bfs.BFS(g, 0, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)

	res, err = bfs.BFS(g, 0, bfs.WithMaxDepth(10))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
}

// TestBFS_ContextCancel stops before visiting anything.
func TestBFS_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(graphOf(t, 2, [2]int{0, 1}), 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestBFS_PathTo reconstructs a shortest path over two competing routes.
func TestBFS_PathTo(t *testing.T) {
	// route 0-1-2-3-6 (4 hops) and 0-4-5-6 (3 hops)
	g := graphOf(t, 7,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 6},
		[2]int{0, 4}, [2]int{4, 5}, [2]int{5, 6},
	)
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)

	path, err := res.PathTo(6)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 5, 6}, path)

	path, err = res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)
}

// TestDistances_MatchesBFS checks the allocation-free fast path against BFS.
func TestDistances_MatchesBFS(t *testing.T) {
	g := graphOf(t, 6,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{0, 4},
	)
	adj := g.Adjacency()
	dst := make([]int, len(adj))
	var queue []int

	for s := range adj {
		res, err := bfs.BFS(g, s)
		require.NoError(t, err)
		queue = bfs.Distances(adj, s, -1, bfs.Unvisited, dst, queue)
		assert.Equal(t, res.Depth, dst, "source %d", s)
	}
}

// TestDistances_Limit stops at the limit layer and marks the rest.
func TestDistances_Limit(t *testing.T) {
	g := graphOf(t, 5, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	dst := make([]int, 5)

	bfs.Distances(g.Adjacency(), 0, 2, 3, dst, nil)
	// 3 is at distance 3 > limit, 4 is isolated: both get the marker 3
	assert.Equal(t, []int{0, 1, 2, 3, 3}, dst)

	bfs.Distances(g.Adjacency(), 1, 0, 99, dst, nil)
	assert.Equal(t, []int{99, 0, 99, 99, 99}, dst)
}

func TestComponents(t *testing.T) {
	// 0-1-2, 3, 4-5
	g := graphOf(t, 6, [2]int{0, 1}, [2]int{1, 2}, [2]int{4, 5})
	label, count := bfs.Components(g.Adjacency())
	require.Equal(t, 3, count)
	require.Equal(t, []int{0, 0, 0, 1, 2, 2}, label)

	label, count = bfs.Components(nil)
	require.Zero(t, count)
	require.Empty(t, label)
}
