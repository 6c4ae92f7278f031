package distance_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/duopath/core"
	"github.com/katalvlaran/duopath/distance"
)

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

func pathGraph(t testing.TB, n int) *core.Graph {
	t.Helper()
	edges := make([][2]int, 0, n)
	for i := 1; i < n; i++ {
		edges = append(edges, [2]int{i - 1, i})
	}

	return graphOf(t, n, edges...)
}

// randomGraph returns a G(n,p)-style graph from a fixed seed.
func randomGraph(t testing.TB, n int, p float64, seed int64) *core.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				_, err = g.AddEdge(u, v)
				require.NoError(t, err)
			}
		}
	}

	return g
}

func TestCompute_Errors(t *testing.T) {
	_, err := distance.Compute(nil)
	require.ErrorIs(t, err, distance.ErrGraphNil)

	g := pathGraph(t, 3)
	_, err = distance.Compute(g, distance.WithCap(-1))
	require.ErrorIs(t, err, distance.ErrOptionViolation)

	_, err = distance.Compute(g, distance.WithCap(1, 3))
	require.ErrorIs(t, err, distance.ErrOptionViolation)

	_, err = distance.FromRows([][]int{{0, 1}, {1}})
	require.ErrorIs(t, err, distance.ErrNonSquare)
}

func TestCompute_ExactPath(t *testing.T) {
	m, err := distance.Compute(pathGraph(t, 5))
	require.NoError(t, err)
	require.Equal(t, 5, m.N())
	assert.False(t, m.Capped())
	for u := 0; u < 5; u++ {
		for v := 0; v < 5; v++ {
			want := u - v
			if want < 0 {
				want = -want
			}
			assert.Equal(t, want, m.At(u, v), "d(%d,%d)", u, v)
		}
	}
	assert.True(t, m.Symmetric())
	assert.Equal(t, []int32{0, 1, 2, 3, 4}, m.Row(0))
}

func TestCompute_Disconnected(t *testing.T) {
	// 0-1   2-3
	m, err := distance.Compute(graphOf(t, 4, [2]int{0, 1}, [2]int{2, 3}))
	require.NoError(t, err)
	assert.Equal(t, distance.Unreachable, m.At(0, 2))
	assert.Equal(t, distance.Unreachable, m.At(3, 1))
	assert.True(t, m.Far(0, 3, 100), "unreachable is farther than any threshold")
	assert.False(t, m.Far(0, 1, 0))
}

func TestCompute_Far(t *testing.T) {
	m, err := distance.Compute(pathGraph(t, 4))
	require.NoError(t, err)
	// d(0,3) == 3
	assert.True(t, m.Far(0, 3, 2))
	assert.False(t, m.Far(0, 3, 3))
	assert.False(t, m.Far(2, 2, 0), "a vertex is never far from itself")
}

// TestCompute_CappedAgreesOnFar checks that the capped matrix answers every
// safety query exactly like the exact one, and that target rows stay exact.
func TestCompute_CappedAgreesOnFar(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := randomGraph(t, 30, 0.08, seed)
		exact, err := distance.Compute(g)
		require.NoError(t, err)

		for _, d := range []int{0, 1, 2, 4} {
			capped, err := distance.Compute(g, distance.WithCap(d, 7, 19))
			require.NoError(t, err)
			require.True(t, capped.Capped())
			require.Equal(t, d, capped.Threshold())

			for u := 0; u < 30; u++ {
				for v := 0; v < 30; v++ {
					require.Equal(t, exact.Far(u, v, d), capped.Far(u, v, d),
						"seed %d D=%d pair (%d,%d)", seed, d, u, v)
				}
			}
			for _, tgt := range []int{7, 19} {
				assert.True(t, capped.Exact(tgt))
				assert.Equal(t, exact.Row(tgt), capped.Row(tgt))
			}
		}
	}
}

func TestCompute_CappedStoresCapPlusOne(t *testing.T) {
	// 0-1-2-3   4 isolated
	g := graphOf(t, 5, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	m, err := distance.Compute(g, distance.WithCap(1, 3))
	require.NoError(t, err)

	assert.Equal(t, []int32{0, 1, 2, 2, 2}, m.Row(0))
	assert.Equal(t, []int32{3, 2, 1, 0, distance.Unreachable}, m.Row(3))
	assert.False(t, m.Exact(0))
	assert.True(t, m.Exact(3))
	assert.True(t, m.Symmetric(), "only exact rows are compared")
}

func TestCompute_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := distance.Compute(pathGraph(t, 3), distance.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestFromRows(t *testing.T) {
	m, err := distance.FromRows([][]int{{0, 1, -7}, {1, 0, -1}, {-1, -1, 0}})
	require.NoError(t, err)
	assert.Equal(t, distance.Unreachable, m.At(0, 2))
	assert.True(t, m.Symmetric())
	assert.True(t, m.Exact(2))
}
