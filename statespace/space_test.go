package statespace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/duopath/core"
	"github.com/katalvlaran/duopath/distance"
	"github.com/katalvlaran/duopath/statespace"
)

func spaceOf(t *testing.T, n, d int, edges ...[2]int) *statespace.Space {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		_, err = g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	m, err := distance.Compute(g)
	require.NoError(t, err)
	s, err := statespace.New(g.Adjacency(), m, d)
	require.NoError(t, err)

	return s
}

func TestNew_Errors(t *testing.T) {
	m, err := distance.FromRows([][]int{{0, 1}, {1, 0}})
	require.NoError(t, err)

	_, err = statespace.New(nil, m, 0)
	require.ErrorIs(t, err, statespace.ErrNilAdjacency)
	_, err = statespace.New([][]int{{1}, {0}}, nil, 0)
	require.ErrorIs(t, err, statespace.ErrNilOracle)
	_, err = statespace.New([][]int{{}}, m, 0)
	require.ErrorIs(t, err, statespace.ErrSizeMismatch)
	_, err = statespace.New([][]int{{1}, {0}}, m, -1)
	require.ErrorIs(t, err, statespace.ErrNegativeThreshold)
}

func TestEncodeDecode(t *testing.T) {
	s := spaceOf(t, 7, 0)
	assert.Equal(t, 49, s.Size())
	for x := 0; x < 7; x++ {
		for y := 0; y < 7; y++ {
			p := s.Encode(x, y)
			gx, gy := s.Decode(p)
			require.Equal(t, [2]int{x, y}, [2]int{gx, gy})

			h := statespace.HalfEncode(p, statespace.Pending)
			hp, bit := statespace.HalfDecode(h)
			require.Equal(t, p, hp)
			require.Equal(t, 1, bit)
			hp, bit = statespace.HalfDecode(statespace.HalfEncode(p, 0))
			require.Equal(t, p, hp)
			require.Equal(t, 0, bit)
		}
	}
}

func TestValid(t *testing.T) {
	// 0-1-2-3, 4 isolated
	s := spaceOf(t, 5, 1, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	assert.False(t, s.Valid(0, 0))
	assert.False(t, s.Valid(0, 1), "distance 1 is not > 1")
	assert.True(t, s.Valid(0, 2))
	assert.True(t, s.Valid(0, 4), "unreachable is always safe")
	assert.True(t, s.ValidState(s.Encode(3, 1)))
}

// TestSuccessors_ExcludesIdentity walks every state of a small cycle and checks
// the step rule: at least one agent moves, moves follow edges, every
// successor is valid and listed once.
func TestSuccessors_ExcludesIdentity(t *testing.T) {
	s := spaceOf(t, 5, 0, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 0})
	adjacent := func(u, v int) bool {
		for _, w := range s.Neighbors(u) {
			if w == v {
				return true
			}
		}
		return false
	}

	var buf []int
	for p := 0; p < s.Size(); p++ {
		x, y := s.Decode(p)
		buf = s.Successors(p, buf[:0])
		seen := map[int]bool{}
		for _, q := range buf {
			require.NotEqual(t, p, q)
			require.False(t, seen[q], "duplicate successor")
			seen[q] = true

			x2, y2 := s.Decode(q)
			require.True(t, s.Valid(x2, y2))
			require.True(t, x2 == x || adjacent(x, x2))
			require.True(t, y2 == y || adjacent(y, y2))
		}
	}
}

func TestSuccessors_Order(t *testing.T) {
	// 0-1-2 path, D=0
	s := spaceOf(t, 3, 0, [2]int{0, 1}, [2]int{1, 2})
	got := s.Successors(s.Encode(0, 2), nil)
	// both: (1,1) is invalid; A alone: (1,2); B alone: (0,1)
	assert.Equal(t, []int{s.Encode(1, 2), s.Encode(0, 1)}, got)

	got = s.Successors(s.Encode(1, 0), nil)
	// both: (0,1),(2,1); A alone: (0,0) invalid,(2,0); B alone: (1,1) invalid
	assert.Equal(t, []int{s.Encode(0, 1), s.Encode(2, 1), s.Encode(2, 0)}, got)
}
