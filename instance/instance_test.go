package instance_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/duopath/distance"
	"github.com/katalvlaran/duopath/instance"
	"github.com/katalvlaran/duopath/solver"
)

const swapOnPath = `4 3 5 0
1 4 4 1
1 2
2 3
3 4
`

func TestParse_Valid(t *testing.T) {
	in, err := instance.ParseString("swap.in", swapOnPath)
	require.NoError(t, err)
	assert.Equal(t, "swap.in", in.Name)
	assert.Equal(t, 4, in.N)
	assert.Equal(t, 3, in.M)
	assert.Equal(t, 5, in.T)
	assert.Equal(t, 0, in.D)
	assert.Equal(t, [4]int{0, 3, 3, 0}, [4]int{in.SA, in.TA, in.SB, in.TB})
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}}, in.Edges)
}

func TestParse_LayoutInsensitive(t *testing.T) {
	in, err := instance.ParseString("flat", strings.Join(strings.Fields(swapOnPath), " "))
	require.NoError(t, err)
	assert.Len(t, in.Edges, 3)

	// tokens after the m-th edge are ignored
	_, err = instance.ParseString("extra", swapOnPath+"9 9\n")
	require.NoError(t, err)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		want error
	}{
		{"empty", "", instance.ErrTruncatedHeader},
		{"short header", "4 3 5 0\n1 4", instance.ErrTruncatedHeader},
		{"short edges", "4 3 5 0\n1 4 4 1\n1 2\n2", instance.ErrTruncatedEdges},
		{"start out of range", "4 0 5 0\n0 4 4 1\n", instance.ErrVertexOutOfRange},
		{"edge out of range", "4 1 5 0\n1 4 4 1\n1 5\n", instance.ErrVertexOutOfRange},
		{"letters", "4 1 5 0\n1 4 4 1\na b\n", instance.ErrMalformed},
		{"decimal", "4 1 5.5 0\n1 4 4 1\n1 2\n", instance.ErrMalformed},
		{"negative D", "4 0 5 -1\n1 4 4 1\n", instance.ErrMalformed},
		{"self loop", "4 1 5 0\n1 4 4 1\n2 2\n", instance.ErrSelfLoop},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := instance.ParseString(tc.name, tc.text)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	in, err := instance.ParseString("swap.in", swapOnPath)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, instance.Write(&buf, in))
	assert.Equal(t, swapOnPath, buf.String())
}

func TestLoad_SolvesEndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "swap.in")
	require.NoError(t, os.WriteFile(path, []byte(swapOnPath), 0o644))

	in, err := instance.Load(path)
	require.NoError(t, err)
	g, err := in.Graph()
	require.NoError(t, err)
	dist, err := distance.Compute(g)
	require.NoError(t, err)

	res, err := solver.Solve(in.Problem(g, dist))
	require.NoError(t, err)
	assert.Equal(t, 3, res.K)

	_, err = instance.Load(filepath.Join(dir, "missing.in"))
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestInstance_GraphCollapsesDuplicates(t *testing.T) {
	in, err := instance.ParseString("dup", "3 3 1 0\n1 2 2 1\n1 2\n2 1\n2 3\n")
	require.NoError(t, err)
	g, err := in.Graph()
	require.NoError(t, err)
	assert.Equal(t, 2, g.Size())
}

func TestParseExpected(t *testing.T) {
	exp, err := instance.ParseExpected(strings.NewReader("3 extra\n1 2 3 4\n4 3 2 1\n\n0,125 s\n\n"))
	require.NoError(t, err)
	require.NotNil(t, exp.K)
	require.NotNil(t, exp.Seconds)
	assert.Equal(t, 3, *exp.K)
	assert.InDelta(t, 0.125, *exp.Seconds, 1e-12)

	exp, err = instance.ParseExpected(strings.NewReader("impossible\n"))
	require.NoError(t, err)
	assert.Nil(t, exp.K)
	assert.Nil(t, exp.Seconds)

	exp, err = instance.ParseExpected(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, exp.K)
}

func TestReadExpected_Missing(t *testing.T) {
	_, err := instance.ReadExpected(filepath.Join(t.TempDir(), "nope.out"))
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, "dir/a.out", instance.ExpectedPath("dir/a.in"))
}
