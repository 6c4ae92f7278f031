// SPDX-License-Identifier: MIT
// Package: duopath/instance
//
// instance.go - Instance type, token grammar and loader.

package instance

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/katalvlaran/duopath/core"
	"github.com/katalvlaran/duopath/distance"
	"github.com/katalvlaran/duopath/solver"
)

// Sentinel errors for malformed input.
var (
	// ErrTruncatedHeader is returned when the stream ends inside the first
	// eight integers.
	ErrTruncatedHeader = errors.New("instance: input ended in the header")

	// ErrTruncatedEdges is returned when fewer than m edges follow the header.
	ErrTruncatedEdges = errors.New("instance: input ended in the edge list")

	// ErrVertexOutOfRange is returned for a vertex outside [1,n].
	ErrVertexOutOfRange = errors.New("instance: vertex out of range")

	// ErrMalformed is returned for non-integer tokens or negative n, m, T, D.
	ErrMalformed = errors.New("instance: malformed input")

	// ErrSelfLoop is returned for an edge u u.
	ErrSelfLoop = errors.New("instance: self-loop edge")
)

// headerLen is n m T D s_a t_a s_b t_b.
const headerLen = 8

// Instance is one parsed problem. Vertices are 0-indexed.
type Instance struct {
	Name string

	N, M int
	T, D int

	SA, TA int
	SB, TB int

	// Edges holds the m edges in file order; duplicates are kept as read.
	Edges [][2]int
}

var tokenLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "whitespace", Pattern: `\s+`},
})

type token struct {
	Pos   lexer.Position
	Value int `parser:"@Int"`
}

type tokenStream struct {
	Tokens []*token `parser:"@@*"`
}

var parseTokens = participle.MustBuild[tokenStream](participle.Lexer(tokenLexer))

// Load reads and parses the instance file at path. Name is the base name.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(filepath.Base(path), f)
}

// Parse reads an instance from r; name labels error positions and Instance.
func Parse(name string, r io.Reader) (*Instance, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return ParseString(name, string(raw))
}

// ParseString parses an instance held in memory.
func ParseString(name, text string) (*Instance, error) {
	ts, err := parseTokens.ParseString(name, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	toks := ts.Tokens
	if len(toks) < headerLen {
		return nil, fmt.Errorf("%w: %d of %d integers", ErrTruncatedHeader, len(toks), headerLen)
	}

	in := &Instance{
		Name: name,
		N:    toks[0].Value, M: toks[1].Value,
		T: toks[2].Value, D: toks[3].Value,
	}
	for i, v := range [...]int{in.N, in.M, in.T, in.D} {
		if v < 0 {
			return nil, fmt.Errorf("%w: %s: negative header value %d", ErrMalformed, toks[i].Pos, v)
		}
	}

	ends := [4]int{}
	for i := range ends {
		tok := toks[4+i]
		if tok.Value < 1 || tok.Value > in.N {
			return nil, fmt.Errorf("%w: %s: %d not in [1,%d]", ErrVertexOutOfRange, tok.Pos, tok.Value, in.N)
		}
		ends[i] = tok.Value - 1
	}
	in.SA, in.TA, in.SB, in.TB = ends[0], ends[1], ends[2], ends[3]

	body := toks[headerLen:]
	if len(body) < 2*in.M {
		return nil, fmt.Errorf("%w: %d of %d edges", ErrTruncatedEdges, len(body)/2, in.M)
	}
	in.Edges = make([][2]int, 0, in.M)
	for i := 0; i < in.M; i++ {
		u, v := body[2*i], body[2*i+1]
		for _, tok := range [...]*token{u, v} {
			if tok.Value < 1 || tok.Value > in.N {
				return nil, fmt.Errorf("%w: %s: %d not in [1,%d]", ErrVertexOutOfRange, tok.Pos, tok.Value, in.N)
			}
		}
		if u.Value == v.Value {
			return nil, fmt.Errorf("%w: %s: %d %d", ErrSelfLoop, u.Pos, u.Value, v.Value)
		}
		in.Edges = append(in.Edges, [2]int{u.Value - 1, v.Value - 1})
	}

	return in, nil
}

// Graph builds the core.Graph of in; parallel edges collapse.
func (in *Instance) Graph() (*core.Graph, error) {
	g, err := core.NewGraph(in.N)
	if err != nil {
		return nil, err
	}
	for _, e := range in.Edges {
		if _, err = g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Problem binds in to a graph snapshot and its oracle.
func (in *Instance) Problem(g *core.Graph, dist *distance.Matrix) solver.Problem {
	return solver.Problem{
		Adj:  g.Adjacency(),
		Dist: dist,
		SA:   in.SA, TA: in.TA,
		SB: in.SB, TB: in.TB,
		D: in.D, T: in.T,
	}
}

// Write renders in in the file format, one edge per line.
func Write(w io.Writer, in *Instance) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d %d %d\n", in.N, len(in.Edges), in.T, in.D)
	fmt.Fprintf(&sb, "%d %d %d %d\n", in.SA+1, in.TA+1, in.SB+1, in.TB+1)
	for _, e := range in.Edges {
		fmt.Fprintf(&sb, "%d %d\n", e[0]+1, e[1]+1)
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// WriteFile writes in to path, creating or truncating it.
func WriteFile(path string, in *Instance) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Write(f, in); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
