// SPDX-License-Identifier: MIT
// Package: duopath/distance
//
// oracle.go - all-pairs hop distances by one BFS per source.
//
// Contract:
//   - Exact mode: entry (u,v) is the shortest hop count, or Unreachable.
//   - Capped mode (WithCap(D, targets...)): non-target rows stop expanding at
//     depth D and store D+1 for everything not found; target rows are exact.
//
// Complexity:
//   - Time: O(n·(n+m)); Space: O(n²) int32 plus O(n) scratch.

package distance

import (
	"fmt"

	"github.com/katalvlaran/duopath/bfs"
	"github.com/katalvlaran/duopath/core"
)

// Compute builds the distance Matrix of g.
//
// Errors:
//   - ErrGraphNil: g is nil.
//   - ErrOptionViolation: invalid option or target out of range.
//   - ctx.Err(): the context was cancelled between rows.
func Compute(g *core.Graph, opts ...Option) (*Matrix, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return FromAdjacency(g.Adjacency(), opts...)
}

// FromAdjacency is Compute over a raw adjacency snapshot. adj must be
// symmetric (as produced by core.Graph.Adjacency) for the result to be a
// valid undirected distance matrix.
func FromAdjacency(adj [][]int, opts ...Option) (*Matrix, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := len(adj)
	m := &Matrix{
		n:      n,
		data:   make([]int32, n*n),
		capped: o.Capped,
		exact:  make([]bool, n),
	}
	if o.Capped {
		m.threshold = o.Threshold
		for _, t := range o.Targets {
			if t < 0 || t >= n {
				return nil, fmt.Errorf("%w: target %d not in [0,%d)", ErrOptionViolation, t, n)
			}
			m.exact[t] = true
		}
	} else {
		for u := range m.exact {
			m.exact[u] = true
		}
	}

	var (
		row   = make([]int, n)
		queue = make([]int, 0, n)
		base  int
	)
	for s := 0; s < n; s++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		if m.exact[s] {
			queue = bfs.Distances(adj, s, -1, Unreachable, row, queue)
		} else {
			queue = bfs.Distances(adj, s, o.Threshold, o.Threshold+1, row, queue)
		}
		base = s * n
		for v, d := range row {
			m.data[base+v] = int32(d)
		}
	}

	return m, nil
}

// FromRows wraps an externally computed distance table (negative entries are
// normalised to Unreachable). The result is treated as exact.
func FromRows(rows [][]int) (*Matrix, error) {
	n := len(rows)
	m := &Matrix{n: n, data: make([]int32, n*n), exact: make([]bool, n)}
	for u, r := range rows {
		if len(r) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrNonSquare, u, len(r), n)
		}
		for v, d := range r {
			if d < 0 {
				d = Unreachable
			}
			m.data[u*n+v] = int32(d)
		}
		m.exact[u] = true
	}

	return m, nil
}

// Symmetric reports whether the exact rows form a valid undirected distance
// table: zero diagonal and agreement between every pair of exact rows.
func (m *Matrix) Symmetric() bool {
	for u := 0; u < m.n; u++ {
		if !m.exact[u] {
			continue
		}
		if m.data[u*m.n+u] != 0 {
			return false
		}
		for v := u + 1; v < m.n; v++ {
			if m.exact[v] && m.data[u*m.n+v] != m.data[v*m.n+u] {
				return false
			}
		}
	}

	return true
}
