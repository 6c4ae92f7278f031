// SPDX-License-Identifier: MIT
// Package: duopath/statespace
//
// space.go - composite state encoding, validity and successor generation.

package statespace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/duopath/distance"
)

// Sentinel errors for Space construction.
var (
	// ErrNilAdjacency is returned when no adjacency is supplied.
	ErrNilAdjacency = errors.New("statespace: adjacency is nil")

	// ErrNilOracle is returned when no distance matrix is supplied.
	ErrNilOracle = errors.New("statespace: distance oracle is nil")

	// ErrSizeMismatch is returned when adjacency and oracle disagree on n.
	ErrSizeMismatch = errors.New("statespace: adjacency and oracle sizes differ")

	// ErrNegativeThreshold is returned for D < 0.
	ErrNegativeThreshold = errors.New("statespace: negative safety threshold")
)

// Space is the product state space of two agents on one graph under the
// safety threshold D. It is read-only after New and safe for concurrent use.
type Space struct {
	adj  [][]int
	dist *distance.Matrix
	n    int
	d    int
}

// New binds an adjacency snapshot and its distance oracle to the threshold d.
func New(adj [][]int, dist *distance.Matrix, d int) (*Space, error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	if dist == nil {
		return nil, ErrNilOracle
	}
	if dist.N() != len(adj) {
		return nil, fmt.Errorf("%w: adjacency %d, oracle %d", ErrSizeMismatch, len(adj), dist.N())
	}
	if d < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeThreshold, d)
	}

	return &Space{adj: adj, dist: dist, n: len(adj), d: d}, nil
}

// N returns the number of graph vertices.
func (s *Space) N() int { return s.n }

// Size returns the number of composite states, n².
func (s *Space) Size() int { return s.n * s.n }

// Threshold returns D.
func (s *Space) Threshold() int { return s.d }

// Oracle returns the bound distance matrix.
func (s *Space) Oracle() *distance.Matrix { return s.dist }

// Encode packs (x, y) into a composite state.
func (s *Space) Encode(x, y int) int { return x*s.n + y }

// Decode unpacks a composite state.
func (s *Space) Decode(p int) (x, y int) { return p / s.n, p % s.n }

// Valid reports whether agents at x and y satisfy the safety constraint.
func (s *Space) Valid(x, y int) bool { return s.dist.Far(x, y, s.d) }

// ValidState is Valid for an encoded state.
func (s *Space) ValidState(p int) bool { return s.Valid(s.Decode(p)) }

// Successors appends to dst every valid state one step away from p and
// returns the extended slice. The order is fixed: both agents move (A's
// neighbours outer, B's inner), then A alone, then B alone.
func (s *Space) Successors(p int, dst []int) []int {
	x, y := s.Decode(p)
	nx, ny := s.adj[x], s.adj[y]

	for _, x2 := range nx {
		for _, y2 := range ny {
			if x2 == x && y2 == y {
				continue
			}
			if s.Valid(x2, y2) {
				dst = append(dst, x2*s.n+y2)
			}
		}
	}
	for _, x2 := range nx {
		if x2 != x && s.Valid(x2, y) {
			dst = append(dst, x2*s.n+y)
		}
	}
	for _, y2 := range ny {
		if y2 != y && s.Valid(x, y2) {
			dst = append(dst, x*s.n+y2)
		}
	}

	return dst
}

// Neighbors returns the adjacency list of v. The slice must not be modified.
func (s *Space) Neighbors(v int) []int { return s.adj[v] }

// Pending is the half-step bit marking "A moved, B still owes a move".
const Pending = 1

// HalfEncode packs a composite state and the pending bit.
func HalfEncode(p, bit int) int { return p<<1 | bit&1 }

// HalfDecode unpacks a half-step state.
func HalfDecode(h int) (p, bit int) { return h >> 1, h & 1 }
