// SPDX-License-Identifier: MIT
// Package: duopath/distance
//
// types.go - Matrix type, options and sentinel errors.

package distance

import (
	"context"
	"errors"
	"fmt"
)

// Unreachable is stored for vertex pairs with no connecting path. It stands
// for an infinite distance and therefore satisfies every finite threshold.
const Unreachable = -1

// Sentinel errors for distance computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("distance: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("distance: invalid option supplied")

	// ErrNonSquare is returned by FromRows for ragged or non-square input.
	ErrNonSquare = errors.New("distance: matrix is not square")
)

// Option configures Compute via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation by Compute.
type Option func(*Options)

// Options holds the resolved Compute configuration.
type Options struct {
	// Ctx is polled once per source row.
	Ctx context.Context

	// Capped enables the depth-capped mode.
	Capped bool

	// Threshold is the safety threshold D used by the capped mode: rows of
	// non-target sources store min(d, Threshold+1).
	Threshold int

	// Targets are computed with an exact, uncapped search even in capped mode.
	Targets []int

	err error
}

// DefaultOptions returns exact all-pairs mode with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCap enables the capped mode for threshold d. Rows of the given target
// vertices stay exact; the heuristic half-step search reads them.
//
//	d >= 0: capped mode
//	d < 0:  invalid option → ErrOptionViolation
func WithCap(d int, targets ...int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: cap threshold cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.Capped = true
		o.Threshold = d
		o.Targets = append(o.Targets[:0], targets...)
	}
}

// Matrix is a dense n×n hop-distance table stored row-major.
//
// In exact mode it is symmetric with a zero diagonal. In capped mode row u is
// exact for target sources and min(d(u,v), Threshold+1) otherwise; anything
// beyond the cap, reachable or not, reads as Threshold+1.
type Matrix struct {
	n         int
	data      []int32
	capped    bool
	threshold int
	exact     []bool // exact[u] reports whether row u is uncapped
}

// N returns the number of vertices.
func (m *Matrix) N() int { return m.n }

// Capped reports whether the matrix was built in capped mode.
func (m *Matrix) Capped() bool { return m.capped }

// Threshold returns the cap threshold D (0 for exact matrices).
func (m *Matrix) Threshold() int { return m.threshold }

// Exact reports whether row u holds exact distances.
func (m *Matrix) Exact(u int) bool { return m.exact[u] }

// At returns the stored distance of row u, column v, or Unreachable.
// Indices are not range-checked; callers index with validated vertices.
func (m *Matrix) At(u, v int) int {
	return int(m.data[u*m.n+v])
}

// Row returns row u as a read-only view of the underlying storage.
func (m *Matrix) Row(u int) []int32 {
	return m.data[u*m.n : (u+1)*m.n : (u+1)*m.n]
}

// Far reports whether the pair (u,v) satisfies the safety constraint for
// threshold d: unreachable, or strictly farther than d hops.
func (m *Matrix) Far(u, v, d int) bool {
	x := m.data[u*m.n+v]

	return x == Unreachable || int(x) > d
}
