// SPDX-License-Identifier: MIT
// Package: duopath/solver
//
// types.go - Problem, Result, Strategy, options and sentinel errors.

package solver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/duopath/distance"
)

// Sentinel errors.
var (
	// ErrBadProblem indicates a structurally unusable Problem.
	ErrBadProblem = errors.New("solver: bad problem")

	// ErrUnknownStrategy is returned for an unrecognised strategy.
	ErrUnknownStrategy = errors.New("solver: unknown strategy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")

	// ErrInvalidPath is returned by Verify for a result that breaks the rules.
	ErrInvalidPath = errors.New("solver: invalid path")
)

// Strategy selects the search algorithm.
type Strategy int

const (
	// Unidirectional is plain BFS from start to goal.
	Unidirectional Strategy = iota
	// Bidirectional is meet-in-the-middle BFS with best-candidate tracking.
	Bidirectional
	// BidirectionalEarlyExit stops at the first meeting; may be suboptimal.
	BidirectionalEarlyExit
	// HalfStep is forward BFS over half-moves with lower-bound pruning.
	HalfStep
)

var strategyNames = [...]string{
	Unidirectional:         "unidirectional",
	Bidirectional:          "bidirectional",
	BidirectionalEarlyExit: "bidirectional-early-exit",
	HalfStep:               "halfstep",
}

// String returns the canonical strategy name.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// Exact reports whether the strategy always returns the optimal k.
func (s Strategy) Exact() bool { return s != BidirectionalEarlyExit }

// Strategies lists every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{Unidirectional, Bidirectional, BidirectionalEarlyExit, HalfStep}
}

// ParseStrategy maps a name (case-insensitive; "uni", "bi", "early", "half"
// accepted as short forms) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "unidirectional", "uni":
		return Unidirectional, nil
	case "bidirectional", "bi":
		return Bidirectional, nil
	case "bidirectional-early-exit", "early":
		return BidirectionalEarlyExit, nil
	case "halfstep", "half-step", "half":
		return HalfStep, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Problem is one query. Vertices are 0-indexed.
type Problem struct {
	// Adj is a symmetric adjacency snapshot (core.Graph.Adjacency).
	Adj [][]int
	// Dist answers the safety predicate; in capped mode its threshold must be
	// at least D and, for HalfStep, the rows of TA and TB must be exact.
	Dist *distance.Matrix

	SA, TA int // agent A: start, target
	SB, TB int // agent B: start, target

	D int // safety threshold: agents must stay strictly farther apart
	T int // step budget
}

// Stats counts search work. Counters are per query.
type Stats struct {
	Expanded  int // states whose successors were generated
	Generated int // states inserted into a search tree, roots included
	Pruned    int // HalfStep: states discarded by the lower bound
	Meetings  int // Bidirectional: candidate meetings seen
	Layers    int // Bidirectional: completed layer expansions
}

// Result is the answer to a Problem.
type Result struct {
	K        int
	PathA    []int // 1-indexed
	PathB    []int // 1-indexed
	Feasible bool
	Strategy Strategy
	Stats    Stats
}

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds the resolved Solve configuration.
type Options struct {
	Strategy Strategy
	Ctx      context.Context

	err error
}

// DefaultOptions returns Bidirectional with a background context.
func DefaultOptions() Options {
	return Options{Strategy: Bidirectional, Ctx: context.Background()}
}

// WithStrategy selects the search algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s < 0 || int(s) >= len(strategyNames) {
			o.err = fmt.Errorf("%w: %w: %d", ErrOptionViolation, ErrUnknownStrategy, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
