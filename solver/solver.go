// SPDX-License-Identifier: MIT
// Package: duopath/solver
//
// solver.go - Solve entry point, problem validation and the shared query state.

package solver

import (
	"context"
	"fmt"

	"github.com/katalvlaran/duopath/bfs"
	"github.com/katalvlaran/duopath/statespace"
)

// pollMask sets how often the context is checked: every pollMask+1 expansions.
const pollMask = 1<<10 - 1

// query holds the per-call state shared by every strategy.
type query struct {
	p     Problem
	sp    *statespace.Space
	ctx   context.Context
	start int
	goal  int
	buf   []int
	ticks int
	stats Stats
}

// Solve answers p with the configured strategy (Bidirectional by default).
//
// An unsafe start or goal pair, or a goal that cannot be reached within T
// steps, yields a Result with K == T+1 and a nil error. Errors are reserved
// for malformed problems, bad options and cancellation.
func Solve(p Problem, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if err := p.Validate(o.Strategy); err != nil {
		return Result{}, err
	}

	sp, err := statespace.New(p.Adj, p.Dist, p.D)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrBadProblem, err)
	}
	q := &query{
		p:     p,
		sp:    sp,
		ctx:   o.Ctx,
		start: sp.Encode(p.SA, p.SB),
		goal:  sp.Encode(p.TA, p.TB),
	}

	if !sp.ValidState(q.start) || !sp.ValidState(q.goal) {
		return q.infeasible(o.Strategy), nil
	}
	if q.start == q.goal {
		return q.finish(o.Strategy, []int{q.start}), nil
	}
	// an agent whose target lies in another component never arrives
	if comp, _ := bfs.Components(p.Adj); comp[p.SA] != comp[p.TA] || comp[p.SB] != comp[p.TB] {
		return q.infeasible(o.Strategy), nil
	}

	var states []int
	switch o.Strategy {
	case Unidirectional:
		states, err = q.unidirectional()
	case Bidirectional:
		states, err = q.bidirectional()
	case BidirectionalEarlyExit:
		states, err = q.earlyExit()
	case HalfStep:
		states, err = q.halfStep()
	}
	if err != nil {
		return Result{}, err
	}
	if states == nil {
		return q.infeasible(o.Strategy), nil
	}

	return q.finish(o.Strategy, states), nil
}

// Validate checks p for structural problems before any search runs.
func (p Problem) Validate(s Strategy) error {
	if p.Adj == nil {
		return fmt.Errorf("%w: nil adjacency", ErrBadProblem)
	}
	if p.Dist == nil {
		return fmt.Errorf("%w: nil distance oracle", ErrBadProblem)
	}
	n := len(p.Adj)
	if p.Dist.N() != n {
		return fmt.Errorf("%w: oracle has %d vertices, graph %d", ErrBadProblem, p.Dist.N(), n)
	}
	for _, v := range [...]int{p.SA, p.TA, p.SB, p.TB} {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: vertex %d not in [0,%d)", ErrBadProblem, v, n)
		}
	}
	if p.D < 0 || p.T < 0 {
		return fmt.Errorf("%w: negative D (%d) or T (%d)", ErrBadProblem, p.D, p.T)
	}
	if p.Dist.Capped() && p.Dist.Threshold() < p.D {
		return fmt.Errorf("%w: oracle capped at %d cannot answer D=%d", ErrBadProblem, p.Dist.Threshold(), p.D)
	}
	if s == HalfStep && (!p.Dist.Exact(p.TA) || !p.Dist.Exact(p.TB)) {
		return fmt.Errorf("%w: half-step search needs exact target rows", ErrBadProblem)
	}

	return nil
}

// poll checks for cancellation every pollMask+1 calls.
func (q *query) poll() error {
	q.ticks++
	if q.ticks&pollMask != 0 {
		return nil
	}
	select {
	case <-q.ctx.Done():
		return q.ctx.Err()
	default:
		return nil
	}
}

func (q *query) infeasible(s Strategy) Result {
	return Result{K: q.p.T + 1, Strategy: s, Stats: q.stats}
}

// finish decodes the start-to-goal state sequence into 1-indexed paths.
func (q *query) finish(s Strategy, states []int) Result {
	pa, pb := make([]int, len(states)), make([]int, len(states))
	for i, st := range states {
		x, y := q.sp.Decode(st)
		pa[i], pb[i] = x+1, y+1
	}

	return Result{
		K:        len(states) - 1,
		PathA:    pa,
		PathB:    pb,
		Feasible: true,
		Strategy: s,
		Stats:    q.stats,
	}
}
