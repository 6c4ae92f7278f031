// SPDX-License-Identifier: MIT
// Package: duopath/runner
//
// solve.go - oracle + search for one parsed instance.

package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/duopath/distance"
	"github.com/katalvlaran/duopath/instance"
	"github.com/katalvlaran/duopath/solver"
)

// Outcome is one solved instance.
type Outcome struct {
	Problem    solver.Problem
	Result     solver.Result
	OracleTime time.Duration
	SearchTime time.Duration
}

// Elapsed is the timed part of the run: oracle plus search.
func (o Outcome) Elapsed() time.Duration { return o.OracleTime + o.SearchTime }

// Solve builds the graph and the distance oracle of in and runs strategy s.
// With capped set the oracle is capped at in.D, keeping the target rows exact.
func Solve(ctx context.Context, in *instance.Instance, s solver.Strategy, capped bool) (Outcome, error) {
	g, err := in.Graph()
	if err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", in.Name, err)
	}

	dopts := []distance.Option{distance.WithContext(ctx)}
	if capped {
		dopts = append(dopts, distance.WithCap(in.D, in.TA, in.TB))
	}

	var out Outcome
	t0 := time.Now()
	dist, err := distance.Compute(g, dopts...)
	out.OracleTime = time.Since(t0)
	if err != nil {
		return out, fmt.Errorf("%s: distance oracle: %w", in.Name, err)
	}

	out.Problem = in.Problem(g, dist)
	t0 = time.Now()
	out.Result, err = solver.Solve(out.Problem, solver.WithStrategy(s), solver.WithContext(ctx))
	out.SearchTime = time.Since(t0)
	if err != nil {
		return out, fmt.Errorf("%s: %s search: %w", in.Name, s, err)
	}

	return out, nil
}
