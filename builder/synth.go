// SPDX-License-Identifier: MIT
// Package: duopath/builder
//
// synth.go - random two-agent instances over generated graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/duopath/bfs"
	"github.com/katalvlaran/duopath/core"
	"github.com/katalvlaran/duopath/distance"
	"github.com/katalvlaran/duopath/instance"
)

const methodRandomInstance = "RandomInstance"

// RandomInstance draws a start pair uniformly among the ordered vertex pairs
// of g that are farther apart than d (or disconnected), then a goal pair
// uniformly among the safe pairs whose vertices each agent can reach from its
// start within t hops. The result carries g's edges, threshold d and budget t.
//
// Errors: ErrTooFewVertices for negative d or t, ErrNeedRandSource without an
// RNG, ErrNoSafePair when no pair qualifies.
func RandomInstance(name string, g *core.Graph, d, t int, opts ...BuilderOption) (*instance.Instance, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: nil graph: %w", methodRandomInstance, ErrConstructFailed)
	}
	if d < 0 || t < 0 {
		return nil, fmt.Errorf("%s: d=%d, t=%d must be ≥ 0: %w", methodRandomInstance, d, t, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: rng is required: %w", methodRandomInstance, ErrNeedRandSource)
	}

	dist, err := distance.Compute(g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomInstance, err)
	}
	n := g.Order()
	var safe [][2]int
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if dist.Far(x, y, d) {
				safe = append(safe, [2]int{x, y})
			}
		}
	}
	if len(safe) == 0 {
		return nil, fmt.Errorf("%s: n=%d, d=%d: %w", methodRandomInstance, n, d, ErrNoSafePair)
	}

	start := safe[cfg.rng.Intn(len(safe))]
	reach := []bfs.Option{bfs.WithContext(cfg.ctx)}
	if t > 0 {
		reach = append(reach, bfs.WithMaxDepth(t))
	}
	fromA, err := bfs.BFS(g, start[0], reach...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomInstance, err)
	}
	fromB, err := bfs.BFS(g, start[1], reach...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomInstance, err)
	}
	// the start pair itself always qualifies; MaxDepth 0 means no limit,
	// so the depth is checked again for t == 0
	goals := safe[:0]
	for _, p := range safe {
		if fromA.Reached(p[0]) && fromB.Reached(p[1]) && fromA.Depth[p[0]] <= t && fromB.Depth[p[1]] <= t {
			goals = append(goals, p)
		}
	}
	goal := goals[cfg.rng.Intn(len(goals))]
	edges := g.Edges()

	return &instance.Instance{
		Name:  name,
		N:     n,
		M:     len(edges),
		T:     t,
		D:     d,
		SA:    start[0],
		SB:    start[1],
		TA:    goal[0],
		TB:    goal[1],
		Edges: edges,
	}, nil
}
