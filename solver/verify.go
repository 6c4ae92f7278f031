package solver

import (
	"fmt"
	"slices"
)

// Verify checks r against p: an infeasible result must report K == T+1 with
// empty paths; a feasible one must have K <= T, 1-indexed paths of K+1
// vertices joining the starts to the targets, edge-or-stay moves with at least
// one mover per step, and a safe pair at every step. Optimality is not
// checked. Violations wrap ErrInvalidPath.
func Verify(p Problem, r Result) error {
	if err := p.Validate(Unidirectional); err != nil {
		return err
	}
	if !r.Feasible {
		if r.K != p.T+1 || len(r.PathA) != 0 || len(r.PathB) != 0 {
			return fmt.Errorf("%w: infeasible result with k=%d and paths of %d/%d", ErrInvalidPath, r.K, len(r.PathA), len(r.PathB))
		}
		return nil
	}

	if r.K < 0 || r.K > p.T {
		return fmt.Errorf("%w: k=%d outside [0,%d]", ErrInvalidPath, r.K, p.T)
	}
	if len(r.PathA) != r.K+1 || len(r.PathB) != r.K+1 {
		return fmt.Errorf("%w: path lengths %d/%d, want %d", ErrInvalidPath, len(r.PathA), len(r.PathB), r.K+1)
	}

	n := len(p.Adj)
	a, b := make([]int, len(r.PathA)), make([]int, len(r.PathB))
	for i := range r.PathA {
		a[i], b[i] = r.PathA[i]-1, r.PathB[i]-1
		if a[i] < 0 || a[i] >= n || b[i] < 0 || b[i] >= n {
			return fmt.Errorf("%w: step %d vertex out of range", ErrInvalidPath, i)
		}
		if !p.Dist.Far(a[i], b[i], p.D) {
			return fmt.Errorf("%w: step %d agents at %d and %d are within %d", ErrInvalidPath, i, a[i]+1, b[i]+1, p.D)
		}
	}
	if a[0] != p.SA || b[0] != p.SB || a[r.K] != p.TA || b[r.K] != p.TB {
		return fmt.Errorf("%w: endpoints do not match the problem", ErrInvalidPath)
	}

	for i := 1; i <= r.K; i++ {
		movedA, movedB := a[i] != a[i-1], b[i] != b[i-1]
		if !movedA && !movedB {
			return fmt.Errorf("%w: step %d moves neither agent", ErrInvalidPath, i)
		}
		if movedA && !slices.Contains(p.Adj[a[i-1]], a[i]) {
			return fmt.Errorf("%w: step %d: A jumps %d→%d", ErrInvalidPath, i, a[i-1]+1, a[i]+1)
		}
		if movedB && !slices.Contains(p.Adj[b[i-1]], b[i]) {
			return fmt.Errorf("%w: step %d: B jumps %d→%d", ErrInvalidPath, i, b[i-1]+1, b[i]+1)
		}
	}

	return nil
}
