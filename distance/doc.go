// Package distance precomputes all-pairs hop distances for the safety
// predicate of the two-agent search.
//
// Two modes are offered:
//
//   - Exact (default): one unbounded BFS per source. Entry (u,v) is the
//     shortest hop count or Unreachable (-1).
//   - Capped (WithCap(D, targets...)): sources that are not targets stop at
//     depth D, so every pair beyond D hops, reachable or not, reads D+1.
//     Target rows stay exact because the half-step heuristic needs the true
//     remaining distance to the goal.
//
// In both modes Far(u,v,D) answers the same question, so solvers are
// unaffected by the choice; only the cost of precomputation changes.
//
// The matrix is stored as a flat []int32 to keep n² entries compact.
package distance
