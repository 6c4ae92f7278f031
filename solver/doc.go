// Package solver finds the minimum number of synchronized steps that take two
// agents from (s_a, s_b) to (t_a, t_b) on an undirected graph while staying
// more than D hops apart at every step, within a budget of T steps.
//
// What
//
//   - One entry point, Solve, parameterised by a Strategy:
//   - Unidirectional: BFS over composite states from start to goal.
//   - Bidirectional: two layered BFS trees meeting in the middle. Every
//     meeting is a candidate; the best total is kept and returned only once
//     no undiscovered meeting can beat it.
//   - BidirectionalEarlyExit: two trees grown one dequeued state at a time
//     from the shorter queue, returning the first meeting. Faster, but the
//     answer may exceed the optimum. Never the default.
//   - HalfStep: forward search in which each real step is split into an A
//     half-move and a B half-move, pruned with an admissible lower bound
//     built from the exact distances to both targets.
//   - Verify re-checks a Result against its Problem: endpoints, edge moves,
//     at least one mover per step, safety at every step, and k ≤ T.
//
// Result semantics
//
//	Feasible: K ≤ T, PathA/PathB are 1-indexed and hold K+1 vertices.
//	Infeasible: K == T+1 and both paths are empty. An unsafe start or goal
//	pair is infeasible regardless of T; start == goal gives K == 0.
//
// Complexity (n = |V|)
//
//   - Memory: O(n²) per search tree (two trees for Bidirectional, one of
//     size 2n² for HalfStep).
//   - Time: O(Σ deg(x)·deg(y)) over expanded states; HalfStep replaces the
//     product with deg(x)+deg(y).
//
// Cancellation
//
//	WithContext installs a context that is polled every 1024 expansions.
//	Without cancellation results are identical to the uncancellable search.
//
// Errors
//
//   - ErrBadProblem       nil adjacency/oracle, vertex out of range, negative
//     D or T, size mismatch, or an oracle whose rows cannot answer D.
//   - ErrUnknownStrategy  from ParseStrategy or WithStrategy.
//   - ErrOptionViolation  invalid functional option.
//   - ErrInvalidPath      from Verify.
package solver
