// Package duopath finds the shortest coordinated walk of two agents on an
// undirected graph when the agents must stay more than D hops apart.
//
// Each step moves one or both agents to an adjacent vertex; the pair of
// positions after every step must be safe (farther apart than D, or in
// different components). The answer k is the fewest steps that bring both
// agents to their targets, or T+1 when no walk of at most T steps exists.
//
// Layout:
//
//	core/       thread-safe undirected Graph with ordered neighbour sets
//	bfs/        breadth-first search, capped distance rows, components
//	distance/   all-pairs hop distances, exact or capped at D
//	statespace/ product states (x,y) and their safe successors
//	solver/     unidirectional, bidirectional and half-step searches
//	instance/   .in/.out file formats
//	builder/    graph families and random instances
//	report/     CSV and YAML result rows
//	runner/     folder batches, telemetry and metrics
//	config/, logging/, telemetry/ process wiring for cmd/duopath
//
// Quick start:
//
//	in, _ := instance.Load("testcases/1.in")
//	out, _ := runner.Solve(ctx, in, solver.Bidirectional, false)
//	fmt.Println(out.Result.K, out.Result.PathA, out.Result.PathB)
package duopath
