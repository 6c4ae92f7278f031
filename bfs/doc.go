// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: vertex → distance (edges) from start, or Unvisited
//   - Parent: vertex → its predecessor in the BFS tree, or Unvisited
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0) and a
//     cancellation context polled once per dequeued vertex.
//
// Distances is the stripped-down variant used by the distance package: no
// parents, caller-owned buffers, and an explicit depth limit with a
// caller-chosen marker for everything beyond it.
//
// Determinism
//
//	core.Graph.Adjacency returns ascending neighbor lists, and BFS enqueues
//	neighbors in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (queue, Depth, Parent)
//
// Components labels connected components; the solver uses it to reject
// agents whose target lies in another component before searching.
//
// Usage
//
//	res, err := bfs.BFS(g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex is out of range.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               from PathTo for unreached vertices.
//   - ctx.Err() on cancellation.
package bfs
