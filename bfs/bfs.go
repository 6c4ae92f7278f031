// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex, with an
// optional depth limit and cancellation.
package bfs

import (
	"context"

	"github.com/katalvlaran/duopath/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	adj   [][]int
	limit int
	ctx   context.Context
	queue []int
	head  int
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or ctx.Err() on cancellation.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	adj := g.Adjacency()
	n := len(adj)
	if start < 0 || start >= n {
		return nil, ErrStartVertexNotFound
	}

	w := &walker{
		adj:   adj,
		limit: o.MaxDepth,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  fill(make([]int, n), Unvisited),
			Parent: fill(make([]int, n), Unvisited),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, Unvisited)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d and records its parent.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.queue[w.head]
		w.head++
		w.res.Order = append(w.res.Order, v)
		w.enqueueNeighbors(v)
	}

	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(v int) {
	nextDepth := w.res.Depth[v] + 1
	if w.limit > 0 && nextDepth > w.limit {
		return
	}
	for _, nbr := range w.adj[v] {
		if w.res.Depth[nbr] == Unvisited {
			w.enqueue(nbr, nextDepth, v)
		}
	}
}

// Distances writes hop distances from start into dst (len(dst) == len(adj))
// without hooks, parents or visit order: the hot path of all-pairs
// precomputation. Vertices farther than limit (limit >= 0) or unreachable
// receive unreached, which must be negative or greater than limit so it never
// collides with a real distance. queue is scratch space reused across calls;
// the grown buffer is returned for the next call.
//
// Complexity: O(n + m) time, no allocations once queue has capacity n.
func Distances(adj [][]int, start, limit, unreached int, dst, queue []int) []int {
	for i := range dst {
		dst[i] = unreached
	}
	dst[start] = 0
	queue = append(queue[:0], start)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		du := dst[u]
		if limit >= 0 && du >= limit {
			// layers are FIFO-ordered, everything left is at depth >= limit
			break
		}
		for _, v := range adj[u] {
			if dst[v] == unreached {
				dst[v] = du + 1
				queue = append(queue, v)
			}
		}
	}

	return queue
}

func fill(s []int, v int) []int {
	for i := range s {
		s[i] = v
	}

	return s
}

// Components labels the connected components of adj in discovery order:
// label[v] is in [0,count) and vertices share a label iff a path joins them.
//
// Time: O(n + m). Memory: O(n).
func Components(adj [][]int) (label []int, count int) {
	label = fill(make([]int, len(adj)), Unvisited)
	queue := make([]int, 0, len(adj))
	for s := range adj {
		if label[s] != Unvisited {
			continue
		}
		label[s] = count
		queue = append(queue[:0], s)
		for head := 0; head < len(queue); head++ {
			for _, v := range adj[queue[head]] {
				if label[v] == Unvisited {
					label[v] = count
					queue = append(queue, v)
				}
			}
		}
		count++
	}

	return label, count
}
