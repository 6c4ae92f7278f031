package solver

import "github.com/katalvlaran/duopath/statespace"

// halfStep runs forward BFS over half-step states. From (x,y,0) agent A moves
// or stays, giving (x',y,1); that intermediate state is never tested for
// safety. From (x,y,1) agent B moves or stays and the result (x,y',0) must be
// safe. A real step is two half-steps, so the search depth is capped at 2T.
//
// A dequeued state at half-depth d is pruned when
//
//	d/2 + max(dist(x,t_a), dist(y,t_b) - bit) > T
//
// or when either target is unreachable. Neither agent can reach its target
// faster than its own graph distance, so the bound never overestimates.
func (q *query) halfStep() ([]int, error) {
	var (
		sp    = q.sp
		rowA  = q.p.Dist.Row(q.p.TA)
		rowB  = q.p.Dist.Row(q.p.TB)
		limit = 2 * q.p.T
		start = statespace.HalfEncode(q.start, 0)
		goal  = statespace.HalfEncode(q.goal, 0)
		t     = newTree(2 * sp.Size())
	)
	t.visit(start, 0, root)
	q.stats.Generated++

	queue := make([]int, 0, 64)
	queue = append(queue, start)
	for head := 0; head < len(queue); head++ {
		if err := q.poll(); err != nil {
			return nil, err
		}
		h := queue[head]
		if h == goal {
			return dropPending(t.chain(h)), nil
		}
		d := t.at(h)
		if d >= limit {
			continue
		}

		p, bit := statespace.HalfDecode(h)
		x, y := sp.Decode(p)
		da, db := int(rowA[x]), int(rowB[y])
		if da < 0 || db < 0 || d/2+max(da, db-bit) > q.p.T {
			q.stats.Pruned++
			continue
		}

		q.stats.Expanded++
		if bit == 0 {
			queue = q.halfVisit(t, queue, h, d, x, y, statespace.Pending)
			for _, x2 := range sp.Neighbors(x) {
				queue = q.halfVisit(t, queue, h, d, x2, y, statespace.Pending)
			}
			continue
		}
		if sp.Valid(x, y) {
			queue = q.halfVisit(t, queue, h, d, x, y, 0)
		}
		for _, y2 := range sp.Neighbors(y) {
			if sp.Valid(x, y2) {
				queue = q.halfVisit(t, queue, h, d, x, y2, 0)
			}
		}
	}

	return nil, nil
}

// halfVisit inserts the half-step state (x,y,bit) as a child of parent if it
// is new and returns the extended queue.
func (q *query) halfVisit(t *tree, queue []int, parent, d, x, y, bit int) []int {
	h := statespace.HalfEncode(q.sp.Encode(x, y), bit)
	if t.seen(h) {
		return queue
	}
	t.visit(h, d+1, parent)
	q.stats.Generated++

	return append(queue, h)
}
