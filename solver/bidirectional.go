// SPDX-License-Identifier: MIT
// Package: duopath/solver
//
// bidirectional.go - meet-in-the-middle BFS.
//
// Both trees grow one complete layer at a time; the side with the smaller
// frontier expands next (forward on ties). After the forward tree completes
// layer ds and the backward tree layer dt, every state within ds of start
// and within dt of goal is known, so any shortest path of length L <= ds+dt
// already shows up as a recorded meeting of total <= L. Hence:
//
//	best <= ds+dt+1  → best is optimal, stop
//	ds+dt >= T       → nothing better than best can still fit in T, stop
//	a frontier empty → that tree is complete, best (if any) is optimal

package solver

// side is one direction of the bidirectional search.
type side struct {
	t     *tree
	layer []int
	next  []int
	depth int // depth of the current, fully discovered frontier layer
}

func newSide(size, rootState int) *side {
	s := &side{t: newTree(size), layer: make([]int, 0, 64)}
	s.t.visit(rootState, 0, root)
	s.layer = append(s.layer, rootState)

	return s
}

// meeting is the best candidate seen so far.
type meeting struct {
	state int
	total int
}

// bidirectional returns the start-to-goal state sequence, or nil when no
// meeting with total <= T exists.
func (q *query) bidirectional() ([]int, error) {
	size := q.sp.Size()
	fwd := newSide(size, q.start)
	bwd := newSide(size, q.goal)
	q.stats.Generated += 2

	best := meeting{state: unseen, total: q.p.T + 1}
	for len(fwd.layer) > 0 && len(bwd.layer) > 0 {
		if best.total <= fwd.depth+bwd.depth+1 {
			break
		}
		if fwd.depth+bwd.depth >= q.p.T {
			break
		}

		cur, other := fwd, bwd
		if len(bwd.layer) < len(fwd.layer) {
			cur, other = bwd, fwd
		}
		if err := q.expandLayer(cur, other, &best); err != nil {
			return nil, err
		}
		q.stats.Layers++
	}

	if best.state == unseen {
		return nil, nil
	}

	return joinAtMeeting(fwd.t, bwd.t, best.state), nil
}

// expandLayer expands every state of cur.layer, records meetings with other
// into best and advances cur by one layer.
func (q *query) expandLayer(cur, other *side, best *meeting) error {
	nd := cur.depth + 1
	cur.next = cur.next[:0]

	for _, u := range cur.layer {
		if err := q.poll(); err != nil {
			return err
		}
		q.stats.Expanded++
		q.buf = q.sp.Successors(u, q.buf[:0])
		for _, v := range q.buf {
			if cur.t.seen(v) {
				continue
			}
			cur.t.visit(v, nd, u)
			q.stats.Generated++
			cur.next = append(cur.next, v)

			if !other.t.seen(v) {
				continue
			}
			q.stats.Meetings++
			total := nd + other.t.at(v)
			if total > q.p.T || total >= best.total {
				continue
			}
			best.state, best.total = v, total
		}
	}

	cur.layer, cur.next = cur.next, cur.layer
	cur.depth = nd

	return nil
}
