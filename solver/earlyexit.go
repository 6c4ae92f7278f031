package solver

// earlyExit is the fast meet-in-the-middle variant: one state at a time is
// dequeued from whichever side has the shorter queue (forward on ties), and
// the search ends at the first state discovered by both trees.
//
// Queues mix two depths, so the first meeting can sit in the deepest,
// partly discovered layer of the other tree while a cheaper meeting is one
// dequeue away. The answer may then exceed the optimum; a first meeting
// longer than T is reported as infeasible.
func (q *query) earlyExit() ([]int, error) {
	size := q.sp.Size()
	fwd, bwd := newTree(size), newTree(size)
	fwd.visit(q.start, 0, root)
	bwd.visit(q.goal, 0, root)
	q.stats.Generated += 2

	qs, qt := []int{q.start}, []int{q.goal}
	hs, ht := 0, 0
	for hs < len(qs) || ht < len(qt) {
		if err := q.poll(); err != nil {
			return nil, err
		}

		forward := ht == len(qt) || (hs < len(qs) && len(qs)-hs <= len(qt)-ht)
		cur, other, queue, head := fwd, bwd, &qs, &hs
		if !forward {
			cur, other, queue, head = bwd, fwd, &qt, &ht
		}
		u := (*queue)[*head]
		*head++
		du := cur.at(u)
		if du >= q.p.T {
			continue
		}

		q.stats.Expanded++
		q.buf = q.sp.Successors(u, q.buf[:0])
		for _, v := range q.buf {
			if cur.seen(v) {
				continue
			}
			cur.visit(v, du+1, u)
			q.stats.Generated++
			*queue = append(*queue, v)
			if !other.seen(v) {
				continue
			}

			q.stats.Meetings++
			if du+1+other.at(v) > q.p.T {
				return nil, nil
			}
			return joinAtMeeting(fwd, bwd, v), nil
		}
	}

	return nil, nil
}
