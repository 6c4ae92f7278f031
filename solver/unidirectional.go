package solver

// unidirectional runs BFS from start and returns the start-to-goal state
// sequence, or nil when the goal is not reached within T steps.
func (q *query) unidirectional() ([]int, error) {
	t := newTree(q.sp.Size())
	t.visit(q.start, 0, root)
	q.stats.Generated++

	queue := make([]int, 0, 64)
	queue = append(queue, q.start)
	for head := 0; head < len(queue); head++ {
		if err := q.poll(); err != nil {
			return nil, err
		}
		u := queue[head]
		if u == q.goal {
			return reversed(t.chain(u)), nil
		}
		du := t.at(u)
		if du >= q.p.T {
			continue
		}

		q.stats.Expanded++
		q.buf = q.sp.Successors(u, q.buf[:0])
		for _, v := range q.buf {
			if t.seen(v) {
				continue
			}
			t.visit(v, du+1, u)
			q.stats.Generated++
			queue = append(queue, v)
		}
	}

	return nil, nil
}
