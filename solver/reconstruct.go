package solver

import "github.com/katalvlaran/duopath/statespace"

// reversed reverses s in place and returns it.
func reversed(s []int) []int {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}

	return s
}

// joinAtMeeting builds the start-to-goal sequence through meet: the forward
// chain reversed, then the backward chain without its copy of meet.
func joinAtMeeting(fwd, bwd *tree, meet int) []int {
	head := reversed(fwd.chain(meet))
	tail := bwd.chain(meet)

	return append(head, tail[1:]...)
}

// dropPending turns a half-step chain (goal first) into the start-to-goal
// sequence of completed composite states.
func dropPending(chain []int) []int {
	out := make([]int, 0, len(chain)/2+1)
	for i := len(chain) - 1; i >= 0; i-- {
		p, bit := statespace.HalfDecode(chain[i])
		if bit == statespace.Pending {
			continue
		}
		out = append(out, p)
	}

	return out
}
