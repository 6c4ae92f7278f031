package solver

import "fmt"

const (
	unseen = -1
	root   = -1
)

// tree is a BFS search tree over dense state indices: depth (unseen = -1)
// and parent (root = -1) addressed by state.
type tree struct {
	depth  []int32
	parent []int
}

func newTree(size int) *tree {
	t := &tree{depth: make([]int32, size), parent: make([]int, size)}
	for i := range t.depth {
		t.depth[i] = unseen
	}

	return t
}

func (t *tree) seen(s int) bool { return t.depth[s] != unseen }

// at returns the depth of s, or unseen.
func (t *tree) at(s int) int { return int(t.depth[s]) }

// visit assigns s its depth and parent. First visit wins; a second
// assignment means successor generation or bookkeeping is broken.
func (t *tree) visit(s, d, parent int) {
	if t.depth[s] != unseen {
		panic(fmt.Sprintf("solver: state %d assigned depth %d after %d", s, d, t.depth[s]))
	}
	t.depth[s] = int32(d)
	t.parent[s] = parent
}

// chain returns s, parent(s), ... up to and including the root.
func (t *tree) chain(s int) []int {
	out := make([]int, 0, t.depth[s]+1)
	for ; s != root; s = t.parent[s] {
		out = append(out, s)
	}

	return out
}
