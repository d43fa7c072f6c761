package tree

// Levelorder visits nodes breadth-first: all nodes at depth k come before
// any node at depth k+1. Within a level, the children of a node are in ring
// order, and parents in the order they were visited.
type Levelorder[N, E any] struct {
	t       *Tree[N, E]
	start   int
	started bool
	queue   []visit
	cur     visit
	buf     []int
}

// NewLevelorder returns a breadth-first traversal of t from node start.
func NewLevelorder[N, E any](t *Tree[N, E], start int) *Levelorder[N, E] {
	return &Levelorder[N, E]{t: t, start: start, cur: noVisit}
}

func (it *Levelorder[N, E]) Next() bool {
	if !it.started {
		it.started = true
		it.cur = visit{node: it.start, link: -1, edge: -1}
	} else if len(it.queue) == 0 {
		it.cur = noVisit
		return false
	} else {
		it.cur = it.queue[0]
		it.queue = it.queue[1:]
	}

	it.buf = it.t.away(it.buf[:0], it.cur.node, it.cur.link)
	for _, l := range it.buf {
		it.queue = append(it.queue, it.t.cross(it.cur, l))
	}
	return true
}

// Node returns the current node.
func (it *Levelorder[N, E]) Node() int { return it.cur.node }

// Edge returns the edge crossed to reach the current node, or -1 at the
// start node.
func (it *Levelorder[N, E]) Edge() int { return it.cur.edge }

// Depth returns the number of edges between the current node and the start.
func (it *Levelorder[N, E]) Depth() int { return it.cur.depth }
