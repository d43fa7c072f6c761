package tree

// Preorder visits each node before its children. Children are visited in
// ring order, which for a tree read from Newick text is the order in which
// they were written.
//
// Starting anywhere but the root makes that node the root of the traversal:
// all of its neighbours, including its parent, count as its children.
type Preorder[N, E any] struct {
	t       *Tree[N, E]
	start   int
	started bool
	stack   []visit
	cur     visit
	buf     []int
}

// NewPreorder returns a preorder traversal of t beginning at node start.
func NewPreorder[N, E any](t *Tree[N, E], start int) *Preorder[N, E] {
	return &Preorder[N, E]{t: t, start: start, cur: noVisit}
}

func (it *Preorder[N, E]) Next() bool {
	if !it.started {
		it.started = true
		it.cur = visit{node: it.start, link: -1, edge: -1}
	} else if len(it.stack) == 0 {
		it.cur = noVisit
		return false
	} else {
		it.cur = it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
	}

	it.buf = it.t.away(it.buf[:0], it.cur.node, it.cur.link)
	for i := len(it.buf) - 1; i >= 0; i-- {
		it.stack = append(it.stack, it.t.cross(it.cur, it.buf[i]))
	}
	return true
}

// Node returns the current node.
func (it *Preorder[N, E]) Node() int { return it.cur.node }

// Link returns the link of the current node that leads back toward the
// start node, or -1 at the start node.
func (it *Preorder[N, E]) Link() int { return it.cur.link }

// Edge returns the edge crossed to reach the current node, or -1 at the
// start node.
func (it *Preorder[N, E]) Edge() int { return it.cur.edge }

// Depth returns the number of edges between the current node and the start.
func (it *Preorder[N, E]) Depth() int { return it.cur.depth }
