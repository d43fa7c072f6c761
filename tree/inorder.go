package tree

// Inorder visits the left subtree, then the node, then the right subtree.
//
// This is only the textbook inorder for binary trees. For nodes with more
// than two children, all children but the last are visited before the node
// and the last one after it. A node with a single child comes before that
// child.
type Inorder[N, E any] struct {
	t       *Tree[N, E]
	start   int
	started bool
	stack   []frame
	cur     visit
}

// NewInorder returns an inorder traversal of t, treating start as the root.
func NewInorder[N, E any](t *Tree[N, E], start int) *Inorder[N, E] {
	return &Inorder[N, E]{t: t, start: start, cur: noVisit}
}

func (it *Inorder[N, E]) Next() bool {
	if !it.started {
		it.started = true
		v := visit{node: it.start, link: -1, edge: -1}
		it.stack = append(it.stack, frame{visit: v, links: it.t.away(nil, it.start, -1)})
	}
	for len(it.stack) > 0 {
		f := &it.stack[len(it.stack)-1]
		if len(f.links) > 1 || (len(f.links) == 1 && f.emitted) {
			l := f.links[0]
			f.links = f.links[1:]
			v := it.t.cross(f.visit, l)
			it.stack = append(it.stack, frame{visit: v, links: it.t.away(nil, v.node, v.link)})
			continue
		}
		if !f.emitted {
			f.emitted = true
			it.cur = f.visit
			return true
		}
		it.stack = it.stack[:len(it.stack)-1]
	}
	it.cur = noVisit
	return false
}

// Node returns the current node.
func (it *Inorder[N, E]) Node() int { return it.cur.node }

// Edge returns the edge between the current node and its parent in the
// traversal, or -1 at the start node.
func (it *Inorder[N, E]) Edge() int { return it.cur.edge }

// Depth returns the number of edges between the current node and the start.
func (it *Inorder[N, E]) Depth() int { return it.cur.depth }
