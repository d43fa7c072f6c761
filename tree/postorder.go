package tree

// Postorder visits each node after all of its children.
type Postorder[N, E any] struct {
	t       *Tree[N, E]
	start   int
	started bool
	stack   []frame
	cur     visit
}

// NewPostorder returns a postorder traversal of t that ends at node start.
func NewPostorder[N, E any](t *Tree[N, E], start int) *Postorder[N, E] {
	return &Postorder[N, E]{t: t, start: start, cur: noVisit}
}

func (it *Postorder[N, E]) Next() bool {
	if !it.started {
		it.started = true
		v := visit{node: it.start, link: -1, edge: -1}
		it.stack = append(it.stack, frame{visit: v, links: it.t.away(nil, it.start, -1)})
	}
	for len(it.stack) > 0 {
		f := &it.stack[len(it.stack)-1]
		if len(f.links) > 0 {
			l := f.links[0]
			f.links = f.links[1:]
			v := it.t.cross(f.visit, l)
			it.stack = append(it.stack, frame{visit: v, links: it.t.away(nil, v.node, v.link)})
			continue
		}
		it.cur = f.visit
		it.stack = it.stack[:len(it.stack)-1]
		return true
	}
	it.cur = noVisit
	return false
}

// Node returns the current node.
func (it *Postorder[N, E]) Node() int { return it.cur.node }

// Link returns the link of the current node that leads back toward the
// start node, or -1 at the start node.
func (it *Postorder[N, E]) Link() int { return it.cur.link }

// Edge returns the edge between the current node and its parent in the
// traversal, or -1 at the start node.
func (it *Postorder[N, E]) Edge() int { return it.cur.edge }

// Depth returns the number of edges between the current node and the start.
func (it *Postorder[N, E]) Depth() int { return it.cur.depth }
