package tree

// Path visits the nodes on the way from one node to another: up from the
// first node to the lowest common ancestor of both, then down to the second.
// A path from a node to itself has that single node.
//
// Both nodes must belong to the same tree.
type Path[N, E any] struct {
	nodes []int
	edges []int
	lca   int
	pos   int
}

// NewPath returns the path in t from node a to node b.
func NewPath[N, E any](t *Tree[N, E], a, b int) *Path[N, E] {
	lca := t.LowestCommonAncestor(a, b)
	p := &Path[N, E]{lca: lca, pos: -1}

	p.nodes = append(p.nodes, a)
	p.edges = append(p.edges, -1)
	for n := a; n != lca; {
		e, _ := t.ParentEdge(n)
		n, _ = t.Parent(n)
		p.nodes = append(p.nodes, n)
		p.edges = append(p.edges, e)
	}

	var down, downEdges []int
	for n := b; n != lca; {
		e, _ := t.ParentEdge(n)
		down = append(down, n)
		downEdges = append(downEdges, e)
		n, _ = t.Parent(n)
	}
	for i := len(down) - 1; i >= 0; i-- {
		p.nodes = append(p.nodes, down[i])
		p.edges = append(p.edges, downEdges[i])
	}
	return p
}

func (it *Path[N, E]) Next() bool {
	if it.pos+1 >= len(it.nodes) {
		it.pos = len(it.nodes)
		return false
	}
	it.pos++
	return true
}

// Node returns the current node.
func (it *Path[N, E]) Node() int {
	if it.pos < 0 || it.pos >= len(it.nodes) {
		return -1
	}
	return it.nodes[it.pos]
}

// Edge returns the edge crossed to reach the current node, or -1 at the
// first node.
func (it *Path[N, E]) Edge() int {
	if it.pos < 0 || it.pos >= len(it.nodes) {
		return -1
	}
	return it.edges[it.pos]
}

// IsLCA returns whether the current node is the lowest common ancestor,
// where the path turns from going up to going down.
func (it *Path[N, E]) IsLCA() bool {
	return it.Node() == it.lca && it.Node() >= 0
}

// Len returns the number of nodes on the path.
func (it *Path[N, E]) Len() int {
	return len(it.nodes)
}
