package tree

// Node is a taxon or an inner branching point.
type Node[N any] struct {
	Data N

	index int
	link  int
}

// Index returns the position of the node in its tree.
func (n *Node[N]) Index() int { return n.index }

// Link returns the index of the node's primary link, or -1 if the node has
// no neighbours (a tree with a single node).
func (n *Node[N]) Link() int { return n.link }

// Edge is a branch between two nodes.
type Edge[E any] struct {
	Data E

	index     int
	primary   int
	secondary int
}

// Index returns the position of the edge in its tree.
func (e *Edge[E]) Index() int { return e.index }

// Primary returns the index of the link at the root side of the edge.
func (e *Edge[E]) Primary() int { return e.primary }

// Secondary returns the index of the link away from the root.
func (e *Edge[E]) Secondary() int { return e.secondary }

// Link is one end of an edge, as seen from one node.
type Link struct {
	index int
	node  int
	edge  int
	outer int
	next  int
}

// Index returns the position of the link in its tree.
func (l *Link) Index() int { return l.index }

// Node returns the index of the node that owns the link.
func (l *Link) Node() int { return l.node }

// Edge returns the index of the edge the link is an end of.
func (l *Link) Edge() int { return l.edge }

// Outer returns the index of the link at the other end of the same edge.
func (l *Link) Outer() int { return l.outer }

// Next returns the index of the next link in the ring around the node.
func (l *Link) Next() int { return l.next }

// Tree is a rooted tree with node payloads of type N and edge payloads of
// type E.
type Tree[N, E any] struct {
	nodes []Node[N]
	edges []Edge[E]
	links []Link
	root  int
}

// NodeCount returns the number of nodes.
func (t *Tree[N, E]) NodeCount() int { return len(t.nodes) }

// EdgeCount returns the number of edges.
func (t *Tree[N, E]) EdgeCount() int { return len(t.edges) }

// LinkCount returns the number of links, which is twice the number of
// edges.
func (t *Tree[N, E]) LinkCount() int { return len(t.links) }

// Node returns the node at index i. The pointer stays valid for the lifetime
// of the tree and may be used to change the node's payload.
func (t *Tree[N, E]) Node(i int) *Node[N] { return &t.nodes[i] }

// Edge returns the edge at index i.
func (t *Tree[N, E]) Edge(i int) *Edge[E] { return &t.edges[i] }

// Link returns the link at index i.
func (t *Tree[N, E]) Link(i int) *Link { return &t.links[i] }

// Root returns the index of the root node.
func (t *Tree[N, E]) Root() int { return t.root }

// RootLink returns the index of the root link, or -1 for a single node.
func (t *Tree[N, E]) RootLink() int { return t.nodes[t.root].link }

// IsRoot returns whether n is the root node.
func (t *Tree[N, E]) IsRoot(n int) bool { return n == t.root }

// Degree returns the number of neighbours of n.
func (t *Tree[N, E]) Degree(n int) int {
	start := t.nodes[n].link
	if start < 0 {
		return 0
	}
	d := 1
	for l := t.links[start].next; l != start; l = t.links[l].next {
		d++
	}
	return d
}

// IsLeaf returns whether n has no children. The root of a tree with more
// than one node is never a leaf, even when it has only a single child.
func (t *Tree[N, E]) IsLeaf(n int) bool {
	link := t.nodes[n].link
	if link < 0 {
		return true
	}
	return n != t.root && t.links[link].next == link
}

// IsInner returns whether n has children.
func (t *Tree[N, E]) IsInner(n int) bool { return !t.IsLeaf(n) }

// LeafCount returns the number of leaves.
func (t *Tree[N, E]) LeafCount() int {
	count := 0
	for i := range t.nodes {
		if t.IsLeaf(i) {
			count++
		}
	}
	return count
}

// Parent returns the parent of n. The boolean is false for the root.
func (t *Tree[N, E]) Parent(n int) (int, bool) {
	if n == t.root {
		return -1, false
	}
	return t.links[t.links[t.nodes[n].link].outer].node, true
}

// ParentEdge returns the edge between n and its parent. The boolean is
// false for the root.
func (t *Tree[N, E]) ParentEdge(n int) (int, bool) {
	if n == t.root {
		return -1, false
	}
	return t.links[t.nodes[n].link].edge, true
}

// Children returns the children of n in ring order.
func (t *Tree[N, E]) Children(n int) []int {
	var children []int
	t.eachChildLink(n, func(l int) {
		children = append(children, t.links[t.links[l].outer].node)
	})
	return children
}

// eachChildLink calls fn for every link of n that leads away from the root,
// in ring order.
func (t *Tree[N, E]) eachChildLink(n int, fn func(l int)) {
	start := t.nodes[n].link
	if start < 0 {
		return
	}
	if n == t.root {
		fn(start)
	}
	for l := t.links[start].next; l != start; l = t.links[l].next {
		fn(l)
	}
}

// PrimaryNode returns the node at the root side of edge e.
func (t *Tree[N, E]) PrimaryNode(e int) int {
	return t.links[t.edges[e].primary].node
}

// SecondaryNode returns the node away from the root on edge e.
func (t *Tree[N, E]) SecondaryNode(e int) int {
	return t.links[t.edges[e].secondary].node
}

// Depth returns the number of edges between n and the root.
func (t *Tree[N, E]) Depth(n int) int {
	d := 0
	for n != t.root {
		n, _ = t.Parent(n)
		d++
	}
	return d
}

// Height returns the largest depth of any node.
func (t *Tree[N, E]) Height() int {
	height := 0
	it := NewLevelorder(t, t.root)
	for it.Next() {
		height = it.Depth()
	}
	return height
}

// LowestCommonAncestor returns the deepest node that has both a and b in
// its subtree.
func (t *Tree[N, E]) LowestCommonAncestor(a, b int) int {
	da, db := t.Depth(a), t.Depth(b)
	for ; da > db; da-- {
		a, _ = t.Parent(a)
	}
	for ; db > da; db-- {
		b, _ = t.Parent(b)
	}
	for a != b {
		a, _ = t.Parent(a)
		b, _ = t.Parent(b)
	}
	return a
}
