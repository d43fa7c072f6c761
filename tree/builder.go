package tree

// Builder creates a tree top-down: first the root, then children of nodes
// that already exist. Children are appended to the end of their parent's
// ring, so the ring order of a node is the order its children were added.
type Builder[N, E any] struct {
	t *Tree[N, E]

	// last link in the ring of each node
	last []int
}

// NewBuilder returns an empty builder.
func NewBuilder[N, E any]() *Builder[N, E] {
	return &Builder[N, E]{t: &Tree[N, E]{root: -1}}
}

// AddRoot adds the root node and returns its index, which is always 0. It
// panics if called twice.
func (b *Builder[N, E]) AddRoot(data N) int {
	if b.t.root >= 0 {
		panic("tree: root added twice")
	}
	b.t.root = len(b.t.nodes)
	b.t.nodes = append(b.t.nodes, Node[N]{Data: data, index: b.t.root, link: -1})
	b.last = append(b.last, -1)
	return b.t.root
}

// AddChild adds a new node below parent, connected by a new edge, and
// returns the index of the new node.
func (b *Builder[N, E]) AddChild(parent int, node N, edge E) int {
	t := b.t
	child, e := len(t.nodes), len(t.edges)
	pl, cl := len(t.links), len(t.links)+1

	t.links = append(t.links,
		Link{index: pl, node: parent, edge: e, outer: cl, next: pl},
		Link{index: cl, node: child, edge: e, outer: pl, next: cl},
	)
	t.edges = append(t.edges, Edge[E]{Data: edge, index: e, primary: pl, secondary: cl})
	t.nodes = append(t.nodes, Node[N]{Data: node, index: child, link: cl})
	b.last = append(b.last, cl)

	if t.nodes[parent].link < 0 {
		t.nodes[parent].link = pl
	} else {
		t.links[b.last[parent]].next = pl
		t.links[pl].next = t.nodes[parent].link
	}
	b.last[parent] = pl
	return child
}

// Len returns the number of nodes added so far.
func (b *Builder[N, E]) Len() int {
	return len(b.t.nodes)
}

// Build checks the invariants of the finished tree and returns it. The
// builder must not be used afterwards.
//
// A violated invariant means the builder itself is broken, so Build panics
// with an *InvariantError rather than returning it.
func (b *Builder[N, E]) Build() *Tree[N, E] {
	t := b.t
	b.t, b.last = nil, nil
	if err := t.Validate(); err != nil {
		panic(err)
	}
	return t
}

// NodeRecord is the raw arena entry of a node.
type NodeRecord[N any] struct {
	Data N
	Link int
}

// EdgeRecord is the raw arena entry of an edge.
type EdgeRecord[E any] struct {
	Data      E
	Primary   int
	Secondary int
}

// LinkRecord is the raw arena entry of a link.
type LinkRecord struct {
	Node  int
	Edge  int
	Outer int
	Next  int
}

// Records returns copies of the arenas of t, for serialization.
func (t *Tree[N, E]) Records() (root int, nodes []NodeRecord[N], edges []EdgeRecord[E], links []LinkRecord) {
	nodes = make([]NodeRecord[N], len(t.nodes))
	for i, n := range t.nodes {
		nodes[i] = NodeRecord[N]{Data: n.Data, Link: n.link}
	}
	edges = make([]EdgeRecord[E], len(t.edges))
	for i, e := range t.edges {
		edges[i] = EdgeRecord[E]{Data: e.Data, Primary: e.primary, Secondary: e.secondary}
	}
	links = make([]LinkRecord, len(t.links))
	for i, l := range t.links {
		links[i] = LinkRecord{Node: l.node, Edge: l.edge, Outer: l.outer, Next: l.next}
	}
	return t.root, nodes, edges, links
}

// Assemble creates a tree from raw arena records, as returned by Records.
// Unlike Build, it returns an *InvariantError as an error, since the
// records usually come from outside the program.
func Assemble[N, E any](root int, nodes []NodeRecord[N], edges []EdgeRecord[E], links []LinkRecord) (*Tree[N, E], error) {
	t := &Tree[N, E]{
		nodes: make([]Node[N], len(nodes)),
		edges: make([]Edge[E], len(edges)),
		links: make([]Link, len(links)),
		root:  root,
	}
	for i, n := range nodes {
		t.nodes[i] = Node[N]{Data: n.Data, index: i, link: n.Link}
	}
	for i, e := range edges {
		t.edges[i] = Edge[E]{Data: e.Data, index: i, primary: e.Primary, secondary: e.Secondary}
	}
	for i, l := range links {
		t.links[i] = Link{index: i, node: l.Node, edge: l.Edge, outer: l.Outer, next: l.Next}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
