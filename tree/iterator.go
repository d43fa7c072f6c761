package tree

import "iter"

// Iterator is the method set shared by all traversals. Next advances to the
// next node and must be called before the first call to Node; it returns
// false once the traversal is exhausted. Iterators cannot be rewound; make a
// new one to start over.
//
// Changing the structure of a tree while iterating over it gives undefined
// results.
type Iterator interface {
	Next() bool
	Node() int
}

// Nodes adapts it to a range-over-func sequence of node indices.
func Nodes(it Iterator) iter.Seq[int] {
	return func(yield func(int) bool) {
		for it.Next() {
			if !yield(it.Node()) {
				return
			}
		}
	}
}

// visit is a position of a traversal: a node, the link of that node through
// which it was entered (-1 for the start node), the edge crossed to get
// there (-1 for the start node) and the number of edges from the start.
type visit struct {
	node  int
	link  int
	edge  int
	depth int
}

var noVisit = visit{node: -1, link: -1, edge: -1}

// away appends to buf the links of node n that lead away from the link it
// was entered through, in ring order. For the start node of a traversal
// (from < 0), these are all links of the node, beginning with its primary
// link.
func (t *Tree[N, E]) away(buf []int, n, from int) []int {
	start := from
	if start < 0 {
		start = t.nodes[n].link
		if start < 0 {
			return buf
		}
		buf = append(buf, start)
	}
	for l := t.links[start].next; l != start; l = t.links[l].next {
		buf = append(buf, l)
	}
	return buf
}

// cross returns the visit reached by walking out of the current node
// through link l.
func (t *Tree[N, E]) cross(from visit, l int) visit {
	o := t.links[l].outer
	return visit{
		node:  t.links[o].node,
		link:  o,
		edge:  t.links[l].edge,
		depth: from.depth + 1,
	}
}

// frame is a visit together with the links still to be descended into.
type frame struct {
	visit
	links   []int
	emitted bool
}
