package tree

import "fmt"

// InvariantError reports a tree whose arenas are inconsistent. A tree that
// fails validation must be discarded; none of the iterators give meaningful
// results on it.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "tree: invariant violated: " + e.Msg
}

func invariantf(format string, v ...interface{}) error {
	return &InvariantError{Msg: fmt.Sprintf(format, v...)}
}

// Validate checks all structural invariants of t: matching outer links,
// closed rings of the right size, consistent orientation toward the root,
// dense indices, and that the nodes form a single connected tree.
func (t *Tree[N, E]) Validate() error {
	nn, ne, nl := len(t.nodes), len(t.edges), len(t.links)
	if nn == 0 {
		return invariantf("tree has no nodes")
	}
	if t.root < 0 || t.root >= nn {
		return invariantf("root %d out of range", t.root)
	}
	if ne != nn-1 {
		return invariantf("%d nodes but %d edges", nn, ne)
	}
	if nl != 2*ne {
		return invariantf("%d edges but %d links", ne, nl)
	}
	inRange := func(i, n int) bool { return i >= 0 && i < n }

	degree := make([]int, nn)
	for i, l := range t.links {
		if l.index != i {
			return invariantf("link %d has index %d", i, l.index)
		}
		if !inRange(l.node, nn) || !inRange(l.edge, ne) ||
			!inRange(l.outer, nl) || !inRange(l.next, nl) {
			return invariantf("link %d refers outside the arenas", i)
		}
		if t.links[l.next].node != l.node {
			return invariantf("link %d: next link belongs to another node", i)
		}
		if t.links[l.outer].outer != i {
			return invariantf("link %d: outer link does not point back", i)
		}
		degree[l.node]++
	}
	for i, e := range t.edges {
		if e.index != i {
			return invariantf("edge %d has index %d", i, e.index)
		}
		if !inRange(e.primary, nl) || !inRange(e.secondary, nl) {
			return invariantf("edge %d refers outside the link arena", i)
		}
		p, s := &t.links[e.primary], &t.links[e.secondary]
		if p.outer != e.secondary || s.outer != e.primary {
			return invariantf("edge %d: links are not each other's outer link", i)
		}
		if p.edge != i || s.edge != i {
			return invariantf("edge %d: links belong to another edge", i)
		}
	}
	for i, n := range t.nodes {
		if n.index != i {
			return invariantf("node %d has index %d", i, n.index)
		}
		if n.link < 0 {
			if nn != 1 {
				return invariantf("node %d has no link", i)
			}
			continue
		}
		if !inRange(n.link, nl) || t.links[n.link].node != i {
			return invariantf("node %d: primary link belongs to another node", i)
		}
		steps := 1
		for l := t.links[n.link].next; l != n.link; l = t.links[l].next {
			steps++
			if steps > degree[i] {
				return invariantf("node %d: ring does not close after %d links", i, degree[i])
			}
		}
		if steps != degree[i] {
			return invariantf("node %d: ring has %d links, node has %d", i, steps, degree[i])
		}

		// every link points away from the root, except the link of a
		// non-root node toward its parent
		l := n.link
		for k := 0; k < steps; k++ {
			e := &t.edges[t.links[l].edge]
			toParent := l == n.link && i != t.root
			if toParent && e.secondary != l {
				return invariantf("node %d: link to parent is not secondary", i)
			}
			if !toParent && e.primary != l {
				return invariantf("node %d: link %d to child is not primary", i, l)
			}
			l = t.links[l].next
		}
	}

	seen := make([]bool, nn)
	seen[t.root] = true
	count := 1
	stack := []int{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		var err error
		t.eachChildLink(n, func(l int) {
			c := t.links[t.links[l].outer].node
			if seen[c] {
				err = invariantf("node %d reached twice", c)
				return
			}
			seen[c] = true
			count++
			stack = append(stack, c)
		})
		if err != nil {
			return err
		}
	}
	if count != nn {
		return invariantf("%d of %d nodes reachable from the root", count, nn)
	}
	return nil
}
