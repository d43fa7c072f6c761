package tree

// EulerTour walks around the tree, crossing every edge once in each
// direction. Each step is one link, so every link is visited exactly once,
// and a tree with n > 1 nodes takes 2(n-1) steps. Inner nodes show up once
// per neighbour.
//
// The step after link l is the next link in the ring of l's outer link.
type EulerTour[N, E any] struct {
	t       *Tree[N, E]
	start   int
	cur     int
	started bool
}

// NewEulerTour returns a tour of t that begins and ends at node start.
func NewEulerTour[N, E any](t *Tree[N, E], start int) *EulerTour[N, E] {
	return &EulerTour[N, E]{t: t, start: t.nodes[start].link, cur: -1}
}

func (it *EulerTour[N, E]) Next() bool {
	if it.start < 0 {
		return false
	}
	if !it.started {
		it.started = true
		it.cur = it.start
		return true
	}
	if it.cur < 0 {
		return false
	}
	it.cur = it.t.links[it.t.links[it.cur].outer].next
	if it.cur == it.start {
		it.cur = -1
		return false
	}
	return true
}

// Node returns the node of the current link.
func (it *EulerTour[N, E]) Node() int {
	if it.cur < 0 {
		return -1
	}
	return it.t.links[it.cur].node
}

// Link returns the current link.
func (it *EulerTour[N, E]) Link() int { return it.cur }

// Edge returns the edge of the current link, which is the edge the tour is
// about to cross.
func (it *EulerTour[N, E]) Edge() int {
	if it.cur < 0 {
		return -1
	}
	return it.t.links[it.cur].edge
}
