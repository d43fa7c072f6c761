package tree

// EqualFunc reports whether a and b have the same shape, with children in
// the same ring order, and payloads that compare equal with nodeEq and
// edgeEq. Node and edge indices do not need to match.
func EqualFunc[N, E any](a, b *Tree[N, E], nodeEq func(N, N) bool, edgeEq func(E, E) bool) bool {
	if a.NodeCount() != b.NodeCount() {
		return false
	}
	ia, ib := NewPreorder(a, a.Root()), NewPreorder(b, b.Root())
	for ia.Next() {
		if !ib.Next() {
			return false
		}
		na, nb := ia.Node(), ib.Node()
		if a.Degree(na) != b.Degree(nb) {
			return false
		}
		if !nodeEq(a.Node(na).Data, b.Node(nb).Data) {
			return false
		}
		if ia.Edge() >= 0 && !edgeEq(a.Edge(ia.Edge()).Data, b.Edge(ib.Edge()).Data) {
			return false
		}
	}
	return !ib.Next()
}

// Identical reports whether a and b have the same shape, ignoring payloads.
func Identical[N, E any](a, b *Tree[N, E]) bool {
	return EqualFunc(a, b,
		func(N, N) bool { return true },
		func(E, E) bool { return true })
}
