package bipartition

import (
	"cmp"
	"context"
	"slices"

	"github.com/TuftsBCB/phylo/logging"
	"github.com/TuftsBCB/phylo/tree"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrLeafSetMismatch is returned when two trees to compare do not have
	// the same leaf labels.
	ErrLeafSetMismatch = errors.New("bipartition: trees have different leaf sets")

	// ErrDuplicateLabel is returned for trees in which two leaves have the
	// same label.
	ErrDuplicateLabel = errors.New("bipartition: duplicate leaf label")
)

// Set holds the bipartitions of all edges of a tree.
type Set struct {
	labels []string
	edges  []*Bitvector
}

// Compute returns the leaves on the side of each edge away from the root.
// Leaves are ranked by their sorted labels, so sets of trees with the same
// leaves can be compared. A root with a single neighbour counts as a leaf,
// so a tree rooted on a leaf has the same leaves as its unrooted form.
func Compute[N, E any](t *tree.Tree[N, E], label func(N) string) (*Set, error) {
	var leaves []int
	for n := 0; n < t.NodeCount(); n++ {
		if isLeaf(t, n) {
			leaves = append(leaves, n)
		}
	}
	labels := make([]string, len(leaves))
	for i, n := range leaves {
		labels[i] = label(t.Node(n).Data)
	}
	slices.Sort(labels)
	for i := 1; i < len(labels); i++ {
		if labels[i] == labels[i-1] {
			return nil, errors.Wrapf(ErrDuplicateLabel, "label '%s'", labels[i])
		}
	}

	s := &Set{labels: labels, edges: make([]*Bitvector, t.EdgeCount())}
	below := make([]*Bitvector, t.NodeCount())
	get := func(n int) *Bitvector {
		if below[n] == nil {
			below[n] = NewBitvector(len(labels))
		}
		return below[n]
	}
	it := tree.NewPostorder(t, t.Root())
	for it.Next() {
		n := it.Node()
		bv := get(n)
		if isLeaf(t, n) {
			rank, _ := slices.BinarySearch(labels, label(t.Node(n).Data))
			bv.Set(rank)
		}
		if e := it.Edge(); e >= 0 {
			s.edges[e] = bv
			get(t.PrimaryNode(e)).Merge(bv)
		}
	}
	logging.Sugar.Debugf("bipartition: %d leaves, %d edges", len(labels), len(s.edges))
	return s, nil
}

func isLeaf[N, E any](t *tree.Tree[N, E], n int) bool {
	return t.IsLeaf(n) || (t.IsRoot(n) && t.Degree(n) == 1)
}

// Leaves returns the leaf labels in rank order.
func (s *Set) Leaves() []string { return s.labels }

// Len returns the number of edges.
func (s *Set) Len() int { return len(s.edges) }

// Edge returns the leaves on the side of edge e away from the root.
func (s *Set) Edge(e int) *Bitvector { return s.edges[e] }

// Split returns the normalized bipartition of edge e.
func (s *Set) Split(e int) *Bitvector { return s.edges[e].Normalize() }

// Names returns the labels of the leaves in bv.
func (s *Set) Names(bv *Bitvector) []string {
	var names []string
	for i, l := range s.labels {
		if bv.Get(i) {
			names = append(names, l)
		}
	}
	return names
}

// Splits returns the distinct normalized bipartitions that have at least
// two leaves on each side, ordered by their string form.
func (s *Set) Splits() []*Bitvector {
	seen := make(map[string]bool)
	var splits []*Bitvector
	for e := range s.edges {
		if s.trivial(s.edges[e]) {
			continue
		}
		split := s.Split(e)
		if !seen[split.Key()] {
			seen[split.Key()] = true
			splits = append(splits, split)
		}
	}
	slices.SortFunc(splits, func(a, b *Bitvector) int {
		return cmp.Compare(a.String(), b.String())
	})
	return splits
}

func (s *Set) trivial(bv *Bitvector) bool {
	n := bv.Count()
	return n <= 1 || n >= len(s.labels)-1
}

// Comparison counts the non-trivial splits found in one or both trees.
type Comparison struct {
	Shared int
	OnlyA  int
	OnlyB  int
}

// RobinsonFoulds returns the number of splits found in only one of the
// trees.
func (c *Comparison) RobinsonFoulds() int { return c.OnlyA + c.OnlyB }

// Compare matches the splits of two trees with the same leaves.
func Compare(a, b *Set) (*Comparison, error) {
	if !slices.Equal(a.labels, b.labels) {
		return nil, errors.Wrapf(ErrLeafSetMismatch, "%d leaves against %d",
			len(a.labels), len(b.labels))
	}
	inA := make(map[string]bool)
	for _, split := range a.Splits() {
		inA[split.Key()] = true
	}
	c := &Comparison{}
	for _, split := range b.Splits() {
		if inA[split.Key()] {
			c.Shared++
		} else {
			c.OnlyB++
		}
	}
	c.OnlyA = len(inA) - c.Shared
	return c, nil
}

// RobinsonFoulds returns the Robinson-Foulds distance between two trees
// with the same leaves.
func RobinsonFoulds(a, b *Set) (int, error) {
	c, err := Compare(a, b)
	if err != nil {
		return 0, err
	}
	return c.RobinsonFoulds(), nil
}

// ComputeAll runs Compute on each tree, at most limit at a time. A limit of
// zero or less means no limit. The trees must not change while this runs.
func ComputeAll[N, E any](
	ctx context.Context,
	trees []*tree.Tree[N, E],
	label func(N) string,
	limit int,
) ([]*Set, error) {
	sets := make([]*Set, len(trees))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, t := range trees {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := Compute(t, label)
			if err != nil {
				return errors.Wrapf(err, "tree %d", i)
			}
			sets[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sets, nil
}
