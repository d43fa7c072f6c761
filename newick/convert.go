package newick

import (
	"slices"

	"github.com/TuftsBCB/phylo/tree"
)

// Converter moves data between broker elements and the node and edge data
// of a tree. The root element has no edge, so EdgeFromElement is never
// called for it and EdgeToElement is never called for the start node.
type Converter[N, E any] struct {
	NodeFromElement func(el *Element) N
	EdgeFromElement func(el *Element) E
	NodeToElement   func(data *N, el *Element)
	EdgeToElement   func(data *E, el *Element)
}

// DefaultConverter maps elements to tree.DefaultNodeData and
// tree.DefaultEdgeData. A branch length written for the root is kept in the
// RootLength of its node data.
func DefaultConverter() Converter[tree.DefaultNodeData, tree.DefaultEdgeData] {
	return Converter[tree.DefaultNodeData, tree.DefaultEdgeData]{
		NodeFromElement: func(el *Element) tree.DefaultNodeData {
			d := tree.DefaultNodeData{
				Name:     el.Name,
				Comments: slices.Clone(el.Comments),
				Tags:     slices.Clone(el.Tags),
			}
			if el.Depth == 0 {
				d.RootLength = copyLength(el.BranchLength)
			}
			return d
		},
		EdgeFromElement: func(el *Element) tree.DefaultEdgeData {
			return tree.DefaultEdgeData{BranchLength: copyLength(el.BranchLength)}
		},
		NodeToElement: func(d *tree.DefaultNodeData, el *Element) {
			el.Name = d.Name
			el.Comments = slices.Clone(d.Comments)
			el.Tags = slices.Clone(d.Tags)
			if d.RootLength != nil {
				el.BranchLength = copyLength(d.RootLength)
			}
		},
		EdgeToElement: func(d *tree.DefaultEdgeData, el *Element) {
			el.BranchLength = copyLength(d.BranchLength)
		},
	}
}

func copyLength(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// ToTree builds a tree from a broker. Each element becomes a child of the
// closest element above it with a smaller depth. An invalid broker (see
// Broker.Validate) is an error.
func ToTree[N, E any](b *Broker, conv Converter[N, E]) (*tree.Tree[N, E], error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	builder := tree.NewBuilder[N, E]()
	// open[d] is the most recent node at depth d
	open := make([]int, 0, 16)
	for i, el := range b.All() {
		if i == 0 {
			open = append(open, builder.AddRoot(conv.NodeFromElement(el)))
			continue
		}
		open = open[:el.Depth]
		n := builder.AddChild(open[el.Depth-1],
			conv.NodeFromElement(el), conv.EdgeFromElement(el))
		open = append(open, n)
	}
	return builder.Build(), nil
}

// FromTree fills a broker with the nodes of t, in preorder from start. If
// start is not the root of t, the tree is written as if it were rooted at
// start.
func FromTree[N, E any](t *tree.Tree[N, E], start int, conv Converter[N, E]) *Broker {
	b := &Broker{elements: make([]Element, 0, t.NodeCount())}
	it := tree.NewPreorder(t, start)
	for it.Next() {
		el := Element{Depth: it.Depth()}
		conv.NodeToElement(&t.Node(it.Node()).Data, &el)
		if e := it.Edge(); e >= 0 {
			conv.EdgeToElement(&t.Edge(e).Data, &el)
		}
		b.PushBottom(el)
	}
	return b
}
