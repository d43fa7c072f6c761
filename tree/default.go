package tree

import (
	"fmt"
	"slices"
)

// DefaultNodeData is the node payload of a tree read from Newick text.
type DefaultNodeData struct {
	// The name of the node. Unnamed nodes have an empty name.
	Name string `cbor:"1,keyasint,omitempty"`

	// Comments and tags written for this node, in input order.
	Comments []string `cbor:"2,keyasint,omitempty"`
	Tags     []string `cbor:"3,keyasint,omitempty"`

	// The branch length written for the root node. Since the root has no
	// edge, this is the only place to keep it. Nil when absent, and always
	// nil for other nodes.
	RootLength *float64 `cbor:"4,keyasint,omitempty"`
}

// Equal compares all fields of d and o.
func (d DefaultNodeData) Equal(o DefaultNodeData) bool {
	return d.Name == o.Name &&
		slices.Equal(d.Comments, o.Comments) &&
		slices.Equal(d.Tags, o.Tags) &&
		equalLength(d.RootLength, o.RootLength)
}

func (d DefaultNodeData) String() string {
	return fmt.Sprintf("Name: '%s'", d.Name)
}

// DefaultEdgeData is the edge payload of a tree read from Newick text.
type DefaultEdgeData struct {
	// The branch length. If it's nil, then no length was given.
	BranchLength *float64 `cbor:"1,keyasint,omitempty"`
}

// Length returns the branch length, or 0 if there is none.
func (d DefaultEdgeData) Length() float64 {
	if d.BranchLength == nil {
		return 0
	}
	return *d.BranchLength
}

// Equal compares the branch lengths of d and o.
func (d DefaultEdgeData) Equal(o DefaultEdgeData) bool {
	return equalLength(d.BranchLength, o.BranchLength)
}

func (d DefaultEdgeData) String() string {
	if d.BranchLength == nil {
		return "Length: none"
	}
	return fmt.Sprintf("Length: %g", *d.BranchLength)
}

func equalLength(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// DefaultTree is a tree with the payloads that Newick text can express.
type DefaultTree = Tree[DefaultNodeData, DefaultEdgeData]

// EqualDefault reports whether two default trees have the same shape and the
// same payloads.
func EqualDefault(a, b *DefaultTree) bool {
	return EqualFunc(a, b, DefaultNodeData.Equal, DefaultEdgeData.Equal)
}
