package newick

import (
	"bytes"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Element is one node as written in Newick text.
type Element struct {
	// The name of the node. If it's empty, then this node does not have
	// a name.
	Name string

	// The branch length of this node corresponding to the distance between
	// it and its parent node. If it's nil, then no distance exists.
	BranchLength *float64

	// The number of edges between the node and the root.
	Depth int

	Comments []string
	Tags     []string

	// where the element starts in the text, if it was read from text
	line, column int
}

// Broker is a list of elements in preorder: a node comes right before its
// descendants, and the first element is the root.
//
// The zero value is an empty broker ready to use.
type Broker struct {
	elements []Element
}

// PushTop inserts el before all other elements.
func (b *Broker) PushTop(el Element) {
	b.elements = slices.Insert(b.elements, 0, el)
}

// PushBottom appends el after all other elements.
func (b *Broker) PushBottom(el Element) {
	b.elements = append(b.elements, el)
}

// PopTop removes and returns the first element. It returns false if the
// broker is empty.
func (b *Broker) PopTop() (Element, bool) {
	if len(b.elements) == 0 {
		return Element{}, false
	}
	el := b.elements[0]
	b.elements = slices.Delete(b.elements, 0, 1)
	return el, true
}

// PopBottom removes and returns the last element. It returns false if the
// broker is empty.
func (b *Broker) PopBottom() (Element, bool) {
	if len(b.elements) == 0 {
		return Element{}, false
	}
	el := b.elements[len(b.elements)-1]
	b.elements = b.elements[:len(b.elements)-1]
	return el, true
}

// Top returns the first element, or nil if the broker is empty.
func (b *Broker) Top() *Element {
	if len(b.elements) == 0 {
		return nil
	}
	return &b.elements[0]
}

// Bottom returns the last element, or nil if the broker is empty.
func (b *Broker) Bottom() *Element {
	if len(b.elements) == 0 {
		return nil
	}
	return &b.elements[len(b.elements)-1]
}

// At returns the element at index i, counting from the top.
func (b *Broker) At(i int) *Element { return &b.elements[i] }

func (b *Broker) Len() int { return len(b.elements) }

func (b *Broker) Empty() bool { return len(b.elements) == 0 }

// Clear removes all elements.
func (b *Broker) Clear() { b.elements = b.elements[:0] }

// All iterates over the elements from top to bottom.
func (b *Broker) All() iter.Seq2[int, *Element] {
	return func(yield func(int, *Element) bool) {
		for i := range b.elements {
			if !yield(i, &b.elements[i]) {
				return
			}
		}
	}
}

// Backward iterates over the elements from bottom to top. Every node comes
// after all of its descendants.
func (b *Broker) Backward() iter.Seq2[int, *Element] {
	return func(yield func(int, *Element) bool) {
		for i := len(b.elements) - 1; i >= 0; i-- {
			if !yield(i, &b.elements[i]) {
				return
			}
		}
	}
}

// Validate checks that the depths describe a single tree: the first element
// has depth 0, no other element does, and the depth never grows by more than
// one from one element to the next. Comments must not contain ']' and tags
// must not contain '}', since neither could be read back.
func (b *Broker) Validate() error {
	if len(b.elements) == 0 {
		return structErrf(0, 0, "Broker is empty.")
	}
	prev := -1
	for i := range b.elements {
		el := &b.elements[i]
		switch {
		case el.Depth < 0:
			return structErrf(el.line, el.column,
				"Element %d has negative depth %d.", i, el.Depth)
		case i > 0 && el.Depth == 0:
			return structErrf(el.line, el.column,
				"Element %d is a second root.", i)
		case el.Depth > prev+1:
			return structErrf(el.line, el.column,
				"Element %d has depth %d after depth %d.", i, el.Depth, prev)
		}
		for _, c := range el.Comments {
			if strings.ContainsRune(c, ']') {
				return structErrf(el.line, el.column,
					"Element %d has a comment containing ']'.", i)
			}
		}
		for _, tag := range el.Tags {
			if strings.ContainsRune(tag, '}') {
				return structErrf(el.line, el.column,
					"Element %d has a tag containing '}'.", i)
			}
		}
		prev = el.Depth
	}
	return nil
}

// Ranks returns the number of children of each element. The broker must be
// valid.
func (b *Broker) Ranks() []int {
	ranks := make([]int, len(b.elements))
	var open []int
	for i := range b.elements {
		d := b.elements[i].Depth
		if d > 0 && d <= len(open) {
			ranks[open[d-1]]++
		}
		if d < len(open) {
			open = open[:d]
		}
		open = append(open, i)
	}
	return ranks
}

// LeafCount returns the number of elements without children.
func (b *Broker) LeafCount() int {
	n := 0
	for _, r := range b.Ranks() {
		if r == 0 {
			n++
		}
	}
	return n
}

// InnerCount returns the number of elements with children.
func (b *Broker) InnerCount() int {
	return len(b.elements) - b.LeafCount()
}

// MaxRank returns the largest number of children of any element.
func (b *Broker) MaxRank() int {
	most := 0
	for _, r := range b.Ranks() {
		if r > most {
			most = r
		}
	}
	return most
}

// IsBifurcating reports whether every inner element has exactly two
// children. The root may have three, as is usual for unrooted trees.
func (b *Broker) IsBifurcating() bool {
	for i, r := range b.Ranks() {
		if r == 0 || r == 2 || (i == 0 && r == 3) {
			continue
		}
		return false
	}
	return true
}

// Dump returns a listing of the elements, one per line, indented by depth.
func (b *Broker) Dump() string {
	buf := new(bytes.Buffer)
	ranks := b.Ranks()
	for i := range b.elements {
		el := &b.elements[i]
		name := el.Name
		if len(name) == 0 {
			name = "N/A"
		}
		fmt.Fprintf(buf, "%s%s", strings.Repeat("  ", el.Depth), name)
		if el.BranchLength != nil {
			fmt.Fprintf(buf, " (%g)", *el.BranchLength)
		}
		fmt.Fprintf(buf, " rank=%d", ranks[i])
		for _, tag := range el.Tags {
			fmt.Fprintf(buf, " {%s}", tag)
		}
		for _, c := range el.Comments {
			fmt.Fprintf(buf, " [%s]", c)
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}
