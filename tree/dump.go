package tree

import (
	"bytes"
	"fmt"
	"strings"
)

// Dump returns the tree as indented text, one node per line in preorder,
// with whitespace indenting to indicate depth. label formats a node's
// payload; if it's nil, the payload is printed with %v.
func (t *Tree[N, E]) Dump(label func(N) string) string {
	if label == nil {
		label = func(data N) string { return fmt.Sprintf("%v", data) }
	}
	buf := new(bytes.Buffer)
	it := NewPreorder(t, t.root)
	for it.Next() {
		fmt.Fprintf(buf, "%s%s", strings.Repeat("  ", it.Depth()), label(t.nodes[it.Node()].Data))
		if e := it.Edge(); e >= 0 {
			fmt.Fprintf(buf, " (%v)", t.edges[e].Data)
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}
