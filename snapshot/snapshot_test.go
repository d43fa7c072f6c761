package snapshot

import (
	"bytes"
	"testing"

	"github.com/TuftsBCB/phylo/newick"
	"github.com/TuftsBCB/phylo/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, s string) *tree.DefaultTree {
	t.Helper()
	tr, err := newick.Parse(s)
	require.NoError(t, err)
	return tr
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"A;",
		"(A,B,(C,D)E)F;",
		"[c](A:0.1{t},'b c':2[x][y],(,)E:1e-9)F:3;",
	}
	for _, input := range inputs {
		for _, compress := range []Compression{Uncompressed, Zstd} {
			t.Run(input+" "+compress.String(), func(t *testing.T) {
				want := parse(t, input)
				data, err := Encode(want, compress)
				require.NoError(t, err)
				assert.Equal(t, byte(compress), data[0])

				got, err := Decode[tree.DefaultNodeData, tree.DefaultEdgeData](data)
				require.NoError(t, err)
				assert.True(t, tree.EqualDefault(want, got))
				assert.Equal(t, newick.Format(want, newick.DefaultWriterOptions()),
					newick.Format(got, newick.DefaultWriterOptions()))
			})
		}
	}
}

func TestCustomPayloads(t *testing.T) {
	type weight struct {
		W float64 `cbor:"1,keyasint"`
	}
	b := tree.NewBuilder[string, weight]()
	b.AddRoot("r")
	b.AddChild(0, "x", weight{1.5})
	b.AddChild(0, "y", weight{2.5})
	want := b.Build()

	buf := new(bytes.Buffer)
	require.NoError(t, Write(buf, want, Zstd))
	got, err := Read[string, weight](buf)
	require.NoError(t, err)
	assert.True(t, tree.EqualFunc(want, got,
		func(a, b string) bool { return a == b },
		func(a, b weight) bool { return a == b }))
}

func TestDecodeErrors(t *testing.T) {
	good, err := Encode(parse(t, "(A,B)C;"), Uncompressed)
	require.NoError(t, err)

	_, err = Decode[tree.DefaultNodeData, tree.DefaultEdgeData](nil)
	assert.Error(t, err)

	_, err = Decode[tree.DefaultNodeData, tree.DefaultEdgeData]([]byte{7, 0xa0})
	assert.ErrorContains(t, err, "illegal compression")

	_, err = Decode[tree.DefaultNodeData, tree.DefaultEdgeData](good[:len(good)-3])
	assert.ErrorContains(t, err, "decoding tree")

	_, err = Decode[tree.DefaultNodeData, tree.DefaultEdgeData]([]byte{byte(Zstd), 1, 2, 3})
	assert.ErrorContains(t, err, "decompressing")

	// A document with a link ring broken apart still decodes, but must not
	// pass validation.
	tr := parse(t, "(A,B)C;")
	root, nodes, edges, links := tr.Records()
	links[0].Next, links[2].Next = links[2].Next, links[0].Next
	broken := &document[tree.DefaultNodeData, tree.DefaultEdgeData]{Root: root}
	for _, n := range nodes {
		broken.Nodes = append(broken.Nodes, node[tree.DefaultNodeData]{n.Data, n.Link})
	}
	for _, e := range edges {
		broken.Edges = append(broken.Edges, edge[tree.DefaultEdgeData]{e.Data, e.Primary, e.Secondary})
	}
	for _, l := range links {
		broken.Links = append(broken.Links, link{Node: l.Node, Edge: l.Edge, Outer: l.Outer, Next: l.Next})
	}
	body, err := encMode.Marshal(broken)
	require.NoError(t, err)
	_, err = Decode[tree.DefaultNodeData, tree.DefaultEdgeData](append([]byte{0}, body...))
	var inv *tree.InvariantError
	assert.ErrorAs(t, err, &inv)
}

func TestParseCompression(t *testing.T) {
	for _, c := range []Compression{Uncompressed, Zstd} {
		got, err := ParseCompression(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	got, err := ParseCompression("")
	require.NoError(t, err)
	assert.Equal(t, Uncompressed, got)

	_, err = ParseCompression("lz4")
	assert.Error(t, err)
}
