// Package snapshot stores trees in a compact binary form, so that a tree can
// be loaded without parsing Newick text again.
//
// A snapshot is one format byte followed by a CBOR document holding the
// node, edge and link arenas of the tree. The format byte says whether the
// document is compressed. Decoding checks all structural invariants of the
// tree.
package snapshot

import (
	"bytes"
	"io"

	"github.com/TuftsBCB/phylo/logging"
	"github.com/TuftsBCB/phylo/tree"
	"github.com/dustin/go-humanize"
	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// Compression is the format of compression for the document.
type Compression uint8

const (
	Uncompressed Compression = 0
	Zstd         Compression = 1
)

func (c Compression) String() string {
	switch c {
	case Uncompressed:
		return "none"
	case Zstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// ParseCompression is the inverse of Compression.String. An empty string
// means Uncompressed.
func ParseCompression(s string) (Compression, error) {
	switch s {
	case "", "none":
		return Uncompressed, nil
	case "zstd":
		return Zstd, nil
	}
	return 0, errors.Errorf("snapshot: unknown compression '%s'", s)
}

type document[N, E any] struct {
	Nodes []node[N] `cbor:"1,keyasint"`
	Edges []edge[E] `cbor:"2,keyasint"`
	Links []link    `cbor:"3,keyasint"`
	Root  int       `cbor:"4,keyasint"`
}

type node[N any] struct {
	Data N   `cbor:"1,keyasint"`
	Link int `cbor:"2,keyasint"`
}

type edge[E any] struct {
	Data      E   `cbor:"1,keyasint"`
	Primary   int `cbor:"2,keyasint"`
	Secondary int `cbor:"3,keyasint"`
}

type link struct {
	_     struct{} `cbor:",toarray"`
	Node  int
	Edge  int
	Outer int
	Next  int
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	if encMode, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		panic(err)
	}
	decOpts := cbor.DecOptions{
		MaxArrayElements: 2147483647,
		MaxMapPairs:      2147483647,
	}
	if decMode, err = decOpts.DecMode(); err != nil {
		panic(err)
	}
}

// Encode returns the snapshot of t. Node and edge data are encoded with
// their CBOR struct tags, or by field name.
func Encode[N, E any](t *tree.Tree[N, E], compress Compression) ([]byte, error) {
	root, nodes, edges, links := t.Records()
	doc := document[N, E]{
		Nodes: make([]node[N], len(nodes)),
		Edges: make([]edge[E], len(edges)),
		Links: make([]link, len(links)),
		Root:  root,
	}
	for i, n := range nodes {
		doc.Nodes[i] = node[N]{n.Data, n.Link}
	}
	for i, e := range edges {
		doc.Edges[i] = edge[E]{e.Data, e.Primary, e.Secondary}
	}
	for i, l := range links {
		doc.Links[i] = link{Node: l.Node, Edge: l.Edge, Outer: l.Outer, Next: l.Next}
	}

	body, err := encMode.Marshal(&doc)
	if err != nil {
		return nil, errors.Wrap(err, "snapshot: encoding tree")
	}

	out := []byte{byte(compress)}
	switch compress {
	case Uncompressed:
		out = append(out, body...)
	case Zstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, errors.Wrap(err, "snapshot: starting zstd")
		}
		out = enc.EncodeAll(body, out)
		enc.Close()
	default:
		return nil, errors.Errorf("snapshot: illegal compression %d", compress)
	}
	logging.Sugar.Debugf("snapshot: encoded %d nodes in %s (%s)",
		len(nodes), humanize.Bytes(uint64(len(out))), compress)
	return out, nil
}

// Decode reads a snapshot made by Encode with the same data types.
func Decode[N, E any](data []byte) (*tree.Tree[N, E], error) {
	if len(data) == 0 {
		return nil, errors.New("snapshot: empty input")
	}
	body := data[1:]
	switch compress := Compression(data[0]); compress {
	case Uncompressed:
	case Zstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, errors.Wrap(err, "snapshot: starting zstd")
		}
		defer dec.Close()
		if body, err = dec.DecodeAll(body, nil); err != nil {
			return nil, errors.Wrap(err, "snapshot: decompressing")
		}
	default:
		return nil, errors.Errorf("snapshot: illegal compression %d", compress)
	}

	var doc document[N, E]
	if err := decMode.Unmarshal(body, &doc); err != nil {
		return nil, errors.Wrap(err, "snapshot: decoding tree")
	}
	nodes := make([]tree.NodeRecord[N], len(doc.Nodes))
	for i, n := range doc.Nodes {
		nodes[i] = tree.NodeRecord[N]{Data: n.Data, Link: n.Link}
	}
	edges := make([]tree.EdgeRecord[E], len(doc.Edges))
	for i, e := range doc.Edges {
		edges[i] = tree.EdgeRecord[E]{Data: e.Data, Primary: e.Primary, Secondary: e.Secondary}
	}
	links := make([]tree.LinkRecord, len(doc.Links))
	for i, l := range doc.Links {
		links[i] = tree.LinkRecord{Node: l.Node, Edge: l.Edge, Outer: l.Outer, Next: l.Next}
	}
	t, err := tree.Assemble(doc.Root, nodes, edges, links)
	if err != nil {
		return nil, errors.Wrap(err, "snapshot: invalid tree")
	}
	return t, nil
}

// Write writes the snapshot of t to w.
func Write[N, E any](w io.Writer, t *tree.Tree[N, E], compress Compression) error {
	data, err := Encode(t, compress)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, bytes.NewReader(data))
	return errors.Wrap(err, "snapshot: writing")
}

// Read reads a whole snapshot from r.
func Read[N, E any](r io.Reader) (*tree.Tree[N, E], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "snapshot: reading")
	}
	return Decode[N, E](data)
}
