package newick

import (
	"io"
	"strings"
	"testing"

	"github.com/TuftsBCB/phylo/lexer"
	"github.com/TuftsBCB/phylo/tree"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(s string) io.Reader {
	return strings.NewReader(s)
}

func nodeNames(t *tree.DefaultTree, it tree.Iterator) []string {
	var out []string
	for n := range tree.Nodes(it) {
		out = append(out, t.Node(n).Data.Name)
	}
	return out
}

func childNames(t *tree.DefaultTree, n int) []string {
	var out []string
	for _, c := range t.Children(n) {
		out = append(out, t.Node(c).Data.Name)
	}
	return out
}

func TestParseSample(t *testing.T) {
	tr, err := Parse("(A,B,(C,D)E)F;")
	require.NoError(t, err)

	root := tr.Root()
	assert.Equal(t, "F", tr.Node(root).Data.Name)
	assert.Equal(t, []string{"A", "B", "E"}, childNames(tr, root))
	assert.Equal(t, []string{"C", "D"}, childNames(tr, 3))
	assert.Equal(t, []string{"F", "A", "B", "E", "C", "D"},
		nodeNames(tr, tree.NewPreorder(tr, root)))
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"},
		nodeNames(tr, tree.NewPostorder(tr, root)))

	assert.Equal(t, "(A,B,(C,D)E)F;\n", Format(tr, DefaultWriterOptions()))
}

func TestParseUnnamed(t *testing.T) {
	input := "(,,(,));"
	assert.True(t, lexer.ValidateBrackets(lexer.Tokenize(input, lexOptions()...)))

	tr, err := Parse(input)
	require.NoError(t, err)
	assert.Equal(t, 6, tr.NodeCount())
	for i := 0; i < tr.NodeCount(); i++ {
		assert.Empty(t, tr.Node(i).Data.Name)
	}
	assert.Equal(t, 4, tr.LeafCount())
}

func TestParseLabels(t *testing.T) {
	tr, err := Parse("[root](A[x]{1}:0.5,'B c':-2e-3,1:.25)C:2.5;")
	require.NoError(t, err)

	root := tr.Node(tr.Root()).Data
	assert.Equal(t, "C", root.Name)
	assert.Equal(t, []string{"root"}, root.Comments)
	require.NotNil(t, root.RootLength)
	assert.Equal(t, 2.5, *root.RootLength)

	a := tr.Node(1).Data
	assert.Equal(t, "A", a.Name)
	assert.Equal(t, []string{"x"}, a.Comments)
	assert.Equal(t, []string{"1"}, a.Tags)
	assert.Nil(t, a.RootLength)

	e, ok := tr.ParentEdge(1)
	require.True(t, ok)
	assert.Equal(t, 0.5, tr.Edge(e).Data.Length())

	assert.Equal(t, "B c", tr.Node(2).Data.Name)
	e, _ = tr.ParentEdge(2)
	assert.Equal(t, -0.002, tr.Edge(e).Data.Length())

	assert.Equal(t, "1", tr.Node(3).Data.Name)
	e, _ = tr.ParentEdge(3)
	assert.Equal(t, 0.25, tr.Edge(e).Data.Length())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		kind   ErrorKind
		line   int
		column int
	}{
		{"missing paren", "(A,(B,C;", StructuralError, 1, 8},
		{"unmatched paren", "A);", StructuralError, 1, 2},
		{"two roots", "A,B;", StructuralError, 1, 2},
		{"missing terminal", "(A,B)C", StructuralError, 1, 7},
		{"open at end", "(A,\n(B", StructuralError, 2, 3},
		{"bad length", "(A:x)B;", StructuralError, 1, 4},
		{"label after label", "(A B)C;", StructuralError, 1, 4},
		{"invalid character", "(A,B)#;", LexError, 1, 6},
		{"unterminated quote", "(A,'B);", LexError, 1, 4},
		{"trailing tree", "A;B;", StructuralError, 1, 3},
		{"empty", "  ", StructuralError, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, tr)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.kind, perr.Kind, perr.Error())
			assert.Equal(t, tt.line, perr.Line, perr.Error())
			assert.Equal(t, tt.column, perr.Column, perr.Error())

			if tt.kind == LexError {
				assert.ErrorIs(t, err, ErrLex)
				assert.NotErrorIs(t, err, ErrStructural)
			} else {
				assert.ErrorIs(t, err, ErrStructural)
				assert.NotErrorIs(t, err, ErrLex)
			}
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := Parse("(A,(B,C;")
	require.Error(t, err)
	assert.Equal(t, "Error on line 1, column 8: Missing ')': 2 unclosed '('.", err.Error())
}

func TestReader(t *testing.T) {
	r := NewReader(sample("(A,B)C;\n[between]\n(D,E)F;\n[end]\n"))

	first, err := r.ReadTree()
	require.NoError(t, err)
	assert.Equal(t, "C", first.Node(first.Root()).Data.Name)

	second, err := r.ReadTree()
	require.NoError(t, err)
	assert.Equal(t, "F", second.Node(second.Root()).Data.Name)
	assert.Equal(t, []string{"between"}, second.Node(second.Root()).Data.Comments)

	_, err = r.ReadTree()
	assert.Equal(t, io.EOF, err)
}

func TestReaderReadAll(t *testing.T) {
	trees, err := NewReader(sample("(A,B)C;(D,E)F;\n;")).ReadAll()
	require.NoError(t, err)
	require.Len(t, trees, 3)
	assert.Equal(t, 1, trees[2].NodeCount())

	trees, err = NewReader(sample("")).ReadAll()
	require.NoError(t, err)
	assert.Empty(t, trees)

	trees, err = NewReader(sample("(A,B)C;\n(D,")).ReadAll()
	assert.ErrorIs(t, err, ErrStructural)
	assert.Nil(t, trees)
}

func TestReaderPropagatesReadErrors(t *testing.T) {
	r := NewReader(io.MultiReader(strings.NewReader("(A"), failingReader{}))
	_, err := r.ReadBroker()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestParseWith(t *testing.T) {
	conv := Converter[string, float64]{
		NodeFromElement: func(el *Element) string { return strings.ToLower(el.Name) },
		EdgeFromElement: func(el *Element) float64 {
			if el.BranchLength == nil {
				return 1
			}
			return *el.BranchLength
		},
		NodeToElement: func(d *string, el *Element) { el.Name = strings.ToUpper(*d) },
		EdgeToElement: func(d *float64, el *Element) { el.BranchLength = d },
	}

	tr, err := ParseWith("(A:2,B)C;", conv)
	require.NoError(t, err)
	assert.Equal(t, "c", tr.Node(0).Data)
	assert.Equal(t, "a", tr.Node(1).Data)
	assert.Equal(t, 2.0, tr.Edge(0).Data)
	assert.Equal(t, 1.0, tr.Edge(1).Data)

	assert.Equal(t, "(A:2,B:1)C;\n", FormatWith(tr, conv, DefaultWriterOptions()))
}
