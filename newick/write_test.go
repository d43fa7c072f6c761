package newick

import (
	"bytes"
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/TuftsBCB/phylo/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	all := DefaultWriterOptions()
	namesOnly := WriterOptions{PrintNames: true}
	fixed := all
	fixed.Precision = 2

	tests := []struct {
		name  string
		input string
		opts  WriterOptions
		want  string
	}{
		{"plain", "(A,B,(C,D)E)F;", all, "(A,B,(C,D)E)F;\n"},
		{"lengths", "(A:0.1,B:2,(C:1e-07,D:4)E:5)F;", all, "(A:0.1,B:2,(C:1e-07,D:4)E:5)F;\n"},
		{"names only", "(A:0.1,B[x]{y})F:3;", namesOnly, "(A,B)F;\n"},
		{"nothing", "(A:0.1,B[x])F;", WriterOptions{}, "(,);\n"},
		{"precision", "(A:0.123456,B:2)F;", fixed, "(A:0.12,B:2.00)F;\n"},
		{"annotations", "[root](A[x]{1}:0.5,B)C;", all, "(A:0.5{1}[x],B)C[root];\n"},
		{"root length", "(A,B)C:2.5;", all, "(A,B)C:2.5;\n"},
		{"quoted", "('a b','O''Brien',\"x,y\",'A')'';", all, "('a b','O''Brien','x,y',A);\n"},
		{"number names", "(1,-2,3.5)4;", all, "(1,-2,3.5)4;\n"},
		{"single node", "A;", all, "A;\n"},
		{"unnamed", "(,,(,));", all, "(,,(,));\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Format(tr, tt.opts))
		})
	}
}

func TestQuoteName(t *testing.T) {
	tests := []struct {
		name, want string
	}{
		{"", ""},
		{"Homo.sapiens", "Homo.sapiens"},
		{"a|b/c-d", "a|b/c-d"},
		{"a b", "'a b'"},
		{"it's", "'it''s'"},
		{`back\slash`, `'back\\slash'`},
		{"1e5", "1e5"},
		{"1a", "'1a'"},
		{"ünï", "'ünï'"},
		{"(x)", "'(x)'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, quoteName(tt.name))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"(A,B,(C,D)E)F;",
		"(,,(,));",
		"((A:1,B:2)X:3,(C:0.25,D:1e-10)Y:4)R:0;",
		"[lead](A[c1][c2]{t1}:1,'B b':2{t})R;",
		"(('it''s',\"back\\\\slash\"),'x;y');",
		"(A,(B,(C,(D,(E,F)))));",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			want, err := Parse(input)
			require.NoError(t, err)

			text := Format(want, DefaultWriterOptions())
			got, err := Parse(text)
			require.NoError(t, err, text)
			assert.True(t, tree.EqualDefault(want, got), "%s\n%s", text, got.Dump(nil))
		})
	}
}

func TestRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 30; round++ {
		b := tree.NewBuilder[tree.DefaultNodeData, tree.DefaultEdgeData]()
		b.AddRoot(tree.DefaultNodeData{Name: "root"})
		n := 1 + rng.Intn(50)
		for i := 1; i < n; i++ {
			length := rng.Float64() * 10
			b.AddChild(rng.Intn(i),
				tree.DefaultNodeData{Name: "n" + strconv.Itoa(i)},
				tree.DefaultEdgeData{BranchLength: &length})
		}
		want := b.Build()

		got, err := Parse(Format(want, DefaultWriterOptions()))
		require.NoError(t, err)
		require.True(t, tree.EqualDefault(want, got))
	}
}

func TestFormatFromOtherNode(t *testing.T) {
	tr, err := Parse("(A:1,B:2,(C:3,D:4)E:5)F;")
	require.NoError(t, err)

	b := FromTree(tr, 3, DefaultConverter())
	text, err := FormatBroker(b, DefaultWriterOptions())
	require.NoError(t, err)
	assert.Equal(t, "((A:1,B:2)F:5,C:3,D:4)E;\n", text)
}

func TestFormatBrokerRejectsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		elements []Element
	}{
		{"depth jump", []Element{{Name: "A"}, {Name: "B", Depth: 2}}},
		{"comment", []Element{{Name: "A"}, {Name: "B", Depth: 1, Comments: []string{"x]y"}}}},
		{"tag", []Element{{Name: "A", Tags: []string{"a}b"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Broker{}
			for _, el := range tt.elements {
				b.PushBottom(el)
			}
			_, err := FormatBroker(b, DefaultWriterOptions())
			assert.ErrorIs(t, err, ErrStructural)
		})
	}
}

func TestFormatDeepCaterpillar(t *testing.T) {
	format := func(depth int) time.Duration {
		input := strings.Repeat("(A,", depth) + "B" + strings.Repeat(")", depth) + ";"
		tr, err := Parse(input)
		require.NoError(t, err)
		require.Equal(t, 2*depth+1, tr.NodeCount())

		start := time.Now()
		text := Format(tr, DefaultWriterOptions())
		elapsed := time.Since(start)
		require.Equal(t, input+"\n", text)
		return elapsed
	}

	format(1000)
	small := format(20000)
	large := format(80000)
	// Four times the depth takes about four times as long, not sixteen.
	assert.Less(t, large.Seconds(), 10*small.Seconds()+0.05)
}

func TestWriter(t *testing.T) {
	trees, err := NewReader(strings.NewReader("(A:1,B)C;\n(D,E)F;\n")).ReadAll()
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	w := NewWriter(buf)
	require.NoError(t, w.Write(trees[0]))
	assert.Empty(t, buf.String())
	require.NoError(t, w.Flush())
	assert.Equal(t, "(A:1,B)C;\n", buf.String())

	buf.Reset()
	w = NewWriter(buf)
	w.Options.PrintBranchLengths = false
	require.NoError(t, w.WriteAll(trees))
	assert.Equal(t, "(A,B)C;\n(D,E)F;\n", buf.String())

	trees[1].Node(1).Data.Comments = []string{"x]y"}
	buf.Reset()
	w = NewWriter(buf)
	assert.ErrorIs(t, w.Write(trees[1]), ErrStructural)
	require.NoError(t, w.Flush())
	assert.Empty(t, buf.String())
}
