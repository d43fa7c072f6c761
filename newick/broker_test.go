package newick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrokerStack(t *testing.T) {
	var b Broker
	assert.True(t, b.Empty())
	assert.Nil(t, b.Top())
	assert.Nil(t, b.Bottom())
	_, ok := b.PopTop()
	assert.False(t, ok)
	_, ok = b.PopBottom()
	assert.False(t, ok)

	b.PushBottom(Element{Name: "B", Depth: 1})
	b.PushTop(Element{Name: "R"})
	b.PushBottom(Element{Name: "C", Depth: 1})
	require.Equal(t, 3, b.Len())
	assert.Equal(t, "R", b.Top().Name)
	assert.Equal(t, "C", b.Bottom().Name)
	assert.Equal(t, "B", b.At(1).Name)

	var forward, backward []string
	for _, el := range b.All() {
		forward = append(forward, el.Name)
	}
	for _, el := range b.Backward() {
		backward = append(backward, el.Name)
	}
	assert.Equal(t, []string{"R", "B", "C"}, forward)
	assert.Equal(t, []string{"C", "B", "R"}, backward)

	el, ok := b.PopTop()
	require.True(t, ok)
	assert.Equal(t, "R", el.Name)
	el, ok = b.PopBottom()
	require.True(t, ok)
	assert.Equal(t, "C", el.Name)
	assert.Equal(t, 1, b.Len())

	b.Clear()
	assert.True(t, b.Empty())
}

func TestBrokerValidate(t *testing.T) {
	tests := []struct {
		name   string
		depths []int
		valid  bool
	}{
		{"empty", nil, false},
		{"single", []int{0}, true},
		{"sample", []int{0, 1, 1, 1, 2, 2}, true},
		{"deep then back", []int{0, 1, 2, 3, 1, 2}, true},
		{"starts deep", []int{1, 2}, false},
		{"jump", []int{0, 1, 3}, false},
		{"second root", []int{0, 1, 0}, false},
		{"negative", []int{0, -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Broker
			for _, d := range tt.depths {
				b.PushBottom(Element{Depth: d})
			}
			err := b.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrStructural)
			_, err = ToTree(&b, DefaultConverter())
			assert.ErrorIs(t, err, ErrStructural)
		})
	}
}

func TestBrokerShape(t *testing.T) {
	tests := []struct {
		input       string
		ranks       []int
		leaves      int
		maxRank     int
		bifurcating bool
	}{
		{"(A,B,(C,D)E)F;", []int{3, 0, 0, 2, 0, 0}, 4, 3, true},
		{"((A,B),(C,D));", []int{2, 2, 0, 0, 2, 0, 0}, 4, 2, true},
		{"(A,B,C,D);", []int{4, 0, 0, 0, 0}, 4, 4, false},
		{"((A)B,C);", []int{2, 1, 0, 0}, 2, 2, false},
		{"A;", []int{0}, 1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			b, err := ParseBroker(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.ranks, b.Ranks())
			assert.Equal(t, tt.leaves, b.LeafCount())
			assert.Equal(t, b.Len()-tt.leaves, b.InnerCount())
			assert.Equal(t, tt.maxRank, b.MaxRank())
			assert.Equal(t, tt.bifurcating, b.IsBifurcating())
		})
	}
}

func TestBrokerPositions(t *testing.T) {
	b, err := ParseBroker("(A,\n  B:1)C;")
	require.NoError(t, err)
	assert.Equal(t, 1, b.At(0).line)
	assert.Equal(t, 1, b.At(0).column)
	assert.Equal(t, 2, b.At(2).line)
	assert.Equal(t, 3, b.At(2).column)
}

func TestBrokerDump(t *testing.T) {
	b, err := ParseBroker("(A:1[c],{t}B)C;")
	require.NoError(t, err)
	assert.Equal(t, "C rank=2\n  A (1) rank=0 [c]\n  B rank=0 {t}\n", b.Dump())
}

func TestToTreeDepths(t *testing.T) {
	var b Broker
	for _, d := range []int{0, 1, 2, 3, 1, 2} {
		b.PushBottom(Element{Depth: d})
	}
	tr, err := ToTree(&b, DefaultConverter())
	require.NoError(t, err)
	for i, want := range []int{0, 1, 2, 3, 1, 2} {
		assert.Equal(t, want, tr.Depth(i))
	}
	p, _ := tr.Parent(5)
	assert.Equal(t, 4, p)
}
