package bipartition

import (
	"encoding/binary"
	"math/bits"
	"strings"
)

// Bitvector is a set of leaf ranks of fixed size.
type Bitvector struct {
	size  int
	words []uint64
}

// NewBitvector returns an empty bitvector for ranks 0 to size-1.
func NewBitvector(size int) *Bitvector {
	return &Bitvector{size: size, words: make([]uint64, (size+63)/64)}
}

// Len returns the number of ranks the bitvector can hold.
func (b *Bitvector) Len() int { return b.size }

func (b *Bitvector) Set(i int) { b.words[i/64] |= 1 << (i % 64) }
func (b *Bitvector) Unset(i int) { b.words[i/64] &^= 1 << (i % 64) }

func (b *Bitvector) Get(i int) bool {
	return b.words[i/64]&(1<<(i%64)) != 0
}

func (b *Bitvector) Clone() *Bitvector {
	return &Bitvector{size: b.size, words: append([]uint64(nil), b.words...)}
}

// Merge adds all ranks of o to b.
func (b *Bitvector) Merge(o *Bitvector) {
	for i, w := range o.words {
		b.words[i] |= w
	}
}

func (b *Bitvector) Or(o *Bitvector) *Bitvector {
	c := b.Clone()
	c.Merge(o)
	return c
}

func (b *Bitvector) And(o *Bitvector) *Bitvector {
	c := b.Clone()
	for i, w := range o.words {
		c.words[i] &= w
	}
	return c
}

func (b *Bitvector) Xor(o *Bitvector) *Bitvector {
	c := b.Clone()
	for i, w := range o.words {
		c.words[i] ^= w
	}
	return c
}

// Not returns the complement of b within its size.
func (b *Bitvector) Not() *Bitvector {
	c := b.Clone()
	for i := range c.words {
		c.words[i] = ^c.words[i]
	}
	if rest := b.size % 64; rest != 0 {
		c.words[len(c.words)-1] &= 1<<rest - 1
	}
	return c
}

// Count returns the number of ranks in b.
func (b *Bitvector) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

func (b *Bitvector) Equal(o *Bitvector) bool {
	if b.size != o.size {
		return false
	}
	for i, w := range b.words {
		if o.words[i] != w {
			return false
		}
	}
	return true
}

func (b *Bitvector) IsZero() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Normalize returns b, or its complement if b holds rank 0. A split and its
// complement normalize to the same bitvector.
func (b *Bitvector) Normalize() *Bitvector {
	if b.size > 0 && b.Get(0) {
		return b.Not()
	}
	return b.Clone()
}

// Key returns a string that is equal for equal bitvectors, for use as a map
// key.
func (b *Bitvector) Key() string {
	buf := make([]byte, 0, 8*len(b.words))
	for _, w := range b.words {
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}
	return string(buf)
}

// String writes rank 0 first, as '1' for a set rank and '0' otherwise.
func (b *Bitvector) String() string {
	var sb strings.Builder
	sb.Grow(b.size)
	for i := 0; i < b.size; i++ {
		if b.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
