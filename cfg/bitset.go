package cfg

import (
	"fmt"
	"math/bits"
	"strings"
)

// BitSet is a growable set of small non-negative integers, used for live
// local variable slots.
type BitSet struct {
	words []uint64
}

// NewBitSet returns a set sized for values below n. The set still grows on
// demand when larger values are set.
func NewBitSet(n int) *BitSet {
	return &BitSet{words: make([]uint64, (n+63)/64)}
}

// Get reports whether i is in the set.
func (b *BitSet) Get(i int) bool {
	w := i / 64
	if i < 0 || w >= len(b.words) {
		return false
	}
	return b.words[w]&(1<<(uint(i)%64)) != 0
}

// Set adds i to the set.
func (b *BitSet) Set(i int) {
	w := i / 64
	for w >= len(b.words) {
		b.words = append(b.words, 0)
	}
	b.words[w] |= 1 << (uint(i) % 64)
}

// Clear removes i from the set.
func (b *BitSet) Clear(i int) {
	w := i / 64
	if i < 0 || w >= len(b.words) {
		return
	}
	b.words[w] &^= 1 << (uint(i) % 64)
}

// Or merges other into b and reports whether b changed.
func (b *BitSet) Or(other *BitSet) bool {
	changed := false
	for w := range other.words {
		for w >= len(b.words) {
			b.words = append(b.words, 0)
		}
		merged := b.words[w] | other.words[w]
		if merged != b.words[w] {
			b.words[w] = merged
			changed = true
		}
	}
	return changed
}

// Clone returns an independent copy.
func (b *BitSet) Clone() *BitSet {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return &BitSet{words: words}
}

// Count returns the number of set bits.
func (b *BitSet) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

func (b *BitSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for i := 0; i < len(b.words)*64; i++ {
		if b.Get(i) {
			if !first {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", i)
			first = false
		}
	}
	sb.WriteByte('}')
	return sb.String()
}
