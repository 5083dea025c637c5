package fca

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Set is a fixed-width bit vector used for both attribute sets and object
// sets. A Set is never mutated after construction: every operation returns
// a new value, so the same Set can be shared between concepts and
// implications.
type Set struct {
	n    int
	bits *bitset.BitSet
}

// EmptySet returns the empty set over a universe of n elements.
func EmptySet(n int) Set {
	return Set{n: n, bits: bitset.New(uint(n))}
}

// FullSet returns the set containing all n elements.
func FullSet(n int) Set {
	b := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		b.Set(uint(i))
	}
	return Set{n: n, bits: b}
}

// NewSet returns the set over n elements holding the given indices.
// Indices outside [0, n) are ignored; NewContextFromIndices validates them.
func NewSet(n int, idx ...int) Set {
	b := bitset.New(uint(n))
	for _, i := range idx {
		if i >= 0 && i < n {
			b.Set(uint(i))
		}
	}
	return Set{n: n, bits: b}
}

// Len is the width of the universe.
func (s Set) Len() int { return s.n }

// Count is the number of elements in the set.
func (s Set) Count() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

// Has reports whether i is a member.
func (s Set) Has(i int) bool {
	if s.bits == nil || i < 0 || i >= s.n {
		return false
	}
	return s.bits.Test(uint(i))
}

// IsEmpty reports whether the set has no members.
func (s Set) IsEmpty() bool { return s.Count() == 0 }

// IsFull reports whether every element of the universe is a member.
func (s Set) IsFull() bool { return s.Count() == s.n }

func (s Set) raw() *bitset.BitSet {
	if s.bits == nil {
		return bitset.New(uint(s.n))
	}
	return s.bits
}

// Union returns s ∪ o.
func (s Set) Union(o Set) Set {
	return Set{n: s.n, bits: s.raw().Union(o.raw())}
}

// Intersect returns s ∩ o.
func (s Set) Intersect(o Set) Set {
	return Set{n: s.n, bits: s.raw().Intersection(o.raw())}
}

// Difference returns s \ o.
func (s Set) Difference(o Set) Set {
	return Set{n: s.n, bits: s.raw().Difference(o.raw())}
}

// With returns s ∪ {i}.
func (s Set) With(i int) Set {
	b := s.raw().Clone()
	b.Set(uint(i))
	return Set{n: s.n, bits: b}
}

// Without returns s \ {i}.
func (s Set) Without(i int) Set {
	b := s.raw().Clone()
	b.Clear(uint(i))
	return Set{n: s.n, bits: b}
}

// IsSubsetOf reports whether s ⊆ o.
func (s Set) IsSubsetOf(o Set) bool {
	return o.raw().IsSuperSet(s.raw())
}

// IsProperSubsetOf reports whether s ⊊ o.
func (s Set) IsProperSubsetOf(o Set) bool {
	return s.Count() < o.Count() && s.IsSubsetOf(o)
}

// Equal reports whether both sets have the same members.
func (s Set) Equal(o Set) bool {
	return s.Count() == o.Count() && s.IsSubsetOf(o)
}

// Indices returns the members in ascending order.
func (s Set) Indices() []int {
	out := make([]int, 0, s.Count())
	if s.bits == nil {
		return out
	}
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// Key returns a compact string identifying the members, usable as a map key.
func (s Set) Key() string {
	idx := s.Indices()
	buf := make([]byte, 0, len(idx)*2)
	for _, i := range idx {
		buf = binary.AppendUvarint(buf, uint64(i))
	}
	return string(buf)
}

// String renders the set as {i,j,...}.
func (s Set) String() string {
	idx := s.Indices()
	parts := make([]string, len(idx))
	for k, i := range idx {
		parts[k] = strconv.Itoa(i)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Compare orders sets canonically: by cardinality, then by the ascending
// lists of member indices compared lexicographically. It returns -1, 0 or 1.
func (s Set) Compare(o Set) int {
	if c1, c2 := s.Count(), o.Count(); c1 != c2 {
		if c1 < c2 {
			return -1
		}
		return 1
	}
	a, b := s.Indices(), o.Indices()
	for k := range a {
		if a[k] != b[k] {
			if a[k] < b[k] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Last returns the largest member, or -1 for the empty set.
func (s Set) Last() int {
	idx := s.Indices()
	if len(idx) == 0 {
		return -1
	}
	return idx[len(idx)-1]
}
