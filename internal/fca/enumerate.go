package fca

import (
	"sort"
)

// KeyTable maps every key (minimal generator) of the relation to the index
// of the intent it generates. It is produced by one Enumerate call and
// handed explicitly to the lattice builder and basis constructors.
type KeyTable struct {
	keys     []Set
	intentOf []int
	index    map[string]int
}

// Len is the number of keys.
func (t *KeyTable) Len() int { return len(t.keys) }

// Key returns the i-th key in canonical order.
func (t *KeyTable) Key(i int) Set { return t.keys[i] }

// IntentOf returns the intent index generated by the i-th key.
func (t *KeyTable) IntentOf(i int) int { return t.intentOf[i] }

// Lookup returns the intent index of key k, if k is a key.
func (t *KeyTable) Lookup(k Set) (int, bool) {
	i, ok := t.index[k.Key()]
	if !ok {
		return 0, false
	}
	return t.intentOf[i], true
}

// Enumeration is the duplicate-free set of intents together with their
// extents, keys and passkeys.
type Enumeration struct {
	// Intents in canonical order.
	Intents []Set
	Extents []Set
	// Keys[i] and Passkeys[i] belong to Intents[i], both in canonical order.
	Keys     [][]Set
	Passkeys [][]Set
	Table    *KeyTable
}

// IntentIndex returns the position of intent s, if s is closed.
func (e *Enumeration) IntentIndex(s Set) (int, bool) {
	for i, in := range e.Intents {
		if in.Equal(s) {
			return i, true
		}
	}
	return 0, false
}

type levelEntry struct {
	set    Set
	extent Set
}

// Enumerate discovers every intent of c with all of its keys.
//
// Keys are mined level by level in canonical order. Subsets of a key are
// keys, so a candidate of size k is the join of two keys of size k-1 that
// share their first k-2 members; it is kept when each of its (k-1)-subsets
// is a key with strictly larger support.
func Enumerate(c *Context) *Enumeration {
	n := c.NumAttributes()

	var keys []levelEntry
	level := []levelEntry{{set: EmptySet(n), extent: FullSet(c.NumObjects())}}
	keys = append(keys, level...)

	for size := 1; len(level) > 0 && size <= n; size++ {
		supp := make(map[string]int, len(level))
		for _, e := range level {
			supp[e.set.Key()] = e.extent.Count()
		}
		next := make([]levelEntry, 0)
		if size == 1 {
			root := level[0]
			for a := 0; a < n; a++ {
				ext := root.extent.Intersect(c.Column(a))
				if ext.Count() < root.extent.Count() {
					next = append(next, levelEntry{set: NewSet(n, a), extent: ext})
				}
			}
		} else {
			next = joinLevel(c, level, supp)
		}
		keys = append(keys, next...)
		level = next
	}

	return groupKeys(c, keys)
}

// joinLevel generates and checks the candidates of the next level. level
// must be sorted canonically, which keeps keys sharing a prefix adjacent.
func joinLevel(c *Context, level []levelEntry, supp map[string]int) []levelEntry {
	var next []levelEntry
	for i := 0; i < len(level); i++ {
		pi := level[i].set.Indices()
		for j := i + 1; j < len(level); j++ {
			pj := level[j].set.Indices()
			if !samePrefix(pi, pj) {
				break
			}
			cand := level[i].set.With(pj[len(pj)-1])
			ext := level[i].extent.Intersect(c.Column(pj[len(pj)-1]))
			if isKeyCandidate(cand, ext.Count(), supp) {
				next = append(next, levelEntry{set: cand, extent: ext})
			}
		}
	}
	return next
}

func samePrefix(a, b []int) bool {
	for k := 0; k < len(a)-1; k++ {
		if a[k] != b[k] {
			return false
		}
	}
	return true
}

func isKeyCandidate(cand Set, support int, supp map[string]int) bool {
	for _, a := range cand.Indices() {
		s, ok := supp[cand.Without(a).Key()]
		if !ok || support >= s {
			return false
		}
	}
	return true
}

func groupKeys(c *Context, keys []levelEntry) *Enumeration {
	type group struct {
		intent Set
		extent Set
		keys   []Set
	}
	byIntent := make(map[string]*group)
	var order []*group
	closures := make([]string, len(keys))
	for i, k := range keys {
		intent := c.Intent(k.extent)
		id := intent.Key()
		closures[i] = id
		g, ok := byIntent[id]
		if !ok {
			g = &group{intent: intent, extent: k.extent}
			byIntent[id] = g
			order = append(order, g)
		}
		g.keys = append(g.keys, k.set)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].intent.Compare(order[j].intent) < 0
	})

	e := &Enumeration{
		Intents:  make([]Set, len(order)),
		Extents:  make([]Set, len(order)),
		Keys:     make([][]Set, len(order)),
		Passkeys: make([][]Set, len(order)),
	}
	pos := make(map[string]int, len(order))
	for i, g := range order {
		e.Intents[i] = g.intent
		e.Extents[i] = g.extent
		e.Keys[i] = g.keys
		e.Passkeys[i] = minimumKeys(g.keys)
		pos[g.intent.Key()] = i
	}

	t := &KeyTable{
		keys:     make([]Set, len(keys)),
		intentOf: make([]int, len(keys)),
		index:    make(map[string]int, len(keys)),
	}
	for i, k := range keys {
		t.keys[i] = k.set
		t.intentOf[i] = pos[closures[i]]
		t.index[k.set.Key()] = i
	}
	e.Table = t
	return e
}

// minimumKeys keeps the keys of smallest cardinality. keys arrive in
// canonical order, so the smallest ones form a prefix.
func minimumKeys(keys []Set) []Set {
	if len(keys) == 0 {
		return nil
	}
	smallest := keys[0].Count()
	var out []Set
	for _, k := range keys {
		if k.Count() == smallest {
			out = append(out, k)
		}
	}
	return out
}
