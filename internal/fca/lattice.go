package fca

import (
	"sort"
)

// Concept is one node of the concept lattice. Concept indices refer to
// positions in Lattice.Concepts.
type Concept struct {
	Index  int
	Extent Set
	Intent Set
	// NewExtent is the extent minus the extents of all subconcepts;
	// NewIntent is the intent minus the intents of all superconcepts.
	NewExtent      Set
	NewIntent      Set
	Support        int
	DeltaStability int
	Keys           []Set
	Passkeys       []Set
	ProperPremises []Set
	PseudoIntents  []Set
	// Previous and Next are the immediate subconcepts and superconcepts.
	Previous      []int
	Next          []int
	SubConcepts   []int
	SuperConcepts []int
}

// Lattice is the ordered set of concepts of one relation.
type Lattice struct {
	Concepts []Concept
	// byIntent maps an intent key to the concept index.
	byIntent map[string]int
}

// Len is the number of concepts.
func (l *Lattice) Len() int { return len(l.Concepts) }

// ConceptOf returns the index of the concept whose intent is s.
func (l *Lattice) ConceptOf(s Set) (int, bool) {
	i, ok := l.byIntent[s.Key()]
	return i, ok
}

// IsSubconcept reports whether concept i lies strictly below concept j.
func (l *Lattice) IsSubconcept(i, j int) bool {
	for _, k := range l.Concepts[j].SubConcepts {
		if k == i {
			return true
		}
	}
	return false
}

// BuildLattice orders the enumerated intents into a lattice. Concepts follow
// one fixed linear extension: descending support, ties broken by the
// canonical order of intents.
//
// A strict subconcept has a strictly smaller extent, so it always comes
// later in the linear order and only later concepts are compared.
func BuildLattice(e *Enumeration) *Lattice {
	k := len(e.Intents)
	order := make([]int, k)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		sa, sb := e.Extents[order[a]].Count(), e.Extents[order[b]].Count()
		if sa != sb {
			return sa > sb
		}
		return e.Intents[order[a]].Compare(e.Intents[order[b]]) < 0
	})

	l := &Lattice{Concepts: make([]Concept, k), byIntent: make(map[string]int, k)}
	for pos, src := range order {
		l.Concepts[pos] = Concept{
			Index:    pos,
			Extent:   e.Extents[src],
			Intent:   e.Intents[src],
			Support:  e.Extents[src].Count(),
			Keys:     e.Keys[src],
			Passkeys: e.Passkeys[src],
		}
		l.byIntent[e.Intents[src].Key()] = pos
	}

	subs := make([]Set, k)
	sups := make([]Set, k)
	for i := range subs {
		subs[i] = EmptySet(k)
		sups[i] = EmptySet(k)
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if l.Concepts[i].Intent.IsProperSubsetOf(l.Concepts[j].Intent) {
				subs[i] = subs[i].With(j)
				sups[j] = sups[j].With(i)
			}
		}
	}

	for i := range l.Concepts {
		c := &l.Concepts[i]
		c.SubConcepts = subs[i].Indices()
		c.SuperConcepts = sups[i].Indices()
		c.Previous = covers(subs[i], sups)
		c.Next = covers(sups[i], subs)

		c.NewExtent = c.Extent
		for _, j := range c.Previous {
			c.NewExtent = c.NewExtent.Difference(l.Concepts[j].Extent)
		}
	}
	for i := range l.Concepts {
		c := &l.Concepts[i]
		c.NewIntent = c.Intent
		for _, j := range c.Next {
			c.NewIntent = c.NewIntent.Difference(l.Concepts[j].Intent)
		}
	}
	return l
}

// covers keeps the members j of related that have no other member of
// related strictly between them and the node. between[j] holds the
// concepts on the far side of j.
func covers(related Set, between []Set) []int {
	var out []int
	for _, j := range related.Indices() {
		if related.Intersect(between[j]).IsEmpty() {
			out = append(out, j)
		}
	}
	return out
}
