package fca

import (
	"container/heap"
	"sort"
	"strings"
)

// BasisKind selects an implication basis.
type BasisKind int

const (
	// ProperPremise is the canonical direct basis.
	ProperPremise BasisKind = iota
	// PseudoIntent is the Duquenne–Guigues (stem) basis.
	PseudoIntent
)

func (k BasisKind) String() string {
	switch k {
	case ProperPremise:
		return "proper_premise"
	case PseudoIntent:
		return "pseudo_intent"
	default:
		return "unknown"
	}
}

// ParseBasisKind accepts the usual names of both bases, case-insensitively.
func ParseBasisKind(s string) (BasisKind, error) {
	norm := strings.NewReplacer("-", " ", "_", " ").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch norm {
	case "proper premise", "canonical direct", "karell", "":
		return ProperPremise, nil
	case "pseudo intent", "duquenne guigues", "minimum", "canonical", "stem":
		return PseudoIntent, nil
	}
	return 0, invalidf("unknown basis kind %q", s)
}

// BasisBuilder builds an implication basis from the enumerator's key table.
type BasisBuilder interface {
	Kind() BasisKind
	Build(c *Context, e *Enumeration) []Implication
}

// NewBasisBuilder returns the strategy for kind.
func NewBasisBuilder(kind BasisKind) BasisBuilder {
	if kind == PseudoIntent {
		return pseudoIntentBasis{}
	}
	return properPremiseBasis{}
}

type properPremiseBasis struct{}

func (properPremiseBasis) Kind() BasisKind { return ProperPremise }

// Build emits one implication per proper premise. A key K of intent I is a
// proper premise when I is not already covered by K together with the
// closures of K's maximal proper subsets; the conclusion is what is left.
// Subsets of keys are keys, so those closures are read off the key table.
func (properPremiseBasis) Build(c *Context, e *Enumeration) []Implication {
	if c.IsDegenerate() {
		return nil
	}
	var out []Implication
	for intentIdx, keys := range e.Keys {
		intent := e.Intents[intentIdx]
		for _, k := range keys {
			if k.Equal(intent) {
				continue
			}
			covered := k
			for _, a := range k.Indices() {
				sub, ok := e.Table.Lookup(k.Without(a))
				if !ok {
					covered = covered.Union(c.Closure(k.Without(a)))
					continue
				}
				covered = covered.Union(e.Intents[sub])
			}
			if covered.Equal(intent) {
				continue
			}
			out = append(out, newImplication(k, intent.Difference(covered), intent, e.Extents[intentIdx]))
		}
	}
	return out
}

type pseudoIntentBasis struct{}

func (pseudoIntentBasis) Kind() BasisKind { return PseudoIntent }

// Build finds every pseudo-intent. Each pseudo-intent P is the pseudo
// saturation of any key of its closure contained in P, so candidates start
// at the non-closed keys and are grown against the pseudo-intents found so
// far. Candidates are processed smallest first: when a candidate of size s
// is taken, every pseudo-intent smaller than s is already known, so a
// candidate that no longer grows is either an intent or a pseudo-intent.
func (pseudoIntentBasis) Build(c *Context, e *Enumeration) []Implication {
	if c.IsDegenerate() {
		return nil
	}
	queue := &setQueue{}
	seen := make(map[string]bool)
	push := func(s Set) {
		if id := s.Key(); !seen[id] {
			seen[id] = true
			heap.Push(queue, s)
		}
	}
	for i, keys := range e.Keys {
		for _, k := range keys {
			if !k.Equal(e.Intents[i]) {
				push(k)
			}
		}
	}

	var basis []Implication
	for queue.Len() > 0 {
		s := heap.Pop(queue).(Set)
		grown := PseudoSaturate(s, basis)
		if !grown.Equal(s) {
			push(grown)
			continue
		}
		closure := c.Closure(s)
		if closure.Equal(s) {
			continue
		}
		basis = append(basis, newImplication(s, closure.Difference(s), closure, c.Extent(closure)))
	}

	sort.SliceStable(basis, func(i, j int) bool {
		return basis[i].Premise.Compare(basis[j].Premise) < 0
	})
	return basis
}

func newImplication(premise, conclusion, full, extent Set) Implication {
	return Implication{
		Premise:        premise,
		Conclusion:     conclusion,
		ConclusionFull: full,
		Extent:         extent,
		Support:        extent.Count(),
		Concept:        -1,
	}
}

// AttachConcepts records, for every implication, the concept whose intent is
// its full conclusion, and lists the premises on those concepts.
func AttachConcepts(l *Lattice, impls []Implication, kind BasisKind) {
	for i := range impls {
		idx, ok := l.ConceptOf(impls[i].ConclusionFull)
		if !ok {
			continue
		}
		impls[i].Concept = idx
		c := &l.Concepts[idx]
		switch kind {
		case ProperPremise:
			c.ProperPremises = append(c.ProperPremises, impls[i].Premise)
		case PseudoIntent:
			c.PseudoIntents = append(c.PseudoIntents, impls[i].Premise)
		}
	}
}

// FilterByStability keeps the implications whose conclusion concept has
// delta-stability of at least threshold.
func FilterByStability(l *Lattice, impls []Implication, threshold int) []Implication {
	if threshold <= 0 {
		return impls
	}
	out := make([]Implication, 0, len(impls))
	for _, im := range impls {
		idx, ok := l.ConceptOf(im.ConclusionFull)
		if ok && l.Concepts[idx].DeltaStability >= threshold {
			out = append(out, im)
		}
	}
	return out
}

// SplitUnit rewrites each implication into one implication per added
// attribute, preserving order.
func SplitUnit(impls []Implication) []Implication {
	var out []Implication
	for _, im := range impls {
		for _, a := range im.Conclusion.Indices() {
			unit := im
			unit.Conclusion = NewSet(im.Conclusion.Len(), a)
			out = append(out, unit)
		}
	}
	return out
}

// setQueue is a min-heap of sets in canonical order.
type setQueue []Set

func (q setQueue) Len() int           { return len(q) }
func (q setQueue) Less(i, j int) bool { return q[i].Compare(q[j]) < 0 }
func (q setQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *setQueue) Push(x any)        { *q = append(*q, x.(Set)) }

func (q *setQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}
