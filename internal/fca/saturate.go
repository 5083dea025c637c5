package fca

// Implication is a rule Premise → ConclusionFull valid in the relation.
// Conclusion holds only the attributes the rule adds.
type Implication struct {
	Premise        Set
	Conclusion     Set
	ConclusionFull Set
	Extent         Set
	Support        int
	// Concept is the lattice index of the concept whose intent is
	// ConclusionFull, or -1 when no lattice was attached.
	Concept int
}

// Saturate closes attrs under impls: implications are scanned in order and
// any whose premise is contained in the working set contributes its full
// conclusion, until a pass adds nothing.
func Saturate(attrs Set, impls []Implication) Set {
	cur := attrs
	for {
		changed := false
		for _, im := range impls {
			if im.Premise.IsSubsetOf(cur) && !im.ConclusionFull.IsSubsetOf(cur) {
				cur = cur.Union(im.ConclusionFull)
				changed = true
			}
		}
		if !changed {
			return cur
		}
	}
}

// PseudoSaturate is Saturate restricted to premises that are proper subsets
// of the working set. Its fixed points over the pseudo-intent basis are
// exactly the intents and the pseudo-intents.
func PseudoSaturate(attrs Set, impls []Implication) Set {
	cur := attrs
	for {
		changed := false
		for _, im := range impls {
			if im.Premise.IsProperSubsetOf(cur) && !im.ConclusionFull.IsSubsetOf(cur) {
				cur = cur.Union(im.ConclusionFull)
				changed = true
			}
		}
		if !changed {
			return cur
		}
	}
}

// Infer returns every attribute forced by observed under impls. It is
// Saturate with width validation against the relation.
func (c *Context) Infer(observed Set, impls []Implication) (Set, error) {
	if err := c.checkAttrs(observed); err != nil {
		return Set{}, err
	}
	return Saturate(observed, impls), nil
}
