package fca

// MaxDescribeAttributes bounds Describe, which visits every attribute subset.
const MaxDescribeAttributes = 20

// Description classifies one attribute subset of the relation.
type Description struct {
	Attributes      Set
	Extent          Set
	Intent          Set
	Support         int
	DeltaStability  int
	IsClosed        bool
	IsKey           bool
	IsPasskey       bool
	IsProperPremise bool
	IsPseudoIntent  bool
}

// Describe lists every attribute subset in canonical order with its
// closure, support and role in the lattice and both bases. Relations with
// more than MaxDescribeAttributes attributes are rejected.
func Describe(c *Context, r *Result) ([]Description, error) {
	n := c.NumAttributes()
	if n > MaxDescribeAttributes {
		return nil, invalidf("describe supports at most %d attributes, relation has %d", MaxDescribeAttributes, n)
	}

	passkeys := make(map[string]bool)
	for _, pks := range r.Enumeration.Passkeys {
		for _, pk := range pks {
			passkeys[pk.Key()] = true
		}
	}
	premises := make(map[string]bool, len(r.ProperPremises))
	for _, im := range r.ProperPremises {
		premises[im.Premise.Key()] = true
	}
	pseudo := make(map[string]bool, len(r.PseudoIntents))
	for _, im := range r.PseudoIntents {
		pseudo[im.Premise.Key()] = true
	}

	var out []Description
	for size := 0; size <= n; size++ {
		forEachCombination(n, size, func(idx []int) {
			d := NewSet(n, idx...)
			ext := c.Extent(d)
			intent := c.Intent(ext)
			_, isKey := r.Enumeration.Table.Lookup(d)
			id := d.Key()
			out = append(out, Description{
				Attributes:      d,
				Extent:          ext,
				Intent:          intent,
				Support:         ext.Count(),
				DeltaStability:  DeltaStability(c, d, ext),
				IsClosed:        intent.Equal(d),
				IsKey:           isKey,
				IsPasskey:       passkeys[id],
				IsProperPremise: premises[id],
				IsPseudoIntent:  pseudo[id],
			})
		})
	}
	return out, nil
}

// forEachCombination calls fn with every size-k subset of [0, n) in
// lexicographic order. idx is reused between calls.
func forEachCombination(n, k int, fn func(idx []int)) {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
