package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/Harshitk-cp/galois/internal/domain"
	"github.com/Harshitk-cp/galois/internal/fca"
)

// fractionEpsilon absorbs float error so that k/m and k select the same rows.
const fractionEpsilon = 1e-9

// supportThreshold resolves a MinSupport into an absolute object count.
func supportThreshold(ms domain.MinSupport, nObjects int) (int, error) {
	switch {
	case ms.Count != nil && ms.Fraction != nil:
		return 0, fmt.Errorf("%w: min_support takes either count or fraction", ErrInvalidInput)
	case ms.Count != nil:
		if *ms.Count < 0 {
			return 0, fmt.Errorf("%w: min_support count must not be negative", ErrInvalidInput)
		}
		return *ms.Count, nil
	case ms.Fraction != nil:
		f := *ms.Fraction
		if math.IsNaN(f) || f < 0 || f > 1 {
			return 0, fmt.Errorf("%w: min_support fraction must be in [0, 1]", ErrInvalidInput)
		}
		return int(math.Ceil(f*float64(nObjects) - fractionEpsilon)), nil
	}
	return 0, nil
}

// selectConcepts returns the lattice indices that pass q, in output order.
func selectConcepts(l *fca.Lattice, q domain.ConceptQuery, minSupport int) ([]int, error) {
	if !domain.ValidSortKey(string(q.SortBy)) {
		return nil, fmt.Errorf("%w: unknown sort key %q", ErrInvalidInput, q.SortBy)
	}
	if q.NStableConcepts < 0 {
		return nil, fmt.Errorf("%w: n_stable_concepts must not be negative", ErrInvalidInput)
	}

	var keep []int
	for i, c := range l.Concepts {
		if c.Support >= minSupport && c.DeltaStability >= q.MinDeltaStability {
			keep = append(keep, i)
		}
	}

	if q.NStableConcepts > 0 && len(keep) > q.NStableConcepts {
		sort.SliceStable(keep, func(a, b int) bool {
			return l.Concepts[keep[a]].DeltaStability > l.Concepts[keep[b]].DeltaStability
		})
		keep = keep[:q.NStableConcepts]
		sort.Ints(keep)
	}

	if q.SortBy != domain.SortNone {
		key := sortValue(q.SortBy)
		sort.SliceStable(keep, func(a, b int) bool {
			return key(&l.Concepts[keep[a]]) > key(&l.Concepts[keep[b]])
		})
	}
	return keep, nil
}

func sortValue(k domain.SortKey) func(*fca.Concept) int {
	switch k {
	case domain.SortExtentSize, domain.SortSupport:
		return func(c *fca.Concept) int { return c.Support }
	case domain.SortIntentSize:
		return func(c *fca.Concept) int { return c.Intent.Count() }
	default:
		return func(c *fca.Concept) int { return c.DeltaStability }
	}
}

// renumber maps lattice indices to positions in the selection, dropping
// those that were filtered out.
func renumber(related []int, position map[int]int) []int {
	out := make([]int, 0, len(related))
	for _, i := range related {
		if p, ok := position[i]; ok {
			out = append(out, p)
		}
	}
	sort.Ints(out)
	return out
}

// filterImplications applies the stability and support thresholds to a basis.
func filterImplications(l *fca.Lattice, impls []fca.Implication, minDelta, minSupport int) []fca.Implication {
	impls = fca.FilterByStability(l, impls, minDelta)
	out := make([]fca.Implication, 0, len(impls))
	for _, im := range impls {
		if im.Support >= minSupport {
			out = append(out, im)
		}
	}
	return out
}
