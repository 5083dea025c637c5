package fca

import (
	"github.com/cockroachdb/errors"
)

// Verify re-checks the invariants the enumerator and basis constructors
// rely on. Any failure is an assertion error: the result must not be used.
func Verify(c *Context, r *Result) error {
	e := r.Enumeration
	for i, intent := range e.Intents {
		if cl := c.Closure(intent); !cl.Equal(intent) {
			return errors.AssertionFailedf("intent %d %s is not closed: closure is %s", i, intent, cl)
		}
		for _, k := range e.Keys[i] {
			if cl := c.Closure(k); !cl.Equal(intent) {
				return errors.AssertionFailedf("key %s generates %s, recorded under %s", k, cl, intent)
			}
			for _, a := range k.Indices() {
				if c.Closure(k.Without(a)).Equal(intent) {
					return errors.AssertionFailedf("key %s is not minimal: dropping %d keeps closure %s", k, a, intent)
				}
			}
		}
	}

	for i, im := range r.PseudoIntents {
		p := im.Premise
		if c.Closure(p).Equal(p) {
			return errors.AssertionFailedf("pseudo-intent %s is closed", p)
		}
		others := make([]Implication, 0, len(r.PseudoIntents)-1)
		others = append(others, r.PseudoIntents[:i]...)
		others = append(others, r.PseudoIntents[i+1:]...)
		if s := PseudoSaturate(p, others); !s.Equal(p) {
			return errors.AssertionFailedf("pseudo-intent %s is not closed under smaller pseudo-intents: saturates to %s", p, s)
		}
	}

	for _, basis := range [][]Implication{r.ProperPremises, r.PseudoIntents} {
		for _, im := range basis {
			if !im.Premise.IsProperSubsetOf(im.ConclusionFull) {
				return errors.AssertionFailedf("implication %s -> %s adds nothing", im.Premise, im.ConclusionFull)
			}
			if im.Conclusion.IsEmpty() {
				return errors.AssertionFailedf("implication %s -> %s has an empty conclusion", im.Premise, im.ConclusionFull)
			}
		}
	}
	return nil
}
