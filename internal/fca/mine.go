package fca

import (
	"context"

	"github.com/cockroachdb/errors"
)

// Options tunes Mine.
type Options struct {
	// Workers bounds the data-parallel stages; zero uses GOMAXPROCS.
	Workers int
	// Verify runs the invariant checks before returning.
	Verify bool
}

// Result holds everything derived from one relation. It is read-only once
// returned.
type Result struct {
	Enumeration    *Enumeration
	Lattice        *Lattice
	ProperPremises []Implication
	PseudoIntents  []Implication
}

// Basis returns the implications of the requested kind.
func (r *Result) Basis(kind BasisKind) []Implication {
	if kind == PseudoIntent {
		return r.PseudoIntents
	}
	return r.ProperPremises
}

// Mine runs the whole pipeline over c: enumeration of intents and keys,
// lattice order, delta-stability and both implication bases.
func Mine(ctx context.Context, c *Context, opts Options) (*Result, error) {
	if c == nil {
		return nil, errors.Wrap(ErrInvalidInput, "nil context")
	}
	e := Enumerate(c)
	l := BuildLattice(e)
	if err := ComputeStability(ctx, c, l, opts.Workers); err != nil {
		return nil, errors.Wrap(err, "compute stability")
	}

	r := &Result{Enumeration: e, Lattice: l}
	for _, kind := range []BasisKind{ProperPremise, PseudoIntent} {
		impls := NewBasisBuilder(kind).Build(c, e)
		AttachConcepts(l, impls, kind)
		if kind == ProperPremise {
			r.ProperPremises = impls
		} else {
			r.PseudoIntents = impls
		}
	}

	if opts.Verify {
		if err := Verify(c, r); err != nil {
			return nil, err
		}
	}
	return r, nil
}
