package service

import (
	"fmt"

	"github.com/Harshitk-cp/galois/internal/domain"
	"github.com/Harshitk-cp/galois/internal/fca"
)

// Encoded is a formal context translated to bit vectors, together with the
// name tables needed to translate results back.
type Encoded struct {
	Context    *fca.Context
	Objects    []string
	Attributes []string
	attrIndex  map[string]int
}

// Encode maps fc onto an fca.Context. Attributes are numbered in sorted
// name order and objects keep the order they were given in.
func Encode(fc *domain.FormalContext) (*Encoded, error) {
	attrs := fc.AttributeNames()
	index := make(map[string]int, len(attrs))
	for i, a := range attrs {
		index[a] = i
	}

	rows := make([][]int, len(fc.Objects))
	objects := make([]string, len(fc.Objects))
	for g, o := range fc.Objects {
		objects[g] = o.Name
		for _, a := range o.Attributes {
			rows[g] = append(rows[g], index[a])
		}
	}

	c, err := fca.NewContextFromIndices(rows, len(attrs))
	if err != nil {
		return nil, err
	}
	return &Encoded{Context: c, Objects: objects, Attributes: attrs, attrIndex: index}, nil
}

// AttributeSet encodes attribute names. Unknown names are rejected.
func (e *Encoded) AttributeSet(names []string) (fca.Set, error) {
	idx := make([]int, 0, len(names))
	for _, name := range names {
		i, ok := e.attrIndex[name]
		if !ok {
			return fca.Set{}, fmt.Errorf("%w: unknown attribute %q", ErrInvalidInput, name)
		}
		idx = append(idx, i)
	}
	return fca.NewSet(len(e.Attributes), idx...), nil
}

// AttributeNames decodes an attribute set.
func (e *Encoded) AttributeNames(s fca.Set) []string {
	return names(e.Attributes, s)
}

// ObjectNames decodes an object set.
func (e *Encoded) ObjectNames(s fca.Set) []string {
	return names(e.Objects, s)
}

// IntentVector renders an attribute set as a 0/1 vector for similarity search.
func (e *Encoded) IntentVector(s fca.Set) []float32 {
	v := make([]float32, len(e.Attributes))
	for _, i := range s.Indices() {
		v[i] = 1
	}
	return v
}

func names(table []string, s fca.Set) []string {
	idx := s.Indices()
	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = table[j]
	}
	return out
}

func (e *Encoded) attributeLists(sets []fca.Set) [][]string {
	out := make([][]string, len(sets))
	for i, s := range sets {
		out[i] = e.AttributeNames(s)
	}
	return out
}
