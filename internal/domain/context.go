package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Object is one row of a formal context: an object and the attributes it carries.
type Object struct {
	Name       string   `json:"name"`
	Attributes []string `json:"attributes"`
}

// FormalContext is a named binary relation between objects and attributes.
type FormalContext struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Objects   []Object       `json:"objects"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// AttributeNames returns every attribute mentioned by the context, sorted.
func (fc *FormalContext) AttributeNames() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, o := range fc.Objects {
		for _, a := range o.Attributes {
			if _, ok := seen[a]; ok {
				continue
			}
			seen[a] = struct{}{}
			names = append(names, a)
		}
	}
	sort.Strings(names)
	return names
}

// ObjectsFromMap builds rows from an object → attributes mapping. Objects
// are ordered by name so the result does not depend on map iteration.
func ObjectsFromMap(m map[string][]string) []Object {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	objs := make([]Object, len(names))
	for i, name := range names {
		objs[i] = Object{Name: name, Attributes: m[name]}
	}
	return objs
}

// ContextSummary is the listing view of a stored context.
type ContextSummary struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ObjectCount    int       `json:"object_count"`
	AttributeCount int       `json:"attribute_count"`
	CreatedAt      time.Time `json:"created_at"`
}
