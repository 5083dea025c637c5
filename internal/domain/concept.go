package domain

import (
	"time"

	"github.com/google/uuid"
)

// ConceptRecord is one concept of a mined lattice with names resolved.
// Index fields refer to positions in the returned list.
type ConceptRecord struct {
	Index          int        `json:"index"`
	Extent         []string   `json:"extent"`
	Intent         []string   `json:"intent"`
	NewExtent      []string   `json:"new_extent"`
	NewIntent      []string   `json:"new_intent"`
	Support        int        `json:"support"`
	DeltaStability int        `json:"delta_stability"`
	Keys           [][]string `json:"keys"`
	Passkeys       [][]string `json:"passkeys"`
	ProperPremises [][]string `json:"proper_premises"`
	PseudoIntents  [][]string `json:"pseudo_intents"`
	Previous       []int      `json:"previous_concepts"`
	Next           []int      `json:"next_concepts"`
	SubConcepts    []int      `json:"sub_concepts"`
	SuperConcepts  []int      `json:"super_concepts"`
}

// ImplicationRecord is one implication of a basis with names resolved.
// DeltaStability is that of the concept whose intent is ConclusionFull.
type ImplicationRecord struct {
	Premise        []string `json:"premise"`
	Conclusion     []string `json:"conclusion"`
	ConclusionFull []string `json:"conclusion_full"`
	Extent         []string `json:"extent"`
	Support        int      `json:"support"`
	DeltaStability int      `json:"delta_stability"`
}

// DescriptionRecord classifies one attribute subset.
type DescriptionRecord struct {
	Description     []string `json:"description"`
	Extent          []string `json:"extent"`
	Intent          []string `json:"intent"`
	Support         int      `json:"support"`
	DeltaStability  int      `json:"delta_stability"`
	IsClosed        bool     `json:"is_closed"`
	IsKey           bool     `json:"is_key"`
	IsPasskey       bool     `json:"is_passkey"`
	IsProperPremise bool     `json:"is_proper_premise"`
	IsPseudoIntent  bool     `json:"is_pseudo_intent"`
}

// StoredConcept is a concept persisted for later lookup.
type StoredConcept struct {
	ID             uuid.UUID `json:"id"`
	ContextID      uuid.UUID `json:"context_id"`
	Index          int       `json:"index"`
	Intent         []string  `json:"intent"`
	Extent         []string  `json:"extent"`
	Support        int       `json:"support"`
	DeltaStability int       `json:"delta_stability"`
	// IntentVector has one 0/1 entry per attribute of the context.
	IntentVector []float32 `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// StoredConceptWithScore is a stored concept ranked by distance to a query.
type StoredConceptWithScore struct {
	StoredConcept
	Distance float32 `json:"distance"`
}
