package domain

// SortKey selects the column concepts are ordered by, descending.
type SortKey string

const (
	SortNone           SortKey = ""
	SortExtentSize     SortKey = "extent.size"
	SortIntentSize     SortKey = "intent.size"
	SortSupport        SortKey = "support"
	SortDeltaStability SortKey = "delta_stability"
)

func ValidSortKey(s string) bool {
	switch SortKey(s) {
	case SortNone, SortExtentSize, SortIntentSize, SortSupport, SortDeltaStability:
		return true
	}
	return false
}

// MinSupport is a support threshold given either as an absolute object
// count or as a fraction of all objects. At most one should be set.
type MinSupport struct {
	Count    *int     `json:"count,omitempty"`
	Fraction *float64 `json:"fraction,omitempty"`
}

// IsZero reports whether no threshold was given.
func (m MinSupport) IsZero() bool {
	return m.Count == nil && m.Fraction == nil
}

// ConceptQuery selects and orders concepts after mining.
type ConceptQuery struct {
	MinSupport        MinSupport `json:"min_support"`
	MinDeltaStability int        `json:"min_delta_stability"`
	// NStableConcepts keeps the N most stable concepts; zero keeps all.
	NStableConcepts int     `json:"n_stable_concepts"`
	SortBy          SortKey `json:"sort_by_descending"`
}

// ImplicationQuery selects an implication basis and filters it.
type ImplicationQuery struct {
	Basis             string     `json:"basis"`
	MinSupport        MinSupport `json:"min_support"`
	MinDeltaStability int        `json:"min_delta_stability"`
	// Unit splits each conclusion into one implication per attribute.
	Unit bool `json:"unit_base"`
}

// InferenceResult lists the attributes forced by an observation.
type InferenceResult struct {
	Observed []string `json:"observed"`
	Implied  []string `json:"implied"`
	Closure  []string `json:"closure"`
}
