package domain

import (
	"context"

	"github.com/google/uuid"
)

// ContextStore persists formal contexts.
type ContextStore interface {
	Create(ctx context.Context, fc *FormalContext) error
	GetByID(ctx context.Context, id uuid.UUID) (*FormalContext, error)
	List(ctx context.Context, limit int) ([]ContextSummary, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ConceptStore persists mined concepts and finds those closest to an
// attribute observation.
type ConceptStore interface {
	// ReplaceForContext drops any concepts stored for the context and
	// stores the given ones in a single transaction.
	ReplaceForContext(ctx context.Context, contextID uuid.UUID, concepts []StoredConcept) error
	GetByContext(ctx context.Context, contextID uuid.UUID) ([]StoredConcept, error)
	FindNearest(ctx context.Context, contextID uuid.UUID, intentVector []float32, limit int) ([]StoredConceptWithScore, error)
}
