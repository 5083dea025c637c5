package service

import (
	"context"
	"testing"
	"time"

	"github.com/Harshitk-cp/galois/internal/domain"
	"github.com/Harshitk-cp/galois/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockContextStore implements domain.ContextStore for testing.
type mockContextStore struct {
	contexts map[uuid.UUID]*domain.FormalContext
}

func newMockContextStore() *mockContextStore {
	return &mockContextStore{contexts: make(map[uuid.UUID]*domain.FormalContext)}
}

func (m *mockContextStore) Create(ctx context.Context, fc *domain.FormalContext) error {
	for _, existing := range m.contexts {
		if existing.Name == fc.Name {
			return store.ErrConflict
		}
	}
	fc.ID = uuid.New()
	fc.CreatedAt = time.Now()
	fc.UpdatedAt = fc.CreatedAt
	m.contexts[fc.ID] = fc
	return nil
}

func (m *mockContextStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.FormalContext, error) {
	fc, ok := m.contexts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return fc, nil
}

func (m *mockContextStore) List(ctx context.Context, limit int) ([]domain.ContextSummary, error) {
	var out []domain.ContextSummary
	for _, fc := range m.contexts {
		out = append(out, domain.ContextSummary{
			ID:             fc.ID,
			Name:           fc.Name,
			ObjectCount:    len(fc.Objects),
			AttributeCount: len(fc.AttributeNames()),
			CreatedAt:      fc.CreatedAt,
		})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *mockContextStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.contexts[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.contexts, id)
	return nil
}

func newTestContextService(limits Limits) *ContextService {
	return NewContextService(newMockContextStore(), limits, zap.NewNop())
}

func TestContextService_Create(t *testing.T) {
	s := newTestContextService(Limits{})
	fc := twoObjectContext()
	fc.ID = uuid.Nil

	require.NoError(t, s.Create(context.Background(), fc))
	assert.NotEqual(t, uuid.Nil, fc.ID)
}

func TestContextService_CreateDuplicate(t *testing.T) {
	s := newTestContextService(Limits{})
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, twoObjectContext()))
	err := s.Create(ctx, twoObjectContext())
	assert.ErrorIs(t, err, ErrContextConflict)
}

func TestContextService_CreateRejectsBadInput(t *testing.T) {
	s := newTestContextService(Limits{})
	ctx := context.Background()

	noName := twoObjectContext()
	noName.Name = "  "
	assert.ErrorIs(t, s.Create(ctx, noName), ErrContextNameMissing)

	dup := twoObjectContext()
	dup.Objects = append(dup.Objects, domain.Object{Name: "g1"})
	assert.ErrorIs(t, s.Create(ctx, dup), ErrInvalidInput)

	unnamed := twoObjectContext()
	unnamed.Objects[0].Name = ""
	assert.ErrorIs(t, s.Create(ctx, unnamed), ErrInvalidInput)

	emptyAttr := twoObjectContext()
	emptyAttr.Objects[1].Attributes = []string{"b", ""}
	assert.ErrorIs(t, s.Create(ctx, emptyAttr), ErrInvalidInput)
}

func TestContextService_Limits(t *testing.T) {
	ctx := context.Background()

	err := newTestContextService(Limits{MaxObjects: 1}).Create(ctx, twoObjectContext())
	assert.ErrorIs(t, err, ErrContextTooLarge)

	err = newTestContextService(Limits{MaxAttributes: 2}).Create(ctx, twoObjectContext())
	assert.ErrorIs(t, err, ErrContextTooLarge)

	assert.NoError(t, newTestContextService(Limits{MaxObjects: 2, MaxAttributes: 3}).Create(ctx, twoObjectContext()))
}

func TestContextService_GetAndDelete(t *testing.T) {
	s := newTestContextService(Limits{})
	ctx := context.Background()

	fc := twoObjectContext()
	require.NoError(t, s.Create(ctx, fc))

	found, err := s.GetByID(ctx, fc.ID)
	require.NoError(t, err)
	assert.Equal(t, "two-objects", found.Name)

	list, err := s.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].ObjectCount)
	assert.Equal(t, 3, list[0].AttributeCount)

	require.NoError(t, s.Delete(ctx, fc.ID))
	_, err = s.GetByID(ctx, fc.ID)
	assert.ErrorIs(t, err, ErrContextNotFound)
	assert.ErrorIs(t, s.Delete(ctx, fc.ID), ErrContextNotFound)
}
