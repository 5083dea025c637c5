package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Harshitk-cp/galois/internal/domain"
	"github.com/Harshitk-cp/galois/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrContextNotFound    = errors.New("context not found")
	ErrContextConflict    = errors.New("context with this name already exists")
	ErrContextNameMissing = errors.New("name is required")
	ErrContextTooLarge    = errors.New("context exceeds configured size limits")
)

// Limits bounds the size of contexts accepted by ContextService.
// Zero disables a bound.
type Limits struct {
	MaxObjects    int
	MaxAttributes int
}

type ContextService struct {
	store  domain.ContextStore
	limits Limits
	logger *zap.Logger
}

func NewContextService(s domain.ContextStore, limits Limits, logger *zap.Logger) *ContextService {
	return &ContextService{store: s, limits: limits, logger: logger}
}

// Validate checks object names and size limits without storing anything.
func (s *ContextService) Validate(fc *domain.FormalContext) error {
	seen := make(map[string]struct{}, len(fc.Objects))
	for i, o := range fc.Objects {
		if strings.TrimSpace(o.Name) == "" {
			return fmt.Errorf("%w: object %d has no name", ErrInvalidInput, i)
		}
		if _, dup := seen[o.Name]; dup {
			return fmt.Errorf("%w: duplicate object %q", ErrInvalidInput, o.Name)
		}
		seen[o.Name] = struct{}{}
		for _, a := range o.Attributes {
			if strings.TrimSpace(a) == "" {
				return fmt.Errorf("%w: object %q has an empty attribute name", ErrInvalidInput, o.Name)
			}
		}
	}

	if s.limits.MaxObjects > 0 && len(fc.Objects) > s.limits.MaxObjects {
		return fmt.Errorf("%w: %d objects, limit is %d", ErrContextTooLarge, len(fc.Objects), s.limits.MaxObjects)
	}
	if n := len(fc.AttributeNames()); s.limits.MaxAttributes > 0 && n > s.limits.MaxAttributes {
		return fmt.Errorf("%w: %d attributes, limit is %d", ErrContextTooLarge, n, s.limits.MaxAttributes)
	}
	return nil
}

func (s *ContextService) Create(ctx context.Context, fc *domain.FormalContext) error {
	if strings.TrimSpace(fc.Name) == "" {
		return ErrContextNameMissing
	}
	if err := s.Validate(fc); err != nil {
		return err
	}

	if err := s.store.Create(ctx, fc); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return ErrContextConflict
		}
		return err
	}

	s.logger.Info("context created",
		zap.String("context_id", fc.ID.String()),
		zap.String("name", fc.Name),
		zap.Int("objects", len(fc.Objects)),
	)
	return nil
}

func (s *ContextService) GetByID(ctx context.Context, id uuid.UUID) (*domain.FormalContext, error) {
	fc, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrContextNotFound
		}
		return nil, err
	}
	return fc, nil
}

func (s *ContextService) List(ctx context.Context, limit int) ([]domain.ContextSummary, error) {
	return s.store.List(ctx, limit)
}

func (s *ContextService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrContextNotFound
		}
		return err
	}
	return nil
}
