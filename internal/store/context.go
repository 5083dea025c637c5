package store

import (
	"context"
	"errors"

	"github.com/Harshitk-cp/galois/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContextStore struct {
	db *pgxpool.Pool
}

func NewContextStore(db *pgxpool.Pool) *ContextStore {
	return &ContextStore{db: db}
}

func (s *ContextStore) Create(ctx context.Context, fc *domain.FormalContext) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO formal_contexts (name, objects, object_count, attribute_count, metadata)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		fc.Name, fc.Objects, len(fc.Objects), len(fc.AttributeNames()), fc.Metadata,
	).Scan(&fc.ID, &fc.CreatedAt, &fc.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (s *ContextStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.FormalContext, error) {
	fc := &domain.FormalContext{}
	err := s.db.QueryRow(ctx,
		`SELECT id, name, objects, metadata, created_at, updated_at
		 FROM formal_contexts WHERE id = $1`,
		id,
	).Scan(&fc.ID, &fc.Name, &fc.Objects, &fc.Metadata, &fc.CreatedAt, &fc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return fc, nil
}

func (s *ContextStore) List(ctx context.Context, limit int) ([]domain.ContextSummary, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, name, object_count, attribute_count, created_at
		 FROM formal_contexts
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ContextSummary
	for rows.Next() {
		var c domain.ContextSummary
		if err := rows.Scan(&c.ID, &c.Name, &c.ObjectCount, &c.AttributeCount, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *ContextStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM formal_contexts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
