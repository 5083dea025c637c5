package store

import (
	"context"

	"github.com/Harshitk-cp/galois/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"
)

type ConceptStore struct {
	db *pgxpool.Pool
}

func NewConceptStore(db *pgxpool.Pool) *ConceptStore {
	return &ConceptStore{db: db}
}

func (s *ConceptStore) ReplaceForContext(ctx context.Context, contextID uuid.UUID, concepts []domain.StoredConcept) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM concepts WHERE context_id = $1`, contextID); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for i := range concepts {
		c := &concepts[i]
		c.ContextID = contextID
		batch.Queue(
			`INSERT INTO concepts (context_id, idx, intent, extent, support, delta_stability, intent_vec)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING id, created_at`,
			contextID, c.Index, c.Intent, c.Extent, c.Support, c.DeltaStability, pgvector.NewVector(c.IntentVector),
		).QueryRow(func(row pgx.Row) error {
			return row.Scan(&c.ID, &c.CreatedAt)
		})
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *ConceptStore) GetByContext(ctx context.Context, contextID uuid.UUID) ([]domain.StoredConcept, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, context_id, idx, intent, extent, support, delta_stability, intent_vec, created_at
		 FROM concepts WHERE context_id = $1
		 ORDER BY idx`,
		contextID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.StoredConcept
	for rows.Next() {
		c, err := scanConcept(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// FindNearest ranks the stored concepts of a context by Euclidean distance
// between their 0/1 intent vector and the query vector.
func (s *ConceptStore) FindNearest(ctx context.Context, contextID uuid.UUID, intentVector []float32, limit int) ([]domain.StoredConceptWithScore, error) {
	if limit <= 0 {
		limit = 5
	}
	vec := pgvector.NewVector(intentVector)

	rows, err := s.db.Query(ctx,
		`SELECT id, context_id, idx, intent, extent, support, delta_stability, intent_vec, created_at,
		        intent_vec <-> $2 AS distance
		 FROM concepts
		 WHERE context_id = $1
		 ORDER BY intent_vec <-> $2, idx
		 LIMIT $3`,
		contextID, vec, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.StoredConceptWithScore
	for rows.Next() {
		var c domain.StoredConceptWithScore
		var v pgvector.Vector
		if err := rows.Scan(&c.ID, &c.ContextID, &c.Index, &c.Intent, &c.Extent, &c.Support, &c.DeltaStability, &v, &c.CreatedAt, &c.Distance); err != nil {
			return nil, err
		}
		c.IntentVector = v.Slice()
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanConcept(rows pgx.Rows) (domain.StoredConcept, error) {
	var c domain.StoredConcept
	var v pgvector.Vector
	if err := rows.Scan(&c.ID, &c.ContextID, &c.Index, &c.Intent, &c.Extent, &c.Support, &c.DeltaStability, &v, &c.CreatedAt); err != nil {
		return c, err
	}
	c.IntentVector = v.Slice()
	return c, nil
}
