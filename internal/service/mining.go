package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Harshitk-cp/galois/internal/domain"
	"github.com/Harshitk-cp/galois/internal/fca"
	"go.uber.org/zap"
)

var (
	// ErrInvalidInput is returned for malformed relations and for queries
	// that reference unknown attributes or carry bad thresholds.
	ErrInvalidInput = fca.ErrInvalidInput

	ErrNoObservation = errors.New("observed attributes are required")
)

// DefaultNearestLimit is used when a nearest-concept query gives no limit.
const DefaultNearestLimit = 5

type MiningService struct {
	conceptStore domain.ConceptStore
	opts         fca.Options
	logger       *zap.Logger
}

func NewMiningService(cs domain.ConceptStore, opts fca.Options, logger *zap.Logger) *MiningService {
	return &MiningService{
		conceptStore: cs,
		opts:         opts,
		logger:       logger,
	}
}

// mine encodes fc and runs the full pipeline over it.
func (s *MiningService) mine(ctx context.Context, op string, fc *domain.FormalContext) (*Encoded, *fca.Result, error) {
	start := time.Now()
	enc, err := Encode(fc)
	if err != nil {
		miningErrors.WithLabelValues(op).Inc()
		return nil, nil, err
	}

	res, err := fca.Mine(ctx, enc.Context, s.opts)
	elapsed := time.Since(start)
	miningDuration.WithLabelValues(op).Observe(elapsed.Seconds())
	if err != nil {
		miningErrors.WithLabelValues(op).Inc()
		if fca.IsInvariantViolation(err) {
			s.logger.Error("mining invariant violated",
				zap.String("operation", op),
				zap.String("context", fc.Name),
				zap.Error(err),
			)
		}
		return nil, nil, err
	}
	conceptsMined.Observe(float64(res.Lattice.Len()))

	s.logger.Debug("context mined",
		zap.String("operation", op),
		zap.String("context", fc.Name),
		zap.Int("objects", enc.Context.NumObjects()),
		zap.Int("attributes", enc.Context.NumAttributes()),
		zap.Int("concepts", res.Lattice.Len()),
		zap.Duration("duration", elapsed),
	)
	return enc, res, nil
}

// MineConcepts returns the concepts of fc that pass q. Relation indices in
// the records refer to positions in the returned slice.
func (s *MiningService) MineConcepts(ctx context.Context, fc *domain.FormalContext, q domain.ConceptQuery) ([]domain.ConceptRecord, error) {
	enc, res, err := s.mine(ctx, "concepts", fc)
	if err != nil {
		return nil, err
	}
	minSupport, err := supportThreshold(q.MinSupport, enc.Context.NumObjects())
	if err != nil {
		return nil, err
	}
	keep, err := selectConcepts(res.Lattice, q, minSupport)
	if err != nil {
		return nil, err
	}

	position := make(map[int]int, len(keep))
	for p, i := range keep {
		position[i] = p
	}

	records := make([]domain.ConceptRecord, len(keep))
	for p, i := range keep {
		c := &res.Lattice.Concepts[i]
		records[p] = domain.ConceptRecord{
			Index:          p,
			Extent:         enc.ObjectNames(c.Extent),
			Intent:         enc.AttributeNames(c.Intent),
			NewExtent:      enc.ObjectNames(c.NewExtent),
			NewIntent:      enc.AttributeNames(c.NewIntent),
			Support:        c.Support,
			DeltaStability: c.DeltaStability,
			Keys:           enc.attributeLists(c.Keys),
			Passkeys:       enc.attributeLists(c.Passkeys),
			ProperPremises: enc.attributeLists(c.ProperPremises),
			PseudoIntents:  enc.attributeLists(c.PseudoIntents),
			Previous:       renumber(c.Previous, position),
			Next:           renumber(c.Next, position),
			SubConcepts:    renumber(c.SubConcepts, position),
			SuperConcepts:  renumber(c.SuperConcepts, position),
		}
	}
	return records, nil
}

// MineImplications returns the requested basis of fc after filtering.
func (s *MiningService) MineImplications(ctx context.Context, fc *domain.FormalContext, q domain.ImplicationQuery) ([]domain.ImplicationRecord, error) {
	kind, err := fca.ParseBasisKind(q.Basis)
	if err != nil {
		return nil, err
	}
	if q.MinDeltaStability < 0 {
		return nil, fmt.Errorf("%w: min_delta_stability must not be negative", ErrInvalidInput)
	}
	enc, res, err := s.mine(ctx, "implications", fc)
	if err != nil {
		return nil, err
	}
	minSupport, err := supportThreshold(q.MinSupport, enc.Context.NumObjects())
	if err != nil {
		return nil, err
	}

	impls := filterImplications(res.Lattice, res.Basis(kind), q.MinDeltaStability, minSupport)
	if q.Unit {
		impls = fca.SplitUnit(impls)
	}
	implicationsMined.WithLabelValues(kind.String()).Add(float64(len(impls)))

	records := make([]domain.ImplicationRecord, len(impls))
	for i, im := range impls {
		records[i] = domain.ImplicationRecord{
			Premise:        enc.AttributeNames(im.Premise),
			Conclusion:     enc.AttributeNames(im.Conclusion),
			ConclusionFull: enc.AttributeNames(im.ConclusionFull),
			Extent:         enc.ObjectNames(im.Extent),
			Support:        im.Support,
		}
		if im.Concept >= 0 {
			records[i].DeltaStability = res.Lattice.Concepts[im.Concept].DeltaStability
		}
	}
	return records, nil
}

// MineDescriptions classifies every attribute subset of fc whose support
// reaches minSupport.
func (s *MiningService) MineDescriptions(ctx context.Context, fc *domain.FormalContext, ms domain.MinSupport) ([]domain.DescriptionRecord, error) {
	enc, res, err := s.mine(ctx, "descriptions", fc)
	if err != nil {
		return nil, err
	}
	minSupport, err := supportThreshold(ms, enc.Context.NumObjects())
	if err != nil {
		return nil, err
	}
	descs, err := fca.Describe(enc.Context, res)
	if err != nil {
		return nil, err
	}

	records := make([]domain.DescriptionRecord, 0, len(descs))
	for _, d := range descs {
		if d.Support < minSupport {
			continue
		}
		records = append(records, domain.DescriptionRecord{
			Description:     enc.AttributeNames(d.Attributes),
			Extent:          enc.ObjectNames(d.Extent),
			Intent:          enc.AttributeNames(d.Intent),
			Support:         d.Support,
			DeltaStability:  d.DeltaStability,
			IsClosed:        d.IsClosed,
			IsKey:           d.IsKey,
			IsPasskey:       d.IsPasskey,
			IsProperPremise: d.IsProperPremise,
			IsPseudoIntent:  d.IsPseudoIntent,
		})
	}
	return records, nil
}

// Infer saturates the observed attributes under the chosen basis of fc.
func (s *MiningService) Infer(ctx context.Context, fc *domain.FormalContext, observed []string, basis string) (*domain.InferenceResult, error) {
	kind, err := fca.ParseBasisKind(basis)
	if err != nil {
		return nil, err
	}
	enc, res, err := s.mine(ctx, "infer", fc)
	if err != nil {
		return nil, err
	}
	obs, err := enc.AttributeSet(observed)
	if err != nil {
		return nil, err
	}
	closure, err := enc.Context.Infer(obs, res.Basis(kind))
	if err != nil {
		return nil, err
	}
	return &domain.InferenceResult{
		Observed: enc.AttributeNames(obs),
		Implied:  enc.AttributeNames(closure.Difference(obs)),
		Closure:  enc.AttributeNames(closure),
	}, nil
}

// Snapshot mines fc and replaces its stored concepts with the result.
func (s *MiningService) Snapshot(ctx context.Context, fc *domain.FormalContext) ([]domain.StoredConcept, error) {
	enc, res, err := s.mine(ctx, "snapshot", fc)
	if err != nil {
		return nil, err
	}

	stored := make([]domain.StoredConcept, res.Lattice.Len())
	for i, c := range res.Lattice.Concepts {
		stored[i] = domain.StoredConcept{
			ContextID:      fc.ID,
			Index:          i,
			Intent:         enc.AttributeNames(c.Intent),
			Extent:         enc.ObjectNames(c.Extent),
			Support:        c.Support,
			DeltaStability: c.DeltaStability,
			IntentVector:   enc.IntentVector(c.Intent),
		}
	}
	if err := s.conceptStore.ReplaceForContext(ctx, fc.ID, stored); err != nil {
		s.logger.Error("failed to store concepts", zap.String("context_id", fc.ID.String()), zap.Error(err))
		return nil, err
	}

	s.logger.Info("concepts stored",
		zap.String("context_id", fc.ID.String()),
		zap.Int("count", len(stored)),
	)
	return stored, nil
}

// Nearest returns the stored concepts of fc whose intents are closest to the
// observed attributes. Snapshot must have been taken first.
func (s *MiningService) Nearest(ctx context.Context, fc *domain.FormalContext, observed []string, limit int) ([]domain.StoredConceptWithScore, error) {
	if len(observed) == 0 {
		return nil, ErrNoObservation
	}
	if limit <= 0 {
		limit = DefaultNearestLimit
	}
	enc, err := Encode(fc)
	if err != nil {
		return nil, err
	}
	obs, err := enc.AttributeSet(observed)
	if err != nil {
		return nil, err
	}
	return s.conceptStore.FindNearest(ctx, fc.ID, enc.IntentVector(obs), limit)
}
