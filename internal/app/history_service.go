package app

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/example/ngfc/internal/ports/primary"
	"github.com/example/ngfc/internal/ports/secondary"
)

// DefaultHistoryLimit bounds listings that do not set a limit.
const DefaultHistoryLimit = 20

// HistoryServiceImpl implements the HistoryService interface.
type HistoryServiceImpl struct {
	generations secondary.GenerationRepository
}

// NewHistoryService creates a new HistoryService with injected dependencies.
func NewHistoryService(generations secondary.GenerationRepository) *HistoryServiceImpl {
	return &HistoryServiceImpl{generations: generations}
}

// ListGenerations lists recorded command runs, newest first.
func (s *HistoryServiceImpl) ListGenerations(ctx context.Context, filters primary.GenerationFilters) ([]*primary.Generation, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	records, err := s.generations.List(ctx, secondary.GenerationFilters{
		Command: filters.Command,
		Limit:   limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list generations")
	}

	generations := make([]*primary.Generation, len(records))
	for i, r := range records {
		generations[i] = s.recordToGeneration(r)
	}
	return generations, nil
}

// GetGeneration retrieves one recorded command run.
func (s *HistoryServiceImpl) GetGeneration(ctx context.Context, id string) (*primary.Generation, error) {
	record, err := s.generations.GetByID(ctx, id)
	if errors.Is(err, secondary.ErrGenerationNotFound) {
		return nil, errors.WithHint(errors.Mark(err, primary.ErrGenerationNotFound),
			"run 'ngfc history' to list generation IDs")
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get generation %s", id)
	}
	return s.recordToGeneration(record), nil
}

func (s *HistoryServiceImpl) recordToGeneration(r *secondary.GenerationRecord) *primary.Generation {
	return &primary.Generation{
		ID:         r.ID,
		Command:    r.Command,
		Target:     r.Target,
		Files:      r.Files,
		ModulePath: r.ModulePath,
		Warnings:   r.Warnings,
		CreatedAt:  r.CreatedAt,
	}
}

// Ensure HistoryServiceImpl implements the interface
var _ primary.HistoryService = (*HistoryServiceImpl)(nil)
