package primary

import (
	"context"
	"time"
)

// HistoryService defines the primary port for reading the generation history.
type HistoryService interface {
	// ListGenerations lists recorded command runs, newest first.
	ListGenerations(ctx context.Context, filters GenerationFilters) ([]*Generation, error)

	// GetGeneration retrieves one recorded command run.
	GetGeneration(ctx context.Context, id string) (*Generation, error)
}

// GenerationFilters contains filter options for listing generations.
type GenerationFilters struct {
	Command string
	Limit   int
}

// Generation represents a recorded command run at the port boundary.
type Generation struct {
	ID         string
	Command    string
	Target     string
	Files      []string
	ModulePath string
	Warnings   []string
	CreatedAt  time.Time
}
