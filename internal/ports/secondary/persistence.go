package secondary

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
)

// ErrGenerationNotFound is returned by GetByID for an unknown ID.
var ErrGenerationNotFound = errors.New("generation not found")

// GenerationRepository defines the secondary port for the generation history.
type GenerationRepository interface {
	// Create persists a new generation record. An empty ID is assigned by the repository.
	Create(ctx context.Context, record *GenerationRecord) error

	// GetByID retrieves a generation record by its ID. It fails with an error matching
	// ErrGenerationNotFound when no record has that ID.
	GetByID(ctx context.Context, id string) (*GenerationRecord, error)

	// List retrieves the most recent records first.
	List(ctx context.Context, filters GenerationFilters) ([]*GenerationRecord, error)
}

// GenerationRecord represents one command run as stored in persistence.
type GenerationRecord struct {
	ID         string
	Command    string // e.g. "component", "unit-test"
	Target     string // directory or source file the command ran on
	Files      []string
	ModulePath string // module file that was edited, if any
	Warnings   []string
	CreatedAt  time.Time
}

// GenerationFilters contains filter options for querying generation records.
type GenerationFilters struct {
	Command string
	Limit   int
}
