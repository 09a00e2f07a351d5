// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/example/ngfc/internal/ports/secondary"
)

// GenerationRepository implements secondary.GenerationRepository with SQLite.
type GenerationRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewGenerationRepository creates a new SQLite generation repository.
func NewGenerationRepository(db *sql.DB) *GenerationRepository {
	return &GenerationRepository{db: db, now: time.Now}
}

// Create persists a new generation record, assigning ID and CreatedAt when unset.
func (r *GenerationRepository) Create(ctx context.Context, record *secondary.GenerationRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = r.now().UTC()
	}

	files, err := encodeList(record.Files)
	if err != nil {
		return errors.Wrap(err, "failed to encode files")
	}
	warnings, err := encodeList(record.Warnings)
	if err != nil {
		return errors.Wrap(err, "failed to encode warnings")
	}

	var modulePath sql.NullString
	if record.ModulePath != "" {
		modulePath = sql.NullString{String: record.ModulePath, Valid: true}
	}

	_, err = r.db.ExecContext(ctx,
		"INSERT INTO generations (id, command, target, files, module_path, warnings, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		record.ID, record.Command, record.Target, files, modulePath, warnings, record.CreatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "failed to create generation")
	}
	return nil
}

// GetByID retrieves a generation record by its ID.
func (r *GenerationRepository) GetByID(ctx context.Context, id string) (*secondary.GenerationRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, command, target, files, module_path, warnings, created_at FROM generations WHERE id = ?",
		id,
	)
	record, err := scanGeneration(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Mark(errors.Newf("generation %s not found", id), secondary.ErrGenerationNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get generation")
	}
	return record, nil
}

// List retrieves generation records matching the given filters, newest first.
func (r *GenerationRepository) List(ctx context.Context, filters secondary.GenerationFilters) ([]*secondary.GenerationRecord, error) {
	query := "SELECT id, command, target, files, module_path, warnings, created_at FROM generations WHERE 1=1"
	args := []any{}

	if filters.Command != "" {
		query += " AND command = ?"
		args = append(args, filters.Command)
	}

	query += " ORDER BY created_at DESC, rowid DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list generations")
	}
	defer rows.Close()

	var records []*secondary.GenerationRecord
	for rows.Next() {
		record, err := scanGeneration(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan generation")
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGeneration(s scanner) (*secondary.GenerationRecord, error) {
	var (
		record     secondary.GenerationRecord
		files      string
		warnings   string
		modulePath sql.NullString
		createdAt  time.Time
	)
	if err := s.Scan(&record.ID, &record.Command, &record.Target, &files, &modulePath, &warnings, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(files), &record.Files); err != nil {
		return nil, errors.Wrapf(err, "corrupt files column for %s", record.ID)
	}
	if err := json.Unmarshal([]byte(warnings), &record.Warnings); err != nil {
		return nil, errors.Wrapf(err, "corrupt warnings column for %s", record.ID)
	}
	record.ModulePath = modulePath.String
	record.CreatedAt = createdAt
	return &record, nil
}

func encodeList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	return string(b), err
}

// Ensure GenerationRepository implements the interface
var _ secondary.GenerationRepository = (*GenerationRepository)(nil)
