// Package app contains the application layer - service implementations and effect execution.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/example/ngfc/internal/core/effects"
	"github.com/example/ngfc/internal/ports/primary"
	"github.com/example/ngfc/internal/ports/secondary"
)

// Persisted entities and operations understood by the executor.
const (
	EntityGeneration = "generation"
	OpCreate         = "create"
)

// EffectExecutor interprets and executes effects.
// This is the "Imperative Shell" - the only place I/O happens.
type EffectExecutor interface {
	Execute(ctx context.Context, effs []effects.Effect) error
}

// DefaultEffectExecutor implements EffectExecutor on the secondary ports.
type DefaultEffectExecutor struct {
	workspace   secondary.WorkspaceAdapter
	generations secondary.GenerationRepository
	opener      secondary.Opener
	logger      *zap.SugaredLogger
}

// NewEffectExecutor creates a new DefaultEffectExecutor. generations and opener may be nil,
// in which case persist and open effects are skipped.
func NewEffectExecutor(
	workspace secondary.WorkspaceAdapter,
	generations secondary.GenerationRepository,
	opener secondary.Opener,
	logger *zap.SugaredLogger,
) *DefaultEffectExecutor {
	return &DefaultEffectExecutor{
		workspace:   workspace,
		generations: generations,
		opener:      opener,
		logger:      logger,
	}
}

// Execute processes a slice of effects in sequence and stops at the first failure.
func (e *DefaultEffectExecutor) Execute(ctx context.Context, effs []effects.Effect) error {
	for _, eff := range effs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.executeOne(ctx, eff); err != nil {
			return errors.Wrapf(err, "failed to execute %s effect", eff.EffectType())
		}
	}
	return nil
}

func (e *DefaultEffectExecutor) executeOne(ctx context.Context, eff effects.Effect) error {
	switch typed := eff.(type) {
	case effects.FileEffect:
		return e.executeFile(ctx, typed)
	case effects.PersistEffect:
		e.executePersist(ctx, typed)
		return nil
	case effects.OpenEffect:
		if e.opener == nil {
			return nil
		}
		return e.opener.Open(ctx, typed.Path)
	default:
		return errors.Newf("unknown effect type: %T", eff)
	}
}

func (e *DefaultEffectExecutor) executeFile(ctx context.Context, eff effects.FileEffect) error {
	var err error
	switch eff.Operation {
	case effects.OpMkdir:
		err = e.workspace.CreateDirectory(ctx, eff.Path)
	case effects.OpWrite:
		err = e.workspace.CreateFile(ctx, eff.Path, eff.Content)
	default:
		return errors.Newf("unknown file operation: %s", eff.Operation)
	}

	// The existence checks of the guards are only an early exit; a failed exclusive
	// create is what decides a conflict.
	if errors.Is(err, os.ErrExist) {
		return errors.Mark(errors.Wrapf(err, "%s already exists", eff.Path), primary.ErrAlreadyExists)
	}
	if err == nil {
		e.logger.Debugw("created", "path", eff.Path, "op", eff.Operation)
	}
	return err
}

// executePersist records history. Failures are logged and never fail the command.
func (e *DefaultEffectExecutor) executePersist(ctx context.Context, eff effects.PersistEffect) {
	if e.generations == nil {
		return
	}
	if eff.Entity != EntityGeneration || eff.Operation != OpCreate {
		e.logger.Warnw("unknown persist effect", "entity", eff.Entity, "operation", eff.Operation)
		return
	}
	record, ok := eff.Data.(*secondary.GenerationRecord)
	if !ok {
		e.logger.Warnw("invalid generation data", "type", fmt.Sprintf("%T", eff.Data))
		return
	}
	if err := e.generations.Create(ctx, record); err != nil {
		e.logger.Warnw("failed to record generation", "command", record.Command, "error", err)
	}
}
