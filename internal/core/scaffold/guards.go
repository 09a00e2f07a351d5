// Package scaffold contains the pure logic for creating Angular artifacts.
// Guards evaluate preconditions; planners describe the files to create as effects.
package scaffold

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Artifact kinds that can be scaffolded.
const (
	ArtifactComponent = "component"
	ArtifactDirective = "directive"
	ArtifactModule    = "module"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return errors.New(r.Reason)
}

// TargetContext describes the directory a command was invoked on.
type TargetContext struct {
	Kind   string
	Path   string
	Exists bool
	IsDir  bool
}

// CanUseTarget evaluates whether an artifact can be created inside a target.
// Rules:
// - Target must be given
// - Target must be an existing directory
func CanUseTarget(ctx TargetContext) GuardResult {
	if ctx.Path == "" {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("no folder selected to contain new %s", ctx.Kind),
		}
	}

	if !ctx.Exists || !ctx.IsDir {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%s is not a folder; select a folder to contain the new %s", ctx.Path, ctx.Kind),
		}
	}

	return GuardResult{Allowed: true}
}

// CreateArtifactContext provides context for artifact creation guards.
type CreateArtifactContext struct {
	Path       string // Folder for components and modules, file for directives
	PathExists bool
}

// CanCreateArtifact evaluates whether an artifact can be created.
// Rules:
// - Its folder (or file) must not exist yet
func CanCreateArtifact(ctx CreateArtifactContext) GuardResult {
	if ctx.PathExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("file or folder with name %s already exists", ctx.Path),
		}
	}

	return GuardResult{Allowed: true}
}
