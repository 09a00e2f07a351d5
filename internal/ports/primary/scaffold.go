package primary

import "context"

// ScaffoldService defines the primary port for creating Angular artifacts.
type ScaffoldService interface {
	// CreateComponent creates <name>/<name>.component.{ts,html,style} in the target directory
	// and optionally adds the component to a module.
	CreateComponent(ctx context.Context, req CreateArtifactRequest) (*CreateArtifactResponse, error)

	// CreateDirective creates <name>.directive.ts in the target directory and optionally
	// adds the directive to a module.
	CreateDirective(ctx context.Context, req CreateArtifactRequest) (*CreateArtifactResponse, error)

	// CreateModule creates <name>/<name>.module.ts in the target directory.
	CreateModule(ctx context.Context, req CreateArtifactRequest) (*CreateArtifactResponse, error)
}

// CreateArtifactRequest contains parameters for creating an artifact.
type CreateArtifactRequest struct {
	TargetDir  string // Required, existing directory
	Name       string // Class name; prompted for when empty
	ModulePath string // Module to add the class to; offered as a choice when empty
	NoModule   bool   // Skip the module step
	DryRun     bool   // Plan only, write nothing
	Open       bool   // Open the main file afterwards
}

// CreateArtifactResponse contains the result of artifact creation.
type CreateArtifactResponse struct {
	ClassName  string
	Selector   string
	MainFile   string
	Files      []PlannedFile // Files written, or planned on a dry run
	ModulePath string        // Module that was edited, empty when none
	Warnings   []string
	DryRun     bool
}

// PlannedFile is a generated file at the port boundary.
type PlannedFile struct {
	Path    string
	Content string
	IsDir   bool
}
