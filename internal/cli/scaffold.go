package cli

import (
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/example/ngfc/internal/core/scaffold"
	"github.com/example/ngfc/internal/ports/primary"
	"github.com/example/ngfc/internal/wire"
)

// ComponentCmd returns the component command
func ComponentCmd() *cobra.Command {
	return artifactCmd(scaffold.ArtifactComponent,
		"Create a component folder with source, markup and stylesheet",
		`Create <name>/<name>.component.{ts,html,<style>} inside FOLDER and offer to add the
component to a module found in FOLDER or one of its parents.

Examples:
  ngfc component src/app --name FooBarComponent
  ngfc component src/app/shared --name AppTooltipComponent --module src/app/shared/shared.module.ts
  ngfc component src/app --name FooComponent --dry-run`)
}

// DirectiveCmd returns the directive command
func DirectiveCmd() *cobra.Command {
	return artifactCmd(scaffold.ArtifactDirective,
		"Create a directive file",
		`Create <name>.directive.ts inside FOLDER and offer to add the directive to a module
found in FOLDER or one of its parents.

Examples:
  ngfc directive src/app --name AutoFocusDirective
  ngfc directive src/app --name AutoFocusDirective --no-module`)
}

// ModuleCmd returns the module command
func ModuleCmd() *cobra.Command {
	return artifactCmd(scaffold.ArtifactModule,
		"Create a module folder",
		`Create <name>/<name>.module.ts inside FOLDER with an empty NgModule.

Examples:
  ngfc module src/app --name SharedModule`)
}

func artifactCmd(kind, short, long string) *cobra.Command {
	var req primary.CreateArtifactRequest

	cmd := &cobra.Command{
		Use:   kind + " FOLDER",
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := filepath.Abs(args[0])
			if err != nil {
				return errors.Wrapf(err, "invalid folder %s", args[0])
			}
			req.TargetDir = target
			if req.ModulePath != "" {
				modulePath, err := filepath.Abs(req.ModulePath)
				if err != nil {
					return errors.Wrapf(err, "invalid module path %s", req.ModulePath)
				}
				req.ModulePath = modulePath
			}

			adapter, err := wire.ScaffoldAdapter()
			if err != nil {
				return err
			}
			_, err = adapter.Create(cmd.Context(), kind, req)
			return err
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Class name (prompted for when omitted)")
	cmd.Flags().BoolVar(&req.Open, "open", false, "Open the main file (tmux window with $EDITOR inside tmux)")
	cmd.Flags().BoolVar(&req.DryRun, "dry-run", false, "Show the files that would be created without writing them")
	if kind != scaffold.ArtifactModule {
		cmd.Flags().StringVar(&req.ModulePath, "module", "", "Module file to add the class to (skips the module prompt)")
		cmd.Flags().BoolVar(&req.NoModule, "no-module", false, "Do not add the class to a module")
		cmd.MarkFlagsMutuallyExclusive("module", "no-module")
	}

	return cmd
}
