// Package cli contains thin adapters translating CLI commands to service calls and
// printing their results.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"

	"github.com/example/ngfc/internal/core/scaffold"
	"github.com/example/ngfc/internal/ports/primary"
)

// ScaffoldAdapter translates the component/directive/module commands to ScaffoldService calls.
type ScaffoldAdapter struct {
	service primary.ScaffoldService
	out     io.Writer
}

// NewScaffoldAdapter creates a new ScaffoldAdapter with the given service.
func NewScaffoldAdapter(service primary.ScaffoldService, out io.Writer) *ScaffoldAdapter {
	return &ScaffoldAdapter{
		service: service,
		out:     out,
	}
}

// Create creates an artifact of the given kind and prints what was done.
func (a *ScaffoldAdapter) Create(ctx context.Context, kind string, req primary.CreateArtifactRequest) (*primary.CreateArtifactResponse, error) {
	var (
		resp *primary.CreateArtifactResponse
		err  error
	)
	switch kind {
	case scaffold.ArtifactComponent:
		resp, err = a.service.CreateComponent(ctx, req)
	case scaffold.ArtifactDirective:
		resp, err = a.service.CreateDirective(ctx, req)
	case scaffold.ArtifactModule:
		resp, err = a.service.CreateModule(ctx, req)
	default:
		return nil, errors.Newf("unknown artifact kind %q", kind)
	}
	if err != nil {
		return nil, err
	}

	if resp.DryRun {
		fmt.Fprintf(a.out, "Dry run: %s %s would be created\n", kind, resp.ClassName)
		for _, f := range resp.Files {
			fmt.Fprintf(a.out, "  %s %s\n", color.New(color.FgGreen).Sprint("CREATE"), displayPath(f))
		}
		fmt.Fprintln(a.out, "Nothing was written.")
		return resp, nil
	}

	fmt.Fprintf(a.out, "%s Created %s %s", color.New(color.FgGreen).Sprint("✓"), kind, resp.ClassName)
	if resp.Selector != "" {
		fmt.Fprintf(a.out, " (%s)", resp.Selector)
	}
	fmt.Fprintln(a.out)
	for _, f := range resp.Files {
		fmt.Fprintf(a.out, "  %s\n", displayPath(f))
	}
	if resp.ModulePath != "" {
		fmt.Fprintf(a.out, "  added to %s\n", resp.ModulePath)
	}
	printWarnings(a.out, resp.Warnings)

	return resp, nil
}

func displayPath(f primary.PlannedFile) string {
	if f.IsDir {
		return f.Path + "/"
	}
	return f.Path
}

func printWarnings(out io.Writer, warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(out, "%s\n", color.New(color.FgYellow).Sprint("! "+w))
	}
}
