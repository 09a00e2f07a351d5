package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/example/ngfc/internal/ports/primary"
)

// HistoryAdapter prints the generation history.
type HistoryAdapter struct {
	service primary.HistoryService
	out     io.Writer
}

// NewHistoryAdapter creates a new HistoryAdapter with the given service.
func NewHistoryAdapter(service primary.HistoryService, out io.Writer) *HistoryAdapter {
	return &HistoryAdapter{
		service: service,
		out:     out,
	}
}

// Show prints one generation with every file it created.
func (a *HistoryAdapter) Show(ctx context.Context, id string) (*primary.Generation, error) {
	g, err := a.service.GetGeneration(ctx, id)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "ID:      %s\n", g.ID)
	fmt.Fprintf(a.out, "When:    %s\n", g.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(a.out, "Command: %s\n", g.Command)
	fmt.Fprintf(a.out, "Target:  %s\n", g.Target)
	if g.ModulePath != "" {
		fmt.Fprintf(a.out, "Module:  %s\n", g.ModulePath)
	}
	if len(g.Files) > 0 {
		fmt.Fprintln(a.out, "Files:")
		for _, f := range g.Files {
			fmt.Fprintf(a.out, "  %s\n", f)
		}
	}
	if len(g.Warnings) > 0 {
		fmt.Fprintln(a.out, "Warnings:")
		for _, w := range g.Warnings {
			fmt.Fprintf(a.out, "  %s\n", w)
		}
	}
	return g, nil
}

// List lists generations, newest first.
func (a *HistoryAdapter) List(ctx context.Context, filters primary.GenerationFilters) ([]*primary.Generation, error) {
	generations, err := a.service.ListGenerations(ctx, filters)
	if err != nil {
		return nil, err
	}

	if len(generations) == 0 {
		fmt.Fprintln(a.out, "No generations recorded.")
		return generations, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "WHEN\tCOMMAND\tTARGET\tFILES\tMODULE")
	fmt.Fprintln(w, "----\t-------\t------\t-----\t------")

	for _, g := range generations {
		module := g.ModulePath
		if module == "" {
			module = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			g.CreatedAt.Local().Format("2006-01-02 15:04"),
			g.Command,
			g.Target,
			len(g.Files),
			module,
		)
	}
	w.Flush()

	for _, g := range generations {
		if len(g.Warnings) > 0 {
			fmt.Fprintf(a.out, "\n%s %s:\n", g.Command, g.Target)
			fmt.Fprintf(a.out, "  %s\n", strings.Join(g.Warnings, "\n  "))
		}
	}
	return generations, nil
}
