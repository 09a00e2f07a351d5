// Package cli defines the ngfc cobra commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/ngfc/internal/version"
	"github.com/example/ngfc/internal/wire"
)

// RootCmd returns the ngfc root command with all subcommands attached.
func RootCmd() *cobra.Command {
	var (
		workspaces []string
		verbosity  int
		jsonLogs   bool
	)

	cmd := &cobra.Command{
		Use:     "ngfc",
		Short:   "ngfc - Angular file creator",
		Version: version.String(),
		Long: `ngfc creates Angular components, directives and modules, registers them in the
nearest module, and writes unit tests and test harnesses for existing source files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			wire.Configure(wire.Options{
				Workspaces: workspaces,
				Verbosity:  verbosity,
				JSONLogs:   jsonLogs,
				Out:        cmd.OutOrStdout(),
				Err:        cmd.ErrOrStderr(),
			})
		},
	}

	cmd.PersistentFlags().StringArrayVar(&workspaces, "workspace", nil, "Workspace root (repeatable; default: nearest folder with .ngfc/ or angular.json)")
	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Log more detail (-v info, -vv debug)")
	cmd.PersistentFlags().BoolVar(&jsonLogs, "log-json", false, "Write logs as JSON lines")

	// Scaffolding
	cmd.AddCommand(ComponentCmd())
	cmd.AddCommand(DirectiveCmd())
	cmd.AddCommand(ModuleCmd())

	// Tests
	cmd.AddCommand(UnitTestCmd())
	cmd.AddCommand(HarnessCmd())

	// Workspace
	cmd.AddCommand(InitCmd())
	cmd.AddCommand(HistoryCmd())

	return cmd
}
