package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/ngfc/internal/ports/primary"
	"github.com/example/ngfc/internal/wire"
)

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	var filters primary.GenerationFilters

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent generations in this workspace",
		Long: `List the files ngfc created in this workspace, newest first.

Examples:
  ngfc history
  ngfc history --command component --limit 5
  ngfc history show <id>`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.HistoryAdapter()
			if err != nil {
				return err
			}
			_, err = adapter.List(cmd.Context(), filters)
			return err
		},
	}

	cmd.Flags().IntVar(&filters.Limit, "limit", 0, "Maximum number of entries (default 20)")
	cmd.Flags().StringVar(&filters.Command, "command", "", "Only show one command (component, directive, module, unit-test, harness)")
	cmd.AddCommand(historyShowCmd())
	return cmd
}

func historyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [generation-id]",
		Short: "Show one generation and the files it created",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.HistoryAdapter()
			if err != nil {
				return err
			}
			_, err = adapter.Show(cmd.Context(), args[0])
			return err
		},
	}
}
