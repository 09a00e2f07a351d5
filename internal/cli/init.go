package cli

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/ngfc/internal/config"
	"github.com/example/ngfc/internal/db"
	"github.com/example/ngfc/internal/ports/primary"
	"github.com/example/ngfc/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default workspace configuration",
		Long: `Create .ngfc/config.yaml with the default settings and the history database in the
workspace root.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := wire.PrimaryRoot()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			path := config.Path(root)
			if _, err := os.Stat(path); err == nil && !force {
				return errors.WithHint(
					errors.Mark(errors.Newf("%s already exists", path), primary.ErrAlreadyExists),
					"pass --force to overwrite it with the defaults")
			}
			if err := config.Save(root, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s Wrote %s\n", color.New(color.FgGreen).Sprint("✓"), path)

			database, err := db.Open(db.PathFor(root))
			if err != nil {
				return errors.Wrap(err, "failed to initialize history database")
			}
			defer database.Close()
			fmt.Fprintf(out, "%s History database at %s\n", color.New(color.FgGreen).Sprint("✓"), db.PathFor(root))

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintln(out, "  set prefix in the config to your selector prefix, e.g. app")
			fmt.Fprintln(out, "  ngfc component src/app --name FooBarComponent")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration")
	return cmd
}
