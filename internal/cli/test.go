package cli

import (
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/example/ngfc/internal/ports/primary"
	"github.com/example/ngfc/internal/wire"
)

// UnitTestCmd returns the unit-test command
func UnitTestCmd() *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:   "unit-test FILE.ts",
		Short: "Create the unit test for a source file",
		Long: `Create <stem>.spec.ts next to FILE.ts from the template matching its exported class.
Components and directives that are not standalone are tested through the module that
declares them. A component test that uses a harness creates the harness first.

Examples:
  ngfc unit-test src/app/foo/foo.component.ts
  ngfc unit-test src/app/user.service.ts --open`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := absPath(args[0])
			if err != nil {
				return err
			}

			adapter, err := wire.TestAdapter()
			if err != nil {
				return err
			}
			_, err = adapter.UnitTest(cmd.Context(), primary.CreateTestRequest{SourcePath: source, Open: open})
			return err
		},
	}

	cmd.Flags().BoolVar(&open, "open", false, "Open the new test")
	return cmd
}

// HarnessCmd returns the harness command
func HarnessCmd() *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:   "harness FILE",
		Short: "Create the test harness for a component",
		Long: `Create <stem>.test.ts for the component FILE belongs to. FILE may be any of the
component's files (source, markup, stylesheet or spec). Components whose markup
projects content get the dynamic harness.

Examples:
  ngfc harness src/app/foo/foo.component.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := absPath(args[0])
			if err != nil {
				return err
			}

			adapter, err := wire.TestAdapter()
			if err != nil {
				return err
			}
			_, err = adapter.Harness(cmd.Context(), primary.CreateTestRequest{SourcePath: source, Open: open})
			return err
		},
	}

	cmd.Flags().BoolVar(&open, "open", false, "Open the new harness")
	return cmd
}

func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "invalid path %s", path)
	}
	return abs, nil
}
