package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"

	"github.com/example/ngfc/internal/cli"
	"github.com/example/ngfc/internal/wire"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cli.RootCmd().ExecuteContext(ctx)
	stop()
	if closeErr := wire.Close(); closeErr != nil {
		wire.Logger().Warnw("failed to close history database", "error", closeErr)
	}

	if err != nil {
		wire.Logger().Debugw("command failed", "error", fmt.Sprintf("%+v", err))
		fmt.Fprintln(os.Stderr, color.New(color.FgRed).Sprint("Error: ")+err.Error())
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintln(os.Stderr, "  hint: "+hint)
		}
		os.Exit(1)
	}
}
