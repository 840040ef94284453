// Command validatedinput hosts a validated input in a terminal prompt, renders
// it as HTML or checks values against the configured validator.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/goliatone/go-validatedinput/cmd/validatedinput/commands"
	"github.com/goliatone/go-validatedinput/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := commands.NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		cli.Report(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}
