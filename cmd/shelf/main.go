// Command shelf manages a personal library of books from the terminal.
package main

import (
	"context"
	"os"

	"github.com/agentstation/shelf/cmd/shelf/app"
	"github.com/agentstation/shelf/pkg/constants"
)

// Set by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	ctx, stop := app.ContextWithSignals(context.Background())
	err := run(ctx, os.Args[1:])
	stop()
	if err != nil {
		app.ExitOnError(err)
	}
}

func run(ctx context.Context, args []string) error {
	shelf, err := app.New(version, commit, date, builtBy)
	if err != nil {
		return err
	}
	defer func() {
		// ctx may be cancelled by a signal by now
		sctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()
		if err := shelf.Shutdown(sctx); err != nil {
			shelf.Logger().Error().Err(err).Msg("Shutdown failed")
		}
	}()
	return shelf.Execute(ctx, args)
}
