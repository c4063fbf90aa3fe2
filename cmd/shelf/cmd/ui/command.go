// Package ui provides the ui command, which starts the interactive library manager.
package ui

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/shelf/internal/appcontext"
	"github.com/agentstation/shelf/internal/banner"
	"github.com/agentstation/shelf/internal/cmd/alerts"
	"github.com/agentstation/shelf/internal/cmd/cmdutil"
	"github.com/agentstation/shelf/internal/tui"
	"github.com/agentstation/shelf/pkg/errors"
	"github.com/agentstation/shelf/pkg/logging"
)

// AppContext defines what the ui command needs from the app. The UI owns
// the terminal, so logs must be moved off it before anything is opened.
type AppContext interface {
	appcontext.Interface
	RedirectLogs() (io.Closer, error)
}

type runner func(ctx context.Context, m tui.Model) error

// NewCommand creates the ui command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	return newCommand(app, func(ctx context.Context, m tui.Model) error {
		return tui.Run(ctx, m)
	})
}

func newCommand(app AppContext, run runner) *cobra.Command {
	return &cobra.Command{
		Use:     "ui",
		Aliases: []string{"tui"},
		GroupID: "core",
		Short:   "Open the interactive library manager",
		Long: `UI opens a full-screen library manager with four views: View Library,
Add Book, Search Books and Library Stats.

Switch views with tab or the keys 1-4, and quit with q or ctrl+c.
Logs are written to LOG_OUTPUT when it names a file and discarded otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			closer, err := app.RedirectLogs()
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()

			m, err := NewModel(cmd.Context(), app)
			if err != nil {
				return err
			}
			return run(cmd.Context(), m)
		},
	}
}

// NewModel opens the library and builds the UI model. A corrupted library
// file is reported in the status line instead of failing.
func NewModel(ctx context.Context, app appcontext.Interface) (tui.Model, error) {
	logger := app.Logger()
	ctx = logging.WithLogger(ctx, logger)

	lib, err := app.Library(ctx)
	if err != nil && (!errors.IsCorrupted(err) || lib == nil) {
		return tui.Model{}, err
	}

	opts := []tui.Option{tui.WithStyles(tui.NewStyles(app.NoColor()))}
	if err != nil {
		logger.Warn().Err(err).Msg("Library reset")
		opts = append(opts, tui.WithAlert(alerts.NewError(cmdutil.CorruptedMessage(err))))
	}
	if url := app.BannerURL(); url != "" {
		opts = append(opts, tui.WithBanner(banner.New(banner.WithLogger(logger)), url))
	}

	return tui.New(ctx, lib, opts...), nil
}
