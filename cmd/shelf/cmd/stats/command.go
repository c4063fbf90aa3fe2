// Package stats provides the stats command.
package stats

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/shelf/internal/appcontext"
	"github.com/agentstation/shelf/internal/chart"
	"github.com/agentstation/shelf/internal/cmd/cmdutil"
	"github.com/agentstation/shelf/internal/cmd/hints"
	"github.com/agentstation/shelf/internal/cmd/output"
	"github.com/agentstation/shelf/pkg/constants"
	"github.com/agentstation/shelf/pkg/stats"
)

// Flags holds the stats command flags.
type Flags struct {
	Top    int
	Charts bool
	Width  int
}

// NewCommand creates the stats command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "stats",
		GroupID: "core",
		Short:   "Show statistics about your library",
		Long: `Stats shows how many books you own and have read, your most collected
authors, and optionally charts of genres and publication decades.`,
		Example: `  shelf stats
  shelf stats --charts
  shelf stats --top 10 -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app, flags)
		},
	}

	cmd.Flags().IntVar(&flags.Top, "top", constants.TopAuthorsLimit, "number of top authors to show")
	cmd.Flags().BoolVar(&flags.Charts, "charts", false, "draw charts of read status, genres and decades")
	cmd.Flags().IntVar(&flags.Width, "width", chart.DefaultWidth, "chart bar width")

	return cmd
}

func run(cmd *cobra.Command, app appcontext.Interface, flags *Flags) error {
	lib, err := cmdutil.OpenLibrary(cmd.Context(), app)
	if err != nil {
		return err
	}

	s := stats.Compute(lib.Books())
	ctx := hints.Context{Command: "stats", Books: s.Total}
	format := output.Format(app.OutputFormat())

	if s.Total == 0 && format.IsTable() {
		return app.Notifier().Info("Add some books to see statistics.", ctx)
	}

	w := app.Stdout()
	if err := output.Stats(w, format, s, max(flags.Top, 0)); err != nil {
		return err
	}

	if flags.Charts && format.IsTable() {
		palette := chart.DefaultPalette()
		if app.NoColor() {
			palette = chart.PlainPalette()
		}
		if _, err := io.WriteString(w, "\n"+chart.New(flags.Width, palette).All(s)); err != nil {
			return err
		}
	}

	ctx.Succeeded = true
	return app.Notifier().Hints(ctx)
}
