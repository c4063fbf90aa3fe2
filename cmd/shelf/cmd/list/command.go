// Package list provides the list command.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/shelf/internal/appcontext"
	"github.com/agentstation/shelf/internal/cmd/cmdutil"
	"github.com/agentstation/shelf/internal/cmd/hints"
	"github.com/agentstation/shelf/internal/cmd/output"
)

// NewCommand creates the list command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		GroupID: "core",
		Short:   "List the books in your library",
		Long: `List shows every book in the library with its position, which the
remove and toggle commands take as their argument.`,
		Example: `  shelf list              # Table of books
  shelf list -o wide      # Include the date each book was added
  shelf list -o json      # Books as stored in the library file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app)
		},
	}
}

func run(cmd *cobra.Command, app appcontext.Interface) error {
	lib, err := cmdutil.OpenLibrary(cmd.Context(), app)
	if err != nil {
		return err
	}

	list := lib.Books()
	ctx := hints.Context{Command: "list", Books: len(list)}
	format := output.Format(app.OutputFormat())

	if len(list) == 0 && format.IsTable() {
		return app.Notifier().Info("Your library is empty.", ctx)
	}

	if err := output.Books(app.Stdout(), format, list); err != nil {
		return err
	}
	ctx.Succeeded = true
	return app.Notifier().Hints(ctx)
}
