// Package remove provides the remove command.
package remove

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/shelf/internal/appcontext"
	"github.com/agentstation/shelf/internal/cmd/cmdutil"
	"github.com/agentstation/shelf/internal/cmd/hints"
)

// NewCommand creates the remove command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "remove POSITION",
		Aliases: []string{"rm"},
		GroupID: "core",
		Short:   "Remove a book from your library",
		Long: `Remove deletes the book at POSITION, as numbered by the list command.
Books after it move up one position.`,
		Example: `  shelf remove 3`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := cmdutil.ParsePosition(args[0])
			if err != nil {
				return cmdutil.Fail(app, "remove", "Book not removed", err)
			}

			lib, err := cmdutil.OpenLibrary(cmd.Context(), app)
			if err != nil {
				return err
			}

			book, err := lib.Remove(cmd.Context(), i)
			if err != nil {
				return cmdutil.Fail(app, "remove", "Book not removed", cmdutil.PositionError(err))
			}

			app.Logger().Info().
				Str("title", book.Title).
				Int("position", i+1).
				Msg("Book removed")

			return app.Notifier().Success("Book removed successfully!", hints.Context{Command: "remove", Books: lib.Len()})
		},
	}
}
