// Package toggle provides the toggle command.
package toggle

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/shelf/internal/appcontext"
	"github.com/agentstation/shelf/internal/cmd/cmdutil"
	"github.com/agentstation/shelf/internal/cmd/hints"
)

// NewCommand creates the toggle command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "toggle POSITION",
		GroupID: "core",
		Short:   "Mark a book as read or unread",
		Long:    `Toggle flips the read status of the book at POSITION, as numbered by the list command.`,
		Example: `  shelf toggle 1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := cmdutil.ParsePosition(args[0])
			if err != nil {
				return cmdutil.Fail(app, "toggle", "Read status not changed", err)
			}

			lib, err := cmdutil.OpenLibrary(cmd.Context(), app)
			if err != nil {
				return err
			}

			book, err := lib.ToggleRead(cmd.Context(), i)
			if err != nil {
				return cmdutil.Fail(app, "toggle", "Read status not changed", cmdutil.PositionError(err))
			}

			app.Logger().Info().
				Str("title", book.Title).
				Bool("read", book.ReadStatus).
				Msg("Read status toggled")

			status := "unread"
			if book.ReadStatus {
				status = "read"
			}
			return app.Notifier().Success(fmt.Sprintf("Marked %q as %s", book.Title, status),
				hints.Context{Command: "toggle", Books: lib.Len()})
		},
	}
}
