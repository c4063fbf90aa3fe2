// Package search provides the search command.
package search

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/shelf/internal/appcontext"
	"github.com/agentstation/shelf/internal/cmd/cmdutil"
	"github.com/agentstation/shelf/internal/cmd/hints"
	"github.com/agentstation/shelf/internal/cmd/output"
	"github.com/agentstation/shelf/pkg/books"
)

// NewCommand creates the search command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:     "search TERM",
		Aliases: []string{"find"},
		GroupID: "core",
		Short:   "Search books by title, author or genre",
		Long: `Search lists the books whose chosen field contains TERM, ignoring case.
Matches keep their order in the library.`,
		Example: `  shelf search dune
  shelf search "le guin" --by author
  shelf search science --by genre -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := books.ParseSearchField(by)
			if err != nil {
				return cmdutil.Fail(app, "search", "Search failed", err)
			}

			term := args[0]
			if strings.TrimSpace(term) == "" {
				return app.Notifier().Info("Enter a search term", hints.Context{Command: "search"})
			}

			lib, err := cmdutil.OpenLibrary(cmd.Context(), app)
			if err != nil {
				return err
			}

			matches, err := lib.Search(term, field)
			if err != nil {
				return cmdutil.Fail(app, "search", "Search failed", err)
			}

			app.Logger().Debug().
				Str("term", term).
				Str("field", field.String()).
				Int("matches", len(matches)).
				Msg("Search complete")

			format := output.Format(app.OutputFormat())
			if len(matches) > 0 || !format.IsTable() {
				if err := output.Books(app.Stdout(), format, matches); err != nil {
					return err
				}
			}

			return app.Notifier().Info(fmt.Sprintf("Found %d result(s)", len(matches)), hints.Context{
				Command:   "search",
				Succeeded: true,
				Books:     lib.Len(),
				Matches:   len(matches),
			})
		},
	}

	fields := make([]string, 0, 3)
	for _, f := range books.SearchFields() {
		fields = append(fields, f.String())
	}
	cmd.Flags().StringVarP(&by, "by", "b", books.FieldTitle.String(),
		"field to search: "+strings.Join(fields, ", "))
	_ = cmd.RegisterFlagCompletionFunc("by", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return fields, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
