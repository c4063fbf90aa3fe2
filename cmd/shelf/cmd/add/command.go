// Package add provides the add command.
package add

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentstation/shelf/internal/appcontext"
	"github.com/agentstation/shelf/internal/cmd/cmdutil"
	"github.com/agentstation/shelf/internal/cmd/hints"
	"github.com/agentstation/shelf/pkg/books"
	"github.com/agentstation/shelf/pkg/constants"
)

// Flags holds the add command flags.
type Flags struct {
	Title  string
	Author string
	Year   int
	Genre  string
	Read   bool
	Unread bool
}

// NewCommand creates the add command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return newCommand(app, time.Now)
}

func newCommand(app appcontext.Interface, now func() time.Time) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "add",
		GroupID: "core",
		Short:   "Add a book to your library",
		Long: fmt.Sprintf(`Add appends a book to the end of the library.

Title and author are required. The publication year must lie between %d
and the current year. New books are marked read unless --unread is given.`,
			constants.MinPublicationYear),
		Example: `  shelf add --title "Dune" --author "Frank Herbert" --year 1965 --genre Science
  shelf add --title "Ariel" --author "Sylvia Plath" --year 1965 --genre Poetry --unread`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app, flags, now())
		},
	}

	cmd.Flags().StringVarP(&flags.Title, "title", "t", "", "book title (required)")
	cmd.Flags().StringVarP(&flags.Author, "author", "a", "", "book author (required)")
	cmd.Flags().IntVarP(&flags.Year, "year", "y", constants.DefaultPublicationYear, "publication year")
	cmd.Flags().StringVarP(&flags.Genre, "genre", "g", string(books.Fiction),
		"genre: "+strings.Join(books.GenreNames(), ", "))
	cmd.Flags().BoolVar(&flags.Read, "read", true, "mark the book as read")
	cmd.Flags().BoolVar(&flags.Unread, "unread", false, "mark the book as unread")
	cmd.MarkFlagsMutuallyExclusive("read", "unread")

	_ = cmd.RegisterFlagCompletionFunc("genre", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return books.GenreNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func run(cmd *cobra.Command, app appcontext.Interface, flags *Flags, now time.Time) error {
	genre, err := books.ParseGenre(flags.Genre)
	if err != nil {
		return cmdutil.Fail(app, "add", "Book not added", err)
	}
	if err := books.ValidateNew(flags.Title, flags.Author, flags.Year, now); err != nil {
		return cmdutil.Fail(app, "add", "Book not added", err)
	}

	lib, err := cmdutil.OpenLibrary(cmd.Context(), app)
	if err != nil {
		return err
	}

	read := flags.Read && !flags.Unread
	book, err := lib.Add(cmd.Context(), flags.Title, flags.Author, flags.Year, genre, read)
	if err != nil {
		return cmdutil.Fail(app, "add", "Book not added", err)
	}

	app.Logger().Info().
		Str("title", book.Title).
		Int("books", lib.Len()).
		Msg("Book added")

	return app.Notifier().Success("Book added successfully!", hints.Context{Command: "add", Books: lib.Len()})
}
