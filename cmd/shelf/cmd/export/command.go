// Package export provides the export command.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/shelf/internal/appcontext"
	"github.com/agentstation/shelf/internal/cmd/cmdutil"
	cmdconstants "github.com/agentstation/shelf/internal/cmd/constants"
	"github.com/agentstation/shelf/internal/cmd/hints"
	"github.com/agentstation/shelf/pkg/books"
	"github.com/agentstation/shelf/pkg/constants"
	"github.com/agentstation/shelf/pkg/errors"
	"github.com/agentstation/shelf/pkg/store"
)

// Flags holds the export command flags.
type Flags struct {
	To  string
	Out string
}

// NewCommand creates the export command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "export",
		GroupID: "management",
		Short:   "Export your library",
		Long: `Export writes the whole library as CSV, JSON or YAML, to stdout or to a file.

JSON export produces the same document as the library file, so it can be
used as a backup.`,
		Example: `  shelf export --to csv --out books.csv
  shelf export --to yaml
  shelf export > backup.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app, flags)
		},
	}

	cmd.Flags().StringVar(&flags.To, "to", "", "export format: "+strings.Join(cmdconstants.ExportFormats, ", ")+" (default from --out extension, else json)")
	cmd.Flags().StringVar(&flags.Out, "out", "", "output file (default stdout)")
	_ = cmd.RegisterFlagCompletionFunc("to", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return cmdconstants.ExportFormats, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func run(cmd *cobra.Command, app appcontext.Interface, flags *Flags) error {
	format, err := resolveFormat(flags.To, flags.Out)
	if err != nil {
		return cmdutil.Fail(app, "export", "Export failed", err)
	}

	lib, err := cmdutil.OpenLibrary(cmd.Context(), app)
	if err != nil {
		return err
	}
	list := lib.Books()

	if flags.Out == "" {
		return Write(app.Stdout(), format, list)
	}

	if err := writeFile(flags.Out, format, list); err != nil {
		return cmdutil.Fail(app, "export", "Export failed", err)
	}

	app.Logger().Info().
		Str("path", flags.Out).
		Str("format", format).
		Int("books", len(list)).
		Msg("Library exported")

	return app.Notifier().Success(fmt.Sprintf("Exported %d book(s) to %s", len(list), flags.Out),
		hints.Context{Command: "export", Books: len(list)})
}

// resolveFormat picks the export format from --to, then from the output
// file extension, defaulting to JSON.
func resolveFormat(to, out string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(to))
	if format == "" {
		switch strings.ToLower(filepath.Ext(out)) {
		case ".csv":
			return cmdconstants.FormatCSV, nil
		case ".yaml", ".yml":
			return cmdconstants.FormatYAML, nil
		default:
			return cmdconstants.FormatJSON, nil
		}
	}
	if format == "yml" {
		format = cmdconstants.FormatYAML
	}
	for _, f := range cmdconstants.ExportFormats {
		if f == format {
			return format, nil
		}
	}
	return "", errors.NewValidationError("to", to, "must be one of "+strings.Join(cmdconstants.ExportFormats, ", "))
}

// Write encodes list in format to w.
func Write(w io.Writer, format string, list []books.Book) error {
	if format == cmdconstants.FormatCSV {
		return writeCSV(w, list)
	}

	data, err := store.Encode(store.Format(format), list)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	_, err = w.Write(data)
	return err
}

func writeCSV(w io.Writer, list []books.Book) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"title", "author", "publication_year", "genre", "read_status", "added_date"}); err != nil {
		return err
	}
	for _, b := range list {
		record := []string{
			b.Title,
			b.Author,
			b.PublicationYear.String(),
			b.Genre.String(),
			strconv.FormatBool(b.ReadStatus),
			b.AddedDate.String(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeFile(path, format string, list []books.Book) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.FilePermissions) // #nosec G304 - user-selected export file
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.WrapIO("close", path, cerr)
		}
	}()

	if err := Write(f, format, list); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
