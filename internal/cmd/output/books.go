package output

import (
	"io"

	"github.com/agentstation/shelf/internal/cmd/table"
	"github.com/agentstation/shelf/pkg/books"
	"github.com/agentstation/shelf/pkg/stats"
)

// Books writes the collection. Table formats show 1-based positions;
// structured formats write the records as persisted.
func Books(w io.Writer, format Format, list []books.Book) error {
	var data any = list
	if format.IsTable() {
		data = table.Books(list, format == FormatWide)
	}
	return Write(w, format, data)
}

// Report is the structured form of the stats command output.
type Report struct {
	Total      int                 `json:"total" yaml:"total"`
	Read       int                 `json:"read" yaml:"read"`
	Unread     int                 `json:"unread" yaml:"unread"`
	Percent    float64             `json:"percent" yaml:"percent"`
	Genres     []stats.Count       `json:"genres" yaml:"genres"`
	Decades    []stats.DecadeCount `json:"decades" yaml:"decades"`
	TopAuthors []stats.Count       `json:"top_authors" yaml:"top_authors"`
}

// NewReport builds a Report listing at most top authors.
func NewReport(s stats.Stats, top int) Report {
	return Report{
		Total:      s.Total,
		Read:       s.Read,
		Unread:     s.Unread(),
		Percent:    s.Percent,
		Genres:     s.GenreCounts(),
		Decades:    s.DecadeCounts(),
		TopAuthors: s.TopAuthors(top),
	}
}

// Stats writes the statistics. Table formats print the metrics followed by
// the top authors; structured formats write a Report.
func Stats(w io.Writer, format Format, s stats.Stats, top int) error {
	if !format.IsTable() {
		return Write(w, format, NewReport(s, top))
	}

	if err := table.Summary(s).Render(w); err != nil {
		return err
	}
	if authors := s.TopAuthors(top); len(authors) > 0 {
		if _, err := io.WriteString(w, "\nTop Authors\n"); err != nil {
			return err
		}
		if err := table.Counts("Author", authors).Render(w); err != nil {
			return err
		}
	}
	if format == FormatWide {
		if genres := s.GenreCounts(); len(genres) > 0 {
			if _, err := io.WriteString(w, "\nBooks by Genre\n"); err != nil {
				return err
			}
			if err := table.Counts("Genre", genres).Render(w); err != nil {
				return err
			}
		}
		if decades := s.DecadeCounts(); len(decades) > 0 {
			if _, err := io.WriteString(w, "\nBooks by Decade\n"); err != nil {
				return err
			}
			if err := table.Decades(decades).Render(w); err != nil {
				return err
			}
		}
	}
	return nil
}
