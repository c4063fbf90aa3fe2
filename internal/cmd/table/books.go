// Package table converts shelf data into rows for table output.
package table

import (
	"fmt"
	"strconv"

	"github.com/agentstation/shelf/internal/cmd/emoji"
	"github.com/agentstation/shelf/pkg/books"
	"github.com/agentstation/shelf/pkg/constants"
	"github.com/agentstation/shelf/pkg/stats"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// Books converts the collection to table rows. Positions are shown 1-based;
// wide adds the added date.
func Books(list []books.Book, wide bool) Data {
	headers := []string{"#", "Title", "Author", "Year", "Genre", "Status"}
	align := []Align{AlignRight, AlignLeft, AlignLeft, AlignRight, AlignLeft, AlignLeft}
	if wide {
		headers = append(headers, "Added")
		align = append(align, AlignLeft)
	}

	rows := make([][]string, 0, len(list))
	for i, b := range list {
		title := b.Title
		if !wide {
			title = Truncate(title, constants.MaxTitleDisplayLength)
		}

		row := []string{
			Position(i),
			orMissing(title),
			orMissing(b.Author),
			orMissing(b.PublicationYear.String()),
			orMissing(string(b.Genre)),
			Status(b),
		}
		if wide {
			row = append(row, orMissing(b.AddedDate.String()))
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// Summary converts the headline metrics to a two-column table.
func Summary(s stats.Stats) Data {
	return Data{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Books", strconv.Itoa(s.Total)},
			{"Books Read", strconv.Itoa(s.Read)},
			{"Books Unread", strconv.Itoa(s.Unread())},
			{"Percentage Read", Percent(s.Percent)},
		},
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// Counts converts named counts (authors, genres) to a table with the
// given label for the name column.
func Counts(label string, counts []stats.Count) Data {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{orMissing(c.Name), strconv.Itoa(c.Count)})
	}
	return Data{
		Headers:         []string{label, "Books"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// Decades converts decade counts to a table.
func Decades(counts []stats.DecadeCount) Data {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{DecadeLabel(c.Decade), strconv.Itoa(c.Count)})
	}
	return Data{
		Headers:         []string{"Decade", "Books"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// Position formats a 0-based position for display.
func Position(i int) string {
	return strconv.Itoa(i + 1)
}

// Status formats the read status with its symbol.
func Status(b books.Book) string {
	if b.ReadStatus {
		return emoji.Read + " " + b.Status()
	}
	return emoji.Unread + " " + b.Status()
}

// Percent formats a percentage with one decimal.
func Percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// DecadeLabel formats a decade bucket, e.g. "1960s".
func DecadeLabel(decade int) string {
	return strconv.Itoa(decade) + "s"
}

// Truncate shortens s to at most max runes, ending in "...".
func Truncate(s string, max int) string {
	runes := []rune(s)
	if max <= 3 || len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func orMissing(s string) string {
	if s == "" {
		return emoji.Missing
	}
	return s
}
