// Package chart renders the library statistics as text charts.
package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agentstation/shelf/internal/cmd/table"
	"github.com/agentstation/shelf/pkg/stats"
)

const (
	fullBlock  = "█"
	emptyBlock = "░"

	// DefaultWidth is the bar width used when none is configured.
	DefaultWidth = 30
)

// Palette colors the charts.
type Palette struct {
	Read   lipgloss.Style
	Unread lipgloss.Style
	Bar    lipgloss.Style
	Label  lipgloss.Style
	Title  lipgloss.Style
}

// DefaultPalette returns the palette used by the CLI and the interactive UI.
func DefaultPalette() Palette {
	return Palette{
		Read:   lipgloss.NewStyle().Foreground(lipgloss.Color("#4db6ac")),
		Unread: lipgloss.NewStyle().Foreground(lipgloss.Color("#e57373")),
		Bar:    lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3")),
		Label:  lipgloss.NewStyle(),
		Title:  lipgloss.NewStyle().Bold(true),
	}
}

// PlainPalette returns a palette without colors, for --no-color.
func PlainPalette() Palette {
	plain := lipgloss.NewStyle()
	return Palette{
		Read:   plain,
		Unread: plain,
		Bar:    plain,
		Label:  plain,
		Title:  plain.Bold(true),
	}
}

// Bar is one labelled value in a bar chart.
type Bar struct {
	Label string
	Value int
}

// Chart renders text charts at a fixed bar width.
type Chart struct {
	width   int
	palette Palette
}

// New returns a Chart. A width below 1 selects DefaultWidth.
func New(width int, palette Palette) *Chart {
	if width < 1 {
		width = DefaultWidth
	}
	return &Chart{width: width, palette: palette}
}

// ReadSplit renders a single bar split between read and unread books,
// followed by a legend. It returns "" for an empty library.
func (c *Chart) ReadSplit(s stats.Stats) string {
	if s.Total == 0 {
		return ""
	}

	readCells := int(float64(s.Read)/float64(s.Total)*float64(c.width) + 0.5)
	bar := c.palette.Read.Render(strings.Repeat(fullBlock, readCells)) +
		c.palette.Unread.Render(strings.Repeat(emptyBlock, c.width-readCells))

	unreadPercent := 100 - s.Percent
	legend := fmt.Sprintf("%s Read %d (%s)  %s Unread %d (%s)",
		c.palette.Read.Render(fullBlock), s.Read, table.Percent(s.Percent),
		c.palette.Unread.Render(emptyBlock), s.Unread(), table.Percent(unreadPercent))

	return c.palette.Title.Render("Read vs Unread") + "\n" + bar + "\n" + legend + "\n"
}

// Genres renders books per genre in first-encounter order.
func (c *Chart) Genres(s stats.Stats) string {
	counts := s.GenreCounts()
	bars := make([]Bar, len(counts))
	for i, count := range counts {
		bars[i] = Bar{Label: count.Name, Value: count.Count}
	}
	return c.Bars("Books by Genre", bars)
}

// Decades renders books per publication decade in ascending order.
func (c *Chart) Decades(s stats.Stats) string {
	counts := s.DecadeCounts()
	bars := make([]Bar, len(counts))
	for i, count := range counts {
		bars[i] = Bar{Label: table.DecadeLabel(count.Decade), Value: count.Count}
	}
	return c.Bars("Books by Publication Decade", bars)
}

// Bars renders a horizontal bar chart scaled to the largest value. Every
// non-zero value gets at least one cell. It returns "" when bars is empty.
func (c *Chart) Bars(title string, bars []Bar) string {
	if len(bars) == 0 {
		return ""
	}

	labelWidth, maxValue := 0, 0
	for _, b := range bars {
		labelWidth = max(labelWidth, lipgloss.Width(b.Label))
		maxValue = max(maxValue, b.Value)
	}

	var sb strings.Builder
	if title != "" {
		sb.WriteString(c.palette.Title.Render(title))
		sb.WriteString("\n")
	}

	for _, b := range bars {
		cells := 0
		if maxValue > 0 {
			cells = b.Value * c.width / maxValue
		}
		if b.Value > 0 && cells == 0 {
			cells = 1
		}

		label := b.Label + strings.Repeat(" ", labelWidth-lipgloss.Width(b.Label))
		sb.WriteString(c.palette.Label.Render(label))
		sb.WriteString(" ")
		sb.WriteString(c.palette.Bar.Render(strings.Repeat(fullBlock, cells)))
		sb.WriteString(fmt.Sprintf(" %d\n", b.Value))
	}
	return sb.String()
}

// All renders every chart separated by blank lines, skipping empty ones.
func (c *Chart) All(s stats.Stats) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{c.ReadSplit(s), c.Genres(s), c.Decades(s)} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, "\n")
}
