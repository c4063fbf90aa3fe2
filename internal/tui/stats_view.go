package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentstation/shelf/internal/chart"
	"github.com/agentstation/shelf/internal/cmd/emoji"
	"github.com/agentstation/shelf/internal/cmd/table"
	"github.com/agentstation/shelf/pkg/books"
	"github.com/agentstation/shelf/pkg/constants"
	"github.com/agentstation/shelf/pkg/stats"
)

// StatsView shows the library statistics and charts in a scrollable viewport.
type StatsView struct {
	viewport viewport.Model
	content  string
	styles   Styles
}

// NewStatsView creates the statistics view.
func NewStatsView(styles Styles) StatsView {
	return StatsView{
		viewport: viewport.New(80, 20),
		styles:   styles,
	}
}

// SetSize updates the size of the viewport.
func (v *StatsView) SetSize(w, h int) {
	v.viewport.Width = w
	v.viewport.Height = max(1, h-2)
}

// UpdateContent recomputes the statistics for list.
func (v *StatsView) UpdateContent(list []books.Book) {
	var sb strings.Builder
	sb.WriteString(v.styles.Title.Render("Library Statistics"))
	sb.WriteString("\n")

	if len(list) == 0 {
		sb.WriteString(v.styles.Info.Render(emoji.Info + " Add some books to see statistics."))
		sb.WriteString("\n")
		v.setContent(sb.String())
		return
	}

	s := stats.Compute(list)
	metric := func(label, value string) {
		sb.WriteString(v.styles.Label.Width(16).Render(label))
		sb.WriteString(v.styles.Bold.Render(value))
		sb.WriteString("\n")
	}
	metric("Total Books", fmt.Sprintf("%d", s.Total))
	metric("Books Read", fmt.Sprintf("%d", s.Read))
	metric("Percentage Read", table.Percent(s.Percent))
	sb.WriteString("\n")

	width := chart.DefaultWidth
	if v.viewport.Width > 40 {
		width = min(60, v.viewport.Width-30)
	}
	sb.WriteString(chart.New(width, v.styles.Chart).All(s))
	sb.WriteString("\n")

	sb.WriteString(v.styles.Title.Render("Top Authors"))
	sb.WriteString("\n")
	for _, a := range s.TopAuthors(constants.TopAuthorsLimit) {
		sb.WriteString(fmt.Sprintf("%s - %d %s\n", v.styles.Bold.Render(a.Name), a.Count, plural(a.Count, "book")))
	}
	v.setContent(sb.String())
}

func (v *StatsView) setContent(s string) {
	v.content = s
	v.viewport.SetContent(s)
	v.viewport.GotoTop()
}

// Content returns the full rendered statistics, independent of scrolling.
func (v StatsView) Content() string {
	return v.content
}

// Update scrolls the viewport.
func (v StatsView) Update(msg tea.Msg) (StatsView, tea.Cmd) {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the visible part of the statistics.
func (v StatsView) View() string {
	return v.viewport.View()
}

// Help returns the key hints for the view.
func (v StatsView) Help() string {
	return "↑/↓: scroll • tab: next view"
}

func plural(n int, word string) string {
	if n > 1 {
		return word + "s"
	}
	return word
}
