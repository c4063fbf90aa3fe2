// Package tui implements the interactive terminal interface of shelf: a
// sidebar with four views over one library.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agentstation/shelf/internal/banner"
	"github.com/agentstation/shelf/internal/cmd/alerts"
	"github.com/agentstation/shelf/pkg/books"
	"github.com/agentstation/shelf/pkg/logging"
)

// View identifies one of the sidebar entries.
type View int

// Views in sidebar order.
const (
	ViewLibrary View = iota
	ViewAdd
	ViewSearch
	ViewStats
	viewCount
)

// String returns the sidebar label of the view.
func (v View) String() string {
	switch v {
	case ViewLibrary:
		return "View Library"
	case ViewAdd:
		return "Add Book"
	case ViewSearch:
		return "Search Books"
	case ViewStats:
		return "Library Stats"
	default:
		return "Unknown"
	}
}

const sidebarWidth = 18

// Model is the root bubbletea model.
type Model struct {
	ctx    context.Context
	lib    *books.Library
	styles Styles
	now    func() time.Time

	active  View
	library LibraryView
	add     AddView
	search  SearchView
	stats   StatsView

	status    *alerts.Alert
	banner    string
	bannerURL string
	fetcher   *banner.Fetcher

	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithStyles replaces the default styles.
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.styles = s
	}
}

// WithClock sets the clock used to validate publication years.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// WithBanner fetches the decorative banner from url when the program starts.
func WithBanner(f *banner.Fetcher, url string) Option {
	return func(m *Model) {
		m.fetcher = f
		m.bannerURL = url
	}
}

// WithAlert shows alert in the status line at startup.
func WithAlert(alert *alerts.Alert) Option {
	return func(m *Model) {
		m.status = alert
	}
}

// New creates the root model over lib.
func New(ctx context.Context, lib *books.Library, opts ...Option) Model {
	m := Model{
		ctx:    ctx,
		lib:    lib,
		styles: DefaultStyles(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.library = NewLibraryView(m.styles)
	m.add = NewAddView(m.styles, m.now)
	m.search = NewSearchView(m.styles)
	m.stats = NewStatsView(m.styles)
	m.refresh()
	return m
}

// Active returns the view currently shown.
func (m Model) Active() View {
	return m.active
}

// Status returns the alert in the status line, if any.
func (m Model) Status() *alerts.Alert {
	return m.status
}

// Init starts the banner fetch.
func (m Model) Init() tea.Cmd {
	if m.fetcher == nil || m.bannerURL == "" {
		return nil
	}
	ctx, f, url := m.ctx, m.fetcher, m.bannerURL
	return func() tea.Msg {
		return bannerMsg(f.Fetch(ctx, url))
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case bannerMsg:
		m.banner = string(msg)
		return m, nil

	case statusMsg:
		m.status = msg.alert
		return m, nil

	case toggleRequestMsg:
		ctx, lib, i := m.ctx, m.lib, msg.index
		return m, func() tea.Msg {
			b, err := lib.ToggleRead(ctx, i)
			return readToggledMsg{book: b, err: err}
		}

	case removeRequestMsg:
		ctx, lib, i := m.ctx, m.lib, msg.index
		return m, func() tea.Msg {
			b, err := lib.Remove(ctx, i)
			return bookRemovedMsg{book: b, err: err}
		}

	case addRequestMsg:
		ctx, lib := m.ctx, m.lib
		return m, func() tea.Msg {
			b, err := lib.Add(ctx, msg.title, msg.author, msg.year, msg.genre, msg.read)
			return bookAddedMsg{book: b, err: err}
		}

	case searchRequestMsg:
		results, err := m.lib.Search(msg.term, msg.field)
		if err != nil {
			m.status = errorAlert("Search failed", err)
			return m, nil
		}
		m.search.SetResults(results)
		m.status = infoAlert(fmt.Sprintf("Found %d result(s)", len(results)))
		return m, nil

	case bookAddedMsg:
		if msg.err != nil {
			m.status = errorAlert("Book not added", msg.err)
			return m, nil
		}
		logging.FromContext(m.ctx).Info().Str("title", msg.book.Title).Msg("Book added")
		m.add.Reset()
		m.status = alerts.NewSuccess("Book added successfully!")
		m.refresh()
		return m, nil

	case bookRemovedMsg:
		if msg.err != nil {
			m.status = errorAlert("Book not removed", msg.err)
			return m, nil
		}
		logging.FromContext(m.ctx).Info().Str("title", msg.book.Title).Msg("Book removed")
		m.status = alerts.NewSuccess("Book removed successfully!")
		m.refresh()
		return m, nil

	case readToggledMsg:
		if msg.err != nil {
			m.status = errorAlert("Read status not changed", msg.err)
			return m, nil
		}
		m.status = alerts.NewSuccess(fmt.Sprintf("Marked %q as %s", msg.book.Title, strings.ToLower(msg.book.Status())))
		m.refresh()
		return m, nil
	}

	return m.updateActive(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.switchTo((m.active + 1) % viewCount)
		return m, nil
	case "shift+tab":
		m.switchTo((m.active + viewCount - 1) % viewCount)
		return m, nil
	case "esc":
		m.switchTo(ViewLibrary)
		return m, nil
	}

	if !m.typing() {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "1", "2", "3", "4":
			m.switchTo(View(msg.String()[0] - '1'))
			return m, nil
		}
	}

	return m.updateActive(msg)
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.active {
	case ViewLibrary:
		m.library, cmd = m.library.Update(msg)
	case ViewAdd:
		m.add, cmd = m.add.Update(msg)
	case ViewSearch:
		m.search, cmd = m.search.Update(msg)
	case ViewStats:
		m.stats, cmd = m.stats.Update(msg)
	}
	return m, cmd
}

// typing reports whether keys should go to a text input.
func (m Model) typing() bool {
	switch m.active {
	case ViewAdd:
		return m.add.Typing()
	case ViewSearch:
		return m.search.Typing()
	}
	return false
}

func (m *Model) switchTo(v View) {
	m.active = v
	if v == ViewStats {
		m.stats.UpdateContent(m.lib.Books())
	}
}

// refresh re-reads the library into the views that display it.
func (m *Model) refresh() {
	list := m.lib.Books()
	m.library.SetBooks(list)
	m.stats.UpdateContent(list)
}

func (m *Model) resize() {
	w := max(20, m.width-sidebarWidth-4)
	h := max(5, m.height-m.chromeHeight())
	m.library.SetSize(w, h)
	m.stats.SetSize(w, h)
	m.stats.UpdateContent(m.lib.Books())
}

// chromeHeight is the number of lines taken by header, status and footer.
func (m Model) chromeHeight() int {
	h := 4
	if m.banner != "" {
		h += strings.Count(m.banner, "\n") + 1
	}
	return h
}

// View renders the whole screen.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render("📖 Personal Library Manager"))
	sb.WriteString("\n")
	if m.banner != "" {
		sb.WriteString(m.styles.Banner.Render(m.banner))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Sidebar.Width(sidebarWidth).Render(m.sidebar()),
		m.styles.Content.Render(m.content()),
	))
	sb.WriteString("\n")

	if m.status != nil {
		sb.WriteString(m.renderStatus())
		sb.WriteString("\n")
	}
	sb.WriteString(m.styles.Footer.Render(m.help()))
	return sb.String()
}

func (m Model) sidebar() string {
	lines := []string{m.styles.Bold.Render("Navigation"), ""}
	for v := ViewLibrary; v < viewCount; v++ {
		label := fmt.Sprintf("%d %s", v+1, v)
		if v == m.active {
			lines = append(lines, m.styles.NavActive.Render("> "+label))
		} else {
			lines = append(lines, m.styles.NavItem.Render("  "+label))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) content() string {
	switch m.active {
	case ViewAdd:
		return m.add.View()
	case ViewSearch:
		return m.search.View()
	case ViewStats:
		return m.stats.View()
	default:
		return m.library.View()
	}
}

func (m Model) help() string {
	var keys string
	switch m.active {
	case ViewAdd:
		keys = m.add.Help()
	case ViewSearch:
		keys = m.search.Help()
	case ViewStats:
		keys = m.stats.Help()
	default:
		keys = m.library.Help()
	}
	if m.typing() {
		return keys + " • ctrl+c: quit"
	}
	return keys + " • 1-4: views • q: quit"
}

func (m Model) renderStatus() string {
	text := m.status.String()
	switch m.status.Level {
	case alerts.LevelSuccess:
		return m.styles.Success.Render(text)
	case alerts.LevelError:
		return m.styles.Error.Render(text)
	case alerts.LevelWarning:
		return m.styles.Warning.Render(text)
	default:
		return m.styles.Info.Render(text)
	}
}

func errorAlert(message string, err error) *alerts.Alert {
	return alerts.NewError(message).WithError(err)
}

func infoAlert(message string) *alerts.Alert {
	return alerts.NewInfo(message)
}

func statusCmd(alert *alerts.Alert) tea.Cmd {
	return func() tea.Msg { return statusMsg{alert: alert} }
}
