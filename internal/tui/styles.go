package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/agentstation/shelf/internal/chart"
)

// Palette colors shared by the light and dark themes.
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#101F38", Dark: "#8BC34A"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	ColorBorder  = lipgloss.AdaptiveColor{Light: "#dce0e5", Dark: "#2a3850"}

	ColorRead    = lipgloss.Color("#10B981")
	ColorUnread  = lipgloss.Color("#F87171")
	ColorSuccess = lipgloss.Color("#8BC34A")
	ColorError   = lipgloss.Color("#e53935")
	ColorWarning = lipgloss.Color("#FFC107")
	ColorInfo    = lipgloss.Color("#2196F3")
)

// Styles holds all the styled components of the interactive UI.
type Styles struct {
	// Layout
	Header  lipgloss.Style
	Sidebar lipgloss.Style
	Content lipgloss.Style
	Footer  lipgloss.Style
	Banner  lipgloss.Style

	// Navigation
	NavItem   lipgloss.Style
	NavActive lipgloss.Style

	// Text
	Title lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style
	Label lipgloss.Style

	// Lists and forms
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Read     lipgloss.Style
	Unread   lipgloss.Style
	Field    lipgloss.Style
	Focused  lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Charts
	Chart chart.Palette
}

// NewStyles creates the styles. noColor strips every color so the UI
// respects NO_COLOR and --no-color.
func NewStyles(noColor bool) Styles {
	s := Styles{
		Header: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Padding(0, 1),

		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginRight(1),

		Content: lipgloss.NewStyle().
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1),

		Banner: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1),

		NavItem: lipgloss.NewStyle().
			Foreground(ColorMuted),

		NavActive: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),

		Title: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			MarginBottom(1),

		Muted: lipgloss.NewStyle().
			Foreground(ColorMuted),

		Bold: lipgloss.NewStyle().
			Bold(true),

		Label: lipgloss.NewStyle().
			Width(8),

		Cursor: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Bold(true),

		Read: lipgloss.NewStyle().
			Foreground(ColorRead),

		Unread: lipgloss.NewStyle().
			Foreground(ColorUnread),

		Field: lipgloss.NewStyle(),

		Focused: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(ColorInfo),

		Chart: chart.Palette{
			Read:   lipgloss.NewStyle().Foreground(ColorRead),
			Unread: lipgloss.NewStyle().Foreground(ColorUnread),
			Bar:    lipgloss.NewStyle().Foreground(ColorInfo),
			Label:  lipgloss.NewStyle(),
			Title:  lipgloss.NewStyle().Bold(true),
		},
	}

	if noColor {
		s = s.withoutColor()
	}
	return s
}

// DefaultStyles returns styles honoring the NO_COLOR environment variable.
func DefaultStyles() Styles {
	return NewStyles(os.Getenv("NO_COLOR") != "")
}

func (s Styles) withoutColor() Styles {
	strip := func(st lipgloss.Style) lipgloss.Style {
		return st.UnsetForeground().UnsetBackground().UnsetBorderForeground()
	}

	s.Header = strip(s.Header)
	s.Sidebar = strip(s.Sidebar)
	s.Footer = strip(s.Footer)
	s.Banner = strip(s.Banner)
	s.NavItem = strip(s.NavItem)
	s.NavActive = strip(s.NavActive)
	s.Title = strip(s.Title)
	s.Muted = strip(s.Muted)
	s.Cursor = strip(s.Cursor)
	s.Read = strip(s.Read)
	s.Unread = strip(s.Unread)
	s.Focused = strip(s.Focused)
	s.Success = strip(s.Success)
	s.Error = strip(s.Error)
	s.Warning = strip(s.Warning)
	s.Info = strip(s.Info)
	s.Chart = chart.Palette{
		Read:   strip(s.Chart.Read),
		Unread: strip(s.Chart.Unread),
		Bar:    strip(s.Chart.Bar),
		Label:  s.Chart.Label,
		Title:  s.Chart.Title,
	}
	return s
}
