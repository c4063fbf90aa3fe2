package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentstation/shelf/internal/cmd/emoji"
	"github.com/agentstation/shelf/internal/cmd/table"
	"github.com/agentstation/shelf/pkg/books"
	"github.com/agentstation/shelf/pkg/constants"
)

// SearchView lets the user search the library by title, author or genre.
type SearchView struct {
	term     textinput.Model
	field    int
	onField  bool
	results  []books.Book
	searched bool
	styles   Styles
}

// NewSearchView creates the search view with the term input focused.
func NewSearchView(styles Styles) SearchView {
	v := SearchView{
		term:   newInput("Search term", 256),
		styles: styles,
	}
	v.term.Focus()
	return v
}

// Typing reports whether the term input has focus.
func (v SearchView) Typing() bool {
	return !v.onField
}

// Field returns the selected search field.
func (v SearchView) Field() books.SearchField {
	return books.SearchFields()[v.field]
}

// SetResults shows the books matching the last search.
func (v *SearchView) SetResults(list []books.Book) {
	v.results = list
	v.searched = true
}

// Update handles key presses. Enter on a non-empty term emits a search request.
func (v SearchView) Update(msg tea.Msg) (SearchView, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch key.String() {
	case "up", "down":
		v.onField = !v.onField
		if v.onField {
			v.term.Blur()
		} else {
			v.term.Focus()
		}
		return v, nil
	case "enter":
		term := v.term.Value()
		if strings.TrimSpace(term) == "" {
			return v, statusCmd(infoAlert("Enter a search term"))
		}
		req := searchRequestMsg{term: term, field: v.Field()}
		return v, func() tea.Msg { return req }
	}

	if v.onField {
		fields := books.SearchFields()
		switch key.String() {
		case "left", "h":
			v.field = (v.field - 1 + len(fields)) % len(fields)
		case "right", "l", " ":
			v.field = (v.field + 1) % len(fields)
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.term, cmd = v.term.Update(msg)
	return v, cmd
}

// View renders the search form and its results.
func (v SearchView) View() string {
	var sb strings.Builder
	sb.WriteString(v.styles.Title.Render("Search Books"))
	sb.WriteString("\n")

	var fields []string
	for i, f := range books.SearchFields() {
		name := string(f)
		if i == v.field {
			name = v.styles.Focused.Render("[" + name + "]")
		} else {
			name = v.styles.Muted.Render(" " + name + " ")
		}
		fields = append(fields, name)
	}

	fieldPointer, termPointer := "  ", v.styles.Cursor.Render("> ")
	if v.onField {
		fieldPointer, termPointer = termPointer, fieldPointer
	}

	sb.WriteString(fieldPointer + v.styles.Label.Render("By") + " " + strings.Join(fields, " ") + "\n")
	sb.WriteString(termPointer + v.styles.Label.Render("Term") + " " + v.term.View() + "\n\n")

	if !v.searched {
		return sb.String()
	}

	sb.WriteString(v.styles.Bold.Render(fmt.Sprintf("Found %d result(s)", len(v.results))))
	sb.WriteString("\n")
	for _, b := range v.results {
		status := v.styles.Unread.Render(emoji.Unread)
		if b.ReadStatus {
			status = v.styles.Read.Render(emoji.Read)
		}
		fmt.Fprintf(&sb, "%s %s by %s %s\n",
			status,
			table.Truncate(b.Title, constants.MaxTitleDisplayLength),
			b.Author,
			v.styles.Muted.Render("["+string(b.Genre)+"]"),
		)
	}
	return sb.String()
}

// Help returns the key hints for the view.
func (v SearchView) Help() string {
	if v.onField {
		return "←/→: choose field • ↓: term • tab: next view"
	}
	return "enter: search • ↑: choose field • tab: next view"
}
