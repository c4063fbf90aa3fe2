package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentstation/shelf/pkg/books"
	"github.com/agentstation/shelf/pkg/constants"
	"github.com/agentstation/shelf/pkg/errors"
)

// Form fields in focus order.
const (
	fieldTitle = iota
	fieldAuthor
	fieldYear
	fieldGenre
	fieldRead
	fieldCount
)

// AddView is the form for adding a book.
type AddView struct {
	title  textinput.Model
	author textinput.Model
	year   textinput.Model
	genre  int
	read   bool
	focus  int
	styles Styles
	now    func() time.Time
}

// NewAddView creates an empty form focused on the title.
func NewAddView(styles Styles, now func() time.Time) AddView {
	v := AddView{
		title:  newInput("Book Title", 256),
		author: newInput("Author", 256),
		year:   newInput("Publication Year", 4),
		styles: styles,
		now:    now,
	}
	v.Reset()
	return v
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = ""
	ti.Width = 40
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// Reset clears the form back to its defaults.
func (v *AddView) Reset() {
	v.title.Reset()
	v.author.Reset()
	v.year.SetValue(strconv.Itoa(constants.DefaultPublicationYear))
	v.genre = 0
	v.read = true
	v.setFocus(fieldTitle)
}

// Typing reports whether a text input has focus.
func (v AddView) Typing() bool {
	return v.focus <= fieldYear
}

func (v *AddView) setFocus(f int) {
	v.focus = (f + fieldCount) % fieldCount
	inputs := []*textinput.Model{&v.title, &v.author, &v.year}
	for i, in := range inputs {
		if i == v.focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

// Update handles key presses. A complete form is returned as an add request.
func (v AddView) Update(msg tea.Msg) (AddView, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch key.String() {
	case "up":
		v.setFocus(v.focus - 1)
		return v, nil
	case "down":
		v.setFocus(v.focus + 1)
		return v, nil
	case "enter":
		if v.focus == fieldRead {
			return v, v.submit()
		}
		v.setFocus(v.focus + 1)
		return v, nil
	}

	switch v.focus {
	case fieldGenre:
		genres := books.Genres()
		switch key.String() {
		case "left", "h":
			v.genre = (v.genre - 1 + len(genres)) % len(genres)
		case "right", "l", " ":
			v.genre = (v.genre + 1) % len(genres)
		}
		return v, nil
	case fieldRead:
		switch key.String() {
		case "left", "right", "h", "l", " ":
			v.read = !v.read
		}
		return v, nil
	}

	var cmd tea.Cmd
	switch v.focus {
	case fieldTitle:
		v.title, cmd = v.title.Update(msg)
	case fieldAuthor:
		v.author, cmd = v.author.Update(msg)
	case fieldYear:
		v.year, cmd = v.year.Update(msg)
	}
	return v, cmd
}

// submit validates the form and emits either an add request or an error.
func (v AddView) submit() tea.Cmd {
	year, err := strconv.Atoi(strings.TrimSpace(v.year.Value()))
	if err != nil {
		err = errors.NewValidationError("publication_year", v.year.Value(), "must be a whole number")
		return statusCmd(errorAlert("Book not added", err))
	}

	title := strings.TrimSpace(v.title.Value())
	author := strings.TrimSpace(v.author.Value())
	if err := books.ValidateNew(title, author, year, v.now()); err != nil {
		return statusCmd(errorAlert("Book not added", err))
	}

	req := addRequestMsg{
		title:  title,
		author: author,
		year:   year,
		genre:  books.Genres()[v.genre],
		read:   v.read,
	}
	return func() tea.Msg { return req }
}

// View renders the form.
func (v AddView) View() string {
	var sb strings.Builder
	sb.WriteString(v.styles.Title.Render("Add a New Book"))
	sb.WriteString("\n")

	v.line(&sb, fieldTitle, "Title", v.title.View())
	v.line(&sb, fieldAuthor, "Author", v.author.View())
	v.line(&sb, fieldYear, "Year", v.year.View())
	v.line(&sb, fieldGenre, "Genre", "< "+string(books.Genres()[v.genre])+" >")

	status := "< Unread >"
	if v.read {
		status = "< Read >"
	}
	v.line(&sb, fieldRead, "Status", status)

	sb.WriteString("\n")
	sb.WriteString(v.styles.Muted.Render("Press enter on Status to add the book."))
	sb.WriteString("\n")
	return sb.String()
}

func (v AddView) line(sb *strings.Builder, field int, label, value string) {
	pointer := "  "
	style := v.styles.Label
	if field == v.focus {
		pointer = v.styles.Cursor.Render("> ")
		style = style.Inherit(v.styles.Focused)
	}
	sb.WriteString(pointer)
	sb.WriteString(style.Render(label))
	sb.WriteString(" ")
	sb.WriteString(value)
	sb.WriteString("\n")
}

// Help returns the key hints for the view.
func (v AddView) Help() string {
	switch v.focus {
	case fieldGenre:
		return "←/→: choose genre • ↑/↓: move • tab: next view"
	case fieldRead:
		return "←/→: read or unread • enter: add book • tab: next view"
	}
	return "enter: next field • ↑/↓: move • tab: next view"
}
