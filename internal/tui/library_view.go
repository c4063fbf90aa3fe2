package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentstation/shelf/internal/cmd/emoji"
	"github.com/agentstation/shelf/internal/cmd/table"
	"github.com/agentstation/shelf/pkg/books"
	"github.com/agentstation/shelf/pkg/constants"
)

// LibraryView lists every book with a cursor for toggling and removal.
type LibraryView struct {
	books  []books.Book
	cursor int
	offset int
	styles Styles
	width  int
	height int
}

// NewLibraryView creates the library list.
func NewLibraryView(styles Styles) LibraryView {
	return LibraryView{styles: styles}
}

// SetSize updates the space available to the list.
func (v *LibraryView) SetSize(w, h int) {
	v.width = w
	v.height = h
	v.clamp()
}

// SetBooks replaces the listed books, keeping the cursor in range.
func (v *LibraryView) SetBooks(list []books.Book) {
	v.books = list
	v.clamp()
}

// Cursor returns the position under the cursor.
func (v LibraryView) Cursor() int {
	return v.cursor
}

func (v *LibraryView) clamp() {
	if v.cursor >= len(v.books) {
		v.cursor = len(v.books) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}

	visible := v.visibleRows()
	if visible <= 0 {
		v.offset = 0
		return
	}
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+visible {
		v.offset = v.cursor - visible + 1
	}
}

// visibleRows is the number of books that fit; 0 means no limit.
func (v LibraryView) visibleRows() int {
	if v.height <= 0 {
		return 0
	}
	return max(1, v.height-4)
}

// Update handles key presses. Toggle and remove are returned as requests.
func (v LibraryView) Update(msg tea.Msg) (LibraryView, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(v.books) == 0 {
		return v, nil
	}

	switch key.String() {
	case "up", "k":
		v.cursor--
	case "down", "j":
		v.cursor++
	case "home", "g":
		v.cursor = 0
	case "end", "G":
		v.cursor = len(v.books) - 1
	case "pgup":
		v.cursor -= max(1, v.visibleRows())
	case "pgdown":
		v.cursor += max(1, v.visibleRows())
	case " ", "r":
		index := v.cursor
		return v, func() tea.Msg { return toggleRequestMsg{index: index} }
	case "d", "x", "delete":
		index := v.cursor
		return v, func() tea.Msg { return removeRequestMsg{index: index} }
	}

	v.clamp()
	return v, nil
}

// View renders the list.
func (v LibraryView) View() string {
	var sb strings.Builder
	sb.WriteString(v.styles.Title.Render("Your Library"))
	sb.WriteString("\n")

	if len(v.books) == 0 {
		sb.WriteString(v.styles.Info.Render(emoji.Info + " Your library is empty."))
		sb.WriteString("\n")
		return sb.String()
	}

	end := len(v.books)
	if visible := v.visibleRows(); visible > 0 {
		end = min(end, v.offset+visible)
	}

	for i := v.offset; i < end; i++ {
		sb.WriteString(v.row(i))
		sb.WriteString("\n")
	}

	if end-v.offset < len(v.books) {
		sb.WriteString(v.styles.Muted.Render(fmt.Sprintf("%d-%d of %d", v.offset+1, end, len(v.books))))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (v LibraryView) row(i int) string {
	b := v.books[i]

	pointer := "  "
	if i == v.cursor {
		pointer = v.styles.Cursor.Render("> ")
	}

	status := v.styles.Unread.Render(table.Status(b))
	if b.ReadStatus {
		status = v.styles.Read.Render(table.Status(b))
	}

	title := table.Truncate(b.Title, constants.MaxTitleDisplayLength)
	if i == v.cursor {
		title = v.styles.Selected.Render(title)
	}

	year := b.PublicationYear.String()
	if year == "" {
		year = emoji.Missing
	}

	return fmt.Sprintf("%s%s %s by %s (%s) %s  %s",
		pointer,
		v.styles.Muted.Render(table.Position(i)+"."),
		title,
		b.Author,
		year,
		v.styles.Muted.Render("["+string(b.Genre)+"]"),
		status,
	)
}

// Help returns the key hints for the view.
func (v LibraryView) Help() string {
	if len(v.books) == 0 {
		return "tab: next view"
	}
	b := v.books[v.cursor]
	mark := "mark as read"
	if b.ReadStatus {
		mark = "mark as unread"
	}
	return "↑/↓: move • space: " + mark + " • d: remove • tab: next view"
}
