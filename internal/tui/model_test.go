package tui

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/agentstation/shelf/internal/banner"
	"github.com/agentstation/shelf/internal/cmd/alerts"
	"github.com/agentstation/shelf/pkg/books"
	"github.com/agentstation/shelf/pkg/errors"
	"github.com/agentstation/shelf/pkg/logging"
	"github.com/agentstation/shelf/pkg/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var fixedNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.Local)

func clock() time.Time { return fixedNow }

func seed() []books.Book {
	return []books.Book{
		{Title: "Dune", Author: "Frank Herbert", PublicationYear: books.YearOf(1965), Genre: books.Science},
		{Title: "The Dispossessed", Author: "Ursula K. Le Guin", PublicationYear: books.YearOf(1974), Genre: books.Fiction, ReadStatus: true},
		{Title: "Dune Messiah", Author: "Frank Herbert", PublicationYear: books.YearOf(1969), Genre: books.Science},
	}
}

func newModel(t *testing.T, list ...books.Book) (Model, *books.Library, *store.Memory) {
	t.Helper()
	mem := store.NewMemory(list...)
	ctx := logging.WithLogger(context.Background(), logging.Nop())
	lib, err := books.Open(ctx, mem, books.WithClock(clock))
	require.NoError(t, err)
	return New(ctx, lib, WithStyles(NewStyles(true)), WithClock(clock)), lib, mem
}

// key builds a key message from its bubbletea name.
func key(name string) tea.KeyMsg {
	switch name {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
	}
}

// press sends keys to m, running every returned command to completion.
// It reports whether a command asked the program to quit.
func press(t *testing.T, m Model, keys ...string) (Model, bool) {
	t.Helper()
	for _, k := range keys {
		var quit bool
		m, quit = send(t, m, key(k))
		if quit {
			return m, true
		}
	}
	return m, false
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, bool) {
	t.Helper()
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next, cmd := m.Update(queue[0])
		queue = queue[1:]
		m = next.(Model)
		if cmd == nil {
			continue
		}
		out := cmd()
		switch out := out.(type) {
		case tea.QuitMsg:
			return m, true
		case tea.BatchMsg:
			for _, c := range out {
				if c != nil {
					queue = append(queue, c())
				}
			}
		case nil:
		default:
			queue = append(queue, out)
		}
	}
	return m, false
}

func TestViewNavigation(t *testing.T) {
	m, _, _ := newModel(t)
	assert.Equal(t, ViewLibrary, m.Active())

	m, _ = press(t, m, "tab")
	assert.Equal(t, ViewAdd, m.Active())
	m, _ = press(t, m, "tab", "tab")
	assert.Equal(t, ViewStats, m.Active())
	m, _ = press(t, m, "tab")
	assert.Equal(t, ViewLibrary, m.Active())

	m, _ = press(t, m, "shift+tab")
	assert.Equal(t, ViewStats, m.Active())

	m, _ = press(t, m, "3")
	assert.Equal(t, ViewSearch, m.Active())

	// Digits are typed into the search term.
	m, _ = press(t, m, "1")
	assert.Equal(t, ViewSearch, m.Active())

	m, _ = press(t, m, "esc")
	assert.Equal(t, ViewLibrary, m.Active())
}

func TestViewNames(t *testing.T) {
	m, _, _ := newModel(t)
	out := m.View()
	for v := ViewLibrary; v < viewCount; v++ {
		assert.Contains(t, out, v.String())
	}
	assert.Equal(t, "Library Stats", ViewStats.String())
}

func TestQuit(t *testing.T) {
	m, _, _ := newModel(t)
	_, quit := press(t, m, "q")
	assert.True(t, quit)

	// While typing, q is text and only ctrl+c quits.
	m, quit = press(t, m, "2", "q")
	assert.False(t, quit)
	assert.Equal(t, "q", m.add.title.Value())

	_, quit = press(t, m, "ctrl+c")
	assert.True(t, quit)
}

func TestLibraryEmpty(t *testing.T) {
	m, _, _ := newModel(t)
	assert.Contains(t, m.View(), "Your library is empty.")

	// Actions on an empty list are ignored.
	m, _ = press(t, m, "space", "d")
	assert.Nil(t, m.Status())
}

func TestLibraryToggleAndRemove(t *testing.T) {
	m, lib, mem := newModel(t, seed()...)
	assert.Contains(t, m.View(), "Dune Messiah")

	m, _ = press(t, m, "space")
	b, err := lib.At(0)
	require.NoError(t, err)
	assert.True(t, b.ReadStatus)
	require.NotNil(t, m.Status())
	assert.Equal(t, alerts.LevelSuccess, m.Status().Level)
	assert.Equal(t, `Marked "Dune" as read`, m.Status().Message)

	m, _ = press(t, m, "r")
	b, _ = lib.At(0)
	assert.False(t, b.ReadStatus)

	m, _ = press(t, m, "down", "d")
	assert.Equal(t, 2, lib.Len())
	assert.Equal(t, "Book removed successfully!", m.Status().Message)
	assert.NotContains(t, m.View(), "The Dispossessed")
	assert.Equal(t, 3, mem.Saves())

	// The cursor stays in range after removing the last row.
	m, _ = press(t, m, "down", "down", "x")
	assert.Equal(t, 1, lib.Len())
	assert.Equal(t, 0, m.library.Cursor())
}

func TestLibrarySaveFailure(t *testing.T) {
	m, lib, mem := newModel(t, seed()...)
	mem.SetFailSave(errors.New("disk full"))

	m, _ = press(t, m, "space")
	b, _ := lib.At(0)
	assert.False(t, b.ReadStatus)
	require.NotNil(t, m.Status())
	assert.Equal(t, alerts.LevelError, m.Status().Level)
	assert.Contains(t, m.Status().String(), "disk full")
}

func TestAddBook(t *testing.T) {
	m, lib, _ := newModel(t)

	m, _ = press(t, m, "2", "Dune", "enter", "Frank Herbert", "enter")
	assert.Equal(t, fieldYear, m.add.focus)
	assert.Equal(t, "2023", m.add.year.Value())

	// Replace the default year.
	for range 4 {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m, _ = press(t, m, "1965", "enter", "right", "right", "enter", "left", "enter")

	require.Equal(t, 1, lib.Len())
	b, _ := lib.At(0)
	assert.Equal(t, "Dune", b.Title)
	assert.Equal(t, "Frank Herbert", b.Author)
	assert.Equal(t, "1965", b.PublicationYear.String())
	assert.Equal(t, books.Science, b.Genre)
	assert.False(t, b.ReadStatus)
	assert.True(t, fixedNow.Equal(b.AddedDate.Time()))

	assert.Equal(t, "Book added successfully!", m.Status().Message)
	assert.Empty(t, m.add.title.Value())
	assert.Equal(t, fieldTitle, m.add.focus)
	assert.True(t, m.add.read)
}

func TestAddBookValidation(t *testing.T) {
	m, lib, _ := newModel(t)

	m, _ = press(t, m, "2", "enter", "Author", "enter", "enter", "enter", "enter")
	assert.Equal(t, 0, lib.Len())
	require.NotNil(t, m.Status())
	assert.Equal(t, alerts.LevelError, m.Status().Level)
	assert.True(t, errors.IsValidationError(m.Status().Err))
	assert.Contains(t, m.Status().String(), "title")

	m, _ = press(t, m, "up", "up", "up", "up", "Title", "down", "down", "9")
	assert.Equal(t, "2023", m.add.year.Value(), "year input is limited to four digits")

	// A year after the current one is rejected.
	early, _, _ := newModel(t)
	early.add = NewAddView(early.styles, func() time.Time { return time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local) })
	early, _ = press(t, early, "2", "Title", "enter", "Author", "enter", "enter", "enter", "enter")
	require.NotNil(t, early.Status())
	assert.Contains(t, early.Status().String(), "publication_year")
}

func TestSearch(t *testing.T) {
	m, _, _ := newModel(t, seed()...)

	m, _ = press(t, m, "3", "enter")
	require.NotNil(t, m.Status())
	assert.Equal(t, "Enter a search term", m.Status().Message)

	m, _ = press(t, m, "DUNE", "enter")
	assert.Equal(t, "Found 2 result(s)", m.Status().Message)
	out := m.View()
	assert.Contains(t, out, "Found 2 result(s)")
	assert.Contains(t, out, "Dune Messiah")

	// Switch the field to author.
	m, _ = press(t, m, "up", "right")
	assert.Equal(t, books.FieldAuthor, m.search.Field())
	m, _ = press(t, m, "down")
	for range 4 {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m, _ = press(t, m, "le guin", "enter")
	assert.Equal(t, "Found 1 result(s)", m.Status().Message)

	m, _ = press(t, m, "zzz", "enter")
	assert.Equal(t, "Found 0 result(s)", m.Status().Message)
}

func TestSearchKeepsSpaces(t *testing.T) {
	m, _, _ := newModel(t, seed()...)

	m, _ = press(t, m, "3", "   ", "enter")
	assert.Equal(t, "Enter a search term", m.Status().Message)

	for range 3 {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m, _ = press(t, m, "une ", "enter")
	assert.Equal(t, "Found 1 result(s)", m.Status().Message)
	assert.Contains(t, m.View(), "Dune Messiah")
}

func TestStats(t *testing.T) {
	m, _, _ := newModel(t)
	m, _ = press(t, m, "4")
	assert.Contains(t, m.stats.Content(), "Add some books to see statistics.")

	m, _, _ = newModel(t, seed()...)
	m, _ = press(t, m, "4")
	content := m.stats.Content()
	assert.Contains(t, content, "Total Books")
	assert.Contains(t, content, "33.3%")
	assert.Contains(t, content, "Books by Genre")
	assert.Contains(t, content, "1960s")
	assert.Contains(t, content, "Frank Herbert - 2 books")
	assert.Contains(t, content, "Ursula K. Le Guin - 1 book\n")
}

func TestStatsFollowMutations(t *testing.T) {
	m, _, _ := newModel(t, seed()...)
	m, _ = press(t, m, "space", "4")
	assert.Contains(t, m.stats.Content(), "66.7%")
}

func TestWindowResize(t *testing.T) {
	list := make([]books.Book, 0, 40)
	for i := range 40 {
		list = append(list, books.Book{Title: fmt.Sprintf("Book %02d", i+1), Author: "A", Genre: books.Art})
	}
	m, _, _ := newModel(t, list...)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 20})
	out := m.View()
	assert.Contains(t, out, "Book 01")
	assert.NotContains(t, out, "Book 40")

	m, _ = press(t, m, "G")
	out = m.View()
	assert.Contains(t, out, "Book 40")
	assert.NotContains(t, out, "Book 01")
}

func TestStartupAlert(t *testing.T) {
	mem := store.NewMemory()
	lib, err := books.Open(context.Background(), mem)
	require.NoError(t, err)

	m := New(context.Background(), lib,
		WithStyles(NewStyles(true)),
		WithAlert(alerts.NewError("library.json is corrupted. Resetting the library.")),
	)
	assert.Contains(t, m.View(), "library.json is corrupted")
}

func TestBanner(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "~ my shelf ~\n")
	}))
	defer srv.Close()

	m, _, _ := newModel(t)
	assert.Nil(t, m.Init())

	f := banner.New(banner.WithHTTPClient(srv.Client()), banner.WithLogger(logging.Nop()))
	m = New(m.ctx, m.lib, WithStyles(NewStyles(true)), WithBanner(f, srv.URL))

	cmd := m.Init()
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())
	assert.Contains(t, m.View(), "~ my shelf ~")
}
