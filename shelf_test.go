package shelf

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/shelf/pkg/books"
	"github.com/agentstation/shelf/pkg/errors"
	"github.com/agentstation/shelf/pkg/store"
)

var fixedNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.Local)

func clock() time.Time { return fixedNow }

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")

	s, err := New(WithLibraryPath(path), WithClock(clock))
	require.NoError(t, err)
	assert.Empty(t, s.Books())

	_, err = s.Add(context.Background(), "Dune", "Frank Herbert", 1965, books.Science, false)
	require.NoError(t, err)

	reopened, err := New(WithLibraryPath(path))
	require.NoError(t, err)
	require.Len(t, reopened.Books(), 1)
	assert.Equal(t, "2025-06-01 12:00:00", reopened.Books()[0].AddedDate.String())
}

func TestNewCorrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	require.NoError(t, os.WriteFile(path, []byte("[{"), 0o600))

	s, err := New(WithLibraryPath(path))
	require.Error(t, err)
	assert.True(t, IsCorrupted(err))
	require.NotNil(t, s)
	assert.Empty(t, s.Books())
}

func TestNewOptionErrors(t *testing.T) {
	for name, opt := range map[string]Option{
		"empty path": WithLibraryPath(""),
		"nil store":  WithStore(nil),
		"nil clock":  WithClock(nil),
	} {
		_, err := New(opt)
		assert.True(t, errors.IsValidationError(err), name)
	}
}

func TestHooks(t *testing.T) {
	s, err := New(WithStore(store.NewMemory()), WithClock(clock))
	require.NoError(t, err)

	var events []string
	s.OnBookAdded(func(b books.Book) { events = append(events, "added "+b.Title) })
	s.OnReadToggled(func(i int, b books.Book) {
		events = append(events, "toggled "+b.Title+" "+b.Status())
	})
	s.OnBookRemoved(func(i int, b books.Book) { events = append(events, "removed "+b.Title) })

	ctx := context.Background()
	_, err = s.Add(ctx, "Dune", "Frank Herbert", 1965, books.Science, false)
	require.NoError(t, err)
	_, err = s.ToggleRead(ctx, 0)
	require.NoError(t, err)
	_, err = s.Remove(ctx, 0)
	require.NoError(t, err)

	// failures fire nothing
	_, err = s.Remove(ctx, 0)
	assert.True(t, errors.IsOutOfRange(err))

	want := []string{"added Dune", "toggled Dune Read", "removed Dune"}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Errorf("hook events mismatch (-want +got):\n%s", diff)
	}
}

func TestAddValidation(t *testing.T) {
	mem := store.NewMemory()
	s, err := New(WithStore(mem), WithClock(clock))
	require.NoError(t, err)

	_, err = s.Add(context.Background(), "", "Anon", 1965, books.Fiction, false)
	assert.True(t, errors.IsValidationError(err))
	_, err = s.Add(context.Background(), "Future", "Anon", 2026, books.Fiction, false)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, 0, mem.Saves())

	lenient, err := New(WithStore(mem), WithClock(clock), WithValidation(false))
	require.NoError(t, err)
	_, err = lenient.Add(context.Background(), "Future", "Anon", 2026, books.Fiction, false)
	assert.NoError(t, err)
}

func TestSearchAndStats(t *testing.T) {
	s, err := New(WithStore(store.NewMemory()), WithClock(clock))
	require.NoError(t, err)

	ctx := context.Background()
	for _, b := range []struct {
		title, author string
		read          bool
	}{
		{"Dune", "Frank Herbert", true},
		{"Dune Messiah", "Frank Herbert", false},
		{"Emma", "Jane Austen", false},
	} {
		_, err := s.Add(ctx, b.title, b.author, 1965, books.Fiction, b.read)
		require.NoError(t, err)
	}

	matches, err := s.Search("dune", books.FieldTitle)
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	st := s.Stats()
	assert.Equal(t, 3, st.Total)
	assert.Equal(t, 1, st.Read)
	assert.InDelta(t, 33.3, st.Percent, 0.001)
}
