package books

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/agentstation/shelf/pkg/errors"
	"github.com/agentstation/shelf/pkg/logging"
)

// Persister loads and saves the whole collection as one document.
type Persister interface {
	Load(ctx context.Context) ([]Book, error)
	Save(ctx context.Context, list []Book) error
}

// Option configures a Library.
type Option func(*Library)

// WithClock sets the clock used to stamp added_date.
func WithClock(now func() time.Time) Option {
	return func(l *Library) {
		if now != nil {
			l.now = now
		}
	}
}

// Library is the in-memory collection of books and the persister that
// backs it. It is owned by a single process; the mutex only keeps the
// interactive UI's commands from racing each other.
type Library struct {
	mu    sync.RWMutex
	store Persister
	books []Book
	now   func() time.Time
}

// Open loads the collection from s.
//
// A corrupted document is not fatal: Open returns an empty, usable Library
// together with an error matching errors.ErrCorrupted so the caller can
// tell the user. Any other load failure returns a nil Library.
func Open(ctx context.Context, s Persister, opts ...Option) (*Library, error) {
	if s == nil {
		return nil, &errors.ValidationError{Field: "persister", Message: "cannot be nil"}
	}

	l := &Library{
		store: s,
		books: []Book{},
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := l.Reload(ctx); err != nil {
		if errors.IsCorrupted(err) {
			return l, err
		}
		return nil, err
	}
	return l, nil
}

// Reload replaces the in-memory collection with the persisted one, under
// the same corruption policy as Open.
func (l *Library) Reload(ctx context.Context) error {
	list, err := l.store.Load(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if err != nil {
		if errors.IsCorrupted(err) {
			l.books = []Book{}
			return err
		}
		return fmt.Errorf("loading library: %w", err)
	}
	if list == nil {
		list = []Book{}
	}
	l.books = list

	logging.FromContext(ctx).Debug().Int("books", len(list)).Msg("Library loaded")
	return nil
}

// Books returns a copy of the collection in order.
func (l *Library) Books() []Book {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.books)
}

// Len returns the number of books.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.books)
}

// At returns the book at position i.
func (l *Library) At(i int) (Book, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if i < 0 || i >= len(l.books) {
		return Book{}, errors.NewIndexError("get", i, len(l.books))
	}
	return l.books[i], nil
}

// Add appends a new book stamped with the current time and persists the
// collection. Input is not validated here; see ValidateNew.
func (l *Library) Add(ctx context.Context, title, author string, year int, genre Genre, read bool) (Book, error) {
	if err := ctx.Err(); err != nil {
		return Book{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	book := Book{
		Title:           title,
		Author:          author,
		PublicationYear: YearOf(year),
		Genre:           genre,
		ReadStatus:      read,
		AddedDate:       NewTimestamp(l.now()),
	}

	next := append(slices.Clone(l.books), book)
	if err := l.commit(ctx, next); err != nil {
		return Book{}, err
	}

	logging.FromContext(ctx).Debug().
		Str("title", title).
		Int("position", len(next)-1).
		Msg("Book added")
	return book, nil
}

// Remove deletes the book at position i and persists the collection.
// Later positions shift down by one.
func (l *Library) Remove(ctx context.Context, i int) (Book, error) {
	if err := ctx.Err(); err != nil {
		return Book{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if i < 0 || i >= len(l.books) {
		return Book{}, errors.NewIndexError("remove", i, len(l.books))
	}

	removed := l.books[i]
	next := slices.Delete(slices.Clone(l.books), i, i+1)
	if err := l.commit(ctx, next); err != nil {
		return Book{}, err
	}

	logging.FromContext(ctx).Debug().
		Str("title", removed.Title).
		Int("position", i).
		Msg("Book removed")
	return removed, nil
}

// ToggleRead flips the read status of the book at position i and persists
// the collection. It returns the updated book.
func (l *Library) ToggleRead(ctx context.Context, i int) (Book, error) {
	if err := ctx.Err(); err != nil {
		return Book{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if i < 0 || i >= len(l.books) {
		return Book{}, errors.NewIndexError("toggle", i, len(l.books))
	}

	next := slices.Clone(l.books)
	next[i].ReadStatus = !next[i].ReadStatus
	if err := l.commit(ctx, next); err != nil {
		return Book{}, err
	}

	logging.FromContext(ctx).Debug().
		Str("title", next[i].Title).
		Int("position", i).
		Bool("read", next[i].ReadStatus).
		Msg("Read status toggled")
	return next[i], nil
}

// Search returns the books whose field contains term, ignoring case, in
// collection order. An empty term matches every book.
func (l *Library) Search(term string, field SearchField) ([]Book, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Filter(l.books, term, field)
}

// commit persists next and only then makes it the current collection.
// Callers hold the write lock.
func (l *Library) commit(ctx context.Context, next []Book) error {
	if err := l.store.Save(ctx, next); err != nil {
		return fmt.Errorf("saving library: %w", err)
	}
	l.books = next
	return nil
}
