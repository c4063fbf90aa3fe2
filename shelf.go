// Package shelf is a personal library catalog: a list of books kept in a
// single JSON document, with read tracking, search and statistics.
//
// The catalog is also available as the shelf command line tool and its
// interactive UI. This package exposes the same operations to Go programs:
//
//	s, err := shelf.New(shelf.WithLibraryPath("library.json"))
//	if err != nil && !shelf.IsCorrupted(err) {
//		return err
//	}
//	book, err := s.Add(ctx, "Dune", "Frank Herbert", 1965, books.Science, false)
package shelf

import (
	"context"
	"fmt"

	"github.com/agentstation/shelf/pkg/books"
	"github.com/agentstation/shelf/pkg/errors"
	"github.com/agentstation/shelf/pkg/logging"
	"github.com/agentstation/shelf/pkg/stats"
	"github.com/agentstation/shelf/pkg/store"
)

// Shelf manages a library with event hooks
type Shelf interface {
	// Books returns a copy of the collection in order
	Books() []books.Book

	// Add validates and appends a book, then saves the library
	Add(ctx context.Context, title, author string, year int, genre books.Genre, read bool) (books.Book, error)

	// Remove deletes the book at the 0-based position, then saves the library
	Remove(ctx context.Context, position int) (books.Book, error)

	// ToggleRead flips the read status at the 0-based position, then saves the library
	ToggleRead(ctx context.Context, position int) (books.Book, error)

	// Search returns the books whose field contains term, ignoring case
	Search(term string, field books.SearchField) ([]books.Book, error)

	// Stats computes statistics over the current collection
	Stats() stats.Stats

	// OnBookAdded registers a callback for when books are added
	OnBookAdded(BookAddedHook)

	// OnBookRemoved registers a callback for when books are removed
	OnBookRemoved(BookRemovedHook)

	// OnReadToggled registers a callback for when a read status changes
	OnReadToggled(ReadToggledHook)
}

// shelf is the internal implementation of the Shelf interface
type shelf struct {
	*hooks
	lib    *books.Library
	config *config
}

// New opens the library described by opts.
//
// A corrupted library document is reset to an empty library; New then
// returns a usable Shelf together with an error matching
// errors.ErrCorrupted. Any other failure returns a nil Shelf.
func New(opts ...Option) (Shelf, error) {
	cfg := defaultConfig()
	if err := cfg.apply(opts...); err != nil {
		return nil, fmt.Errorf("applying options: %w", err)
	}

	p := cfg.store
	if p == nil {
		fs, err := store.Open(cfg.path, store.WithLogger(cfg.logger))
		if err != nil {
			return nil, err
		}
		p = fs
	}

	ctx := logging.WithLogger(context.Background(), cfg.logger)
	lib, err := books.Open(ctx, p, books.WithClock(cfg.now))
	if lib == nil {
		return nil, err
	}

	return &shelf{hooks: newHooks(), lib: lib, config: cfg}, err
}

func (s *shelf) ctx(ctx context.Context) context.Context {
	if logging.FromContext(ctx) == logging.Default() {
		return logging.WithLogger(ctx, s.config.logger)
	}
	return ctx
}

func (s *shelf) Books() []books.Book {
	return s.lib.Books()
}

func (s *shelf) Add(ctx context.Context, title, author string, year int, genre books.Genre, read bool) (books.Book, error) {
	if s.config.validate {
		if err := books.ValidateNew(title, author, year, s.config.now()); err != nil {
			return books.Book{}, err
		}
	}

	book, err := s.lib.Add(s.ctx(ctx), title, author, year, genre, read)
	if err != nil {
		return books.Book{}, err
	}
	s.bookAdded(book)
	return book, nil
}

func (s *shelf) Remove(ctx context.Context, position int) (books.Book, error) {
	book, err := s.lib.Remove(s.ctx(ctx), position)
	if err != nil {
		return books.Book{}, err
	}
	s.bookRemoved(position, book)
	return book, nil
}

func (s *shelf) ToggleRead(ctx context.Context, position int) (books.Book, error) {
	book, err := s.lib.ToggleRead(s.ctx(ctx), position)
	if err != nil {
		return books.Book{}, err
	}
	s.readToggled(position, book)
	return book, nil
}

func (s *shelf) Search(term string, field books.SearchField) ([]books.Book, error) {
	return s.lib.Search(term, field)
}

func (s *shelf) Stats() stats.Stats {
	return stats.Compute(s.lib.Books())
}

var _ Shelf = (*shelf)(nil)

// IsCorrupted reports whether err from New means the library document was
// reset.
func IsCorrupted(err error) bool {
	return errors.IsCorrupted(err)
}
