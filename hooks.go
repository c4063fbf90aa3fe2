package shelf

import (
	"sync"

	"github.com/agentstation/shelf/pkg/books"
)

// Hook function types for library events
type (
	// BookAddedHook is called after a book is added and saved
	BookAddedHook func(book books.Book)

	// BookRemovedHook is called after a book is removed and the library saved
	BookRemovedHook func(position int, book books.Book)

	// ReadToggledHook is called after a read status change is saved
	ReadToggledHook func(position int, book books.Book)
)

// hooks manages event callbacks for library changes
type hooks struct {
	mu            sync.RWMutex
	onBookAdded   []BookAddedHook
	onBookRemoved []BookRemovedHook
	onReadToggled []ReadToggledHook
}

func newHooks() *hooks {
	return &hooks{}
}

// OnBookAdded registers a callback for when books are added
func (h *hooks) OnBookAdded(fn BookAddedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onBookAdded = append(h.onBookAdded, fn)
}

// OnBookRemoved registers a callback for when books are removed
func (h *hooks) OnBookRemoved(fn BookRemovedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onBookRemoved = append(h.onBookRemoved, fn)
}

// OnReadToggled registers a callback for when a read status changes
func (h *hooks) OnReadToggled(fn ReadToggledHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onReadToggled = append(h.onReadToggled, fn)
}

func (h *hooks) bookAdded(book books.Book) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onBookAdded {
		fn(book)
	}
}

func (h *hooks) bookRemoved(position int, book books.Book) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onBookRemoved {
		fn(position, book)
	}
}

func (h *hooks) readToggled(position int, book books.Book) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onReadToggled {
		fn(position, book)
	}
}
