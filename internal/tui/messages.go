package tui

import (
	"github.com/agentstation/shelf/internal/cmd/alerts"
	"github.com/agentstation/shelf/pkg/books"
)

// Requests emitted by the views and carried out by the root model.
type (
	toggleRequestMsg struct{ index int }
	removeRequestMsg struct{ index int }
	addRequestMsg    struct {
		title  string
		author string
		year   int
		genre  books.Genre
		read   bool
	}
	searchRequestMsg struct {
		term  string
		field books.SearchField
	}
)

// Results of library operations.
type (
	bookAddedMsg struct {
		book books.Book
		err  error
	}
	bookRemovedMsg struct {
		book books.Book
		err  error
	}
	readToggledMsg struct {
		book books.Book
		err  error
	}
	bannerMsg string
	statusMsg struct{ alert *alerts.Alert }
)
