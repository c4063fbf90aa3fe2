package books

import (
	"strings"

	"github.com/agentstation/shelf/pkg/errors"
)

// Genre is the genre of a book. New books use one of the constants below;
// loaded books keep whatever text the document holds.
type Genre string

// Genres offered when adding a book.
const (
	Fiction    Genre = "Fiction"
	NonFiction Genre = "Non-Fiction"
	Science    Genre = "Science"
	Tech       Genre = "Tech"
	Romance    Genre = "Romance"
	Fantasy    Genre = "Fantasy"
	Poetry     Genre = "Poetry"
	Art        Genre = "Art"
	History    Genre = "History"
)

var genres = []Genre{Fiction, NonFiction, Science, Tech, Romance, Fantasy, Poetry, Art, History}

// Genres returns the enumerated genres in display order.
func Genres() []Genre {
	out := make([]Genre, len(genres))
	copy(out, genres)
	return out
}

// GenreNames returns the enumerated genres as strings, for flag help and completion.
func GenreNames() []string {
	names := make([]string, len(genres))
	for i, g := range genres {
		names[i] = string(g)
	}
	return names
}

// String returns the display form of the genre.
func (g Genre) String() string {
	return string(g)
}

// IsKnown reports whether g is one of the enumerated genres.
func (g Genre) IsKnown() bool {
	for _, known := range genres {
		if g == known {
			return true
		}
	}
	return false
}

// ParseGenre matches s against the enumerated genres, ignoring case.
func ParseGenre(s string) (Genre, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "nonfiction", "non fiction":
		return NonFiction, nil
	}
	for _, g := range genres {
		if strings.ToLower(string(g)) == key {
			return g, nil
		}
	}
	return "", &errors.ValidationError{
		Field:   "genre",
		Value:   s,
		Message: "must be one of " + strings.Join(GenreNames(), ", "),
	}
}
