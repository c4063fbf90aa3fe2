package books

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/shelf/pkg/errors"
)

// SearchField names a book field that can be searched.
type SearchField string

// Searchable fields.
const (
	FieldTitle  SearchField = "title"
	FieldAuthor SearchField = "author"
	FieldGenre  SearchField = "genre"
)

var searchFields = []SearchField{FieldTitle, FieldAuthor, FieldGenre}

// SearchFields returns the searchable fields in display order.
func SearchFields() []SearchField {
	out := make([]SearchField, len(searchFields))
	copy(out, searchFields)
	return out
}

// String returns the field name.
func (f SearchField) String() string {
	return string(f)
}

// ParseSearchField converts user input to a SearchField.
func ParseSearchField(s string) (SearchField, error) {
	field := SearchField(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range searchFields {
		if field == known {
			return field, nil
		}
	}
	return "", unsupportedField(s)
}

func unsupportedField(field string) error {
	names := make([]string, len(searchFields))
	for i, f := range searchFields {
		names[i] = string(f)
	}
	return errors.NewUnsupportedFieldError(field, names...)
}

// Filter returns the books matching term in field, in their original order.
// The result is never nil.
func Filter(list []Book, term string, field SearchField) ([]Book, error) {
	if _, err := (Book{}).Field(field); err != nil {
		return nil, err
	}

	lower := cases.Lower(language.Und)
	needle := lower.String(term)

	matches := make([]Book, 0)
	for _, b := range list {
		value, _ := b.Field(field)
		if strings.Contains(lower.String(value), needle) {
			matches = append(matches, b)
		}
	}
	return matches, nil
}
