// Package store persists a shelf library as a single document.
//
// The file store writes JSON by default and YAML when the path ends in
// .yaml or .yml. The memory store keeps the collection in process and is
// used by tests and dry runs.
package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/agentstation/shelf/pkg/books"
	"github.com/agentstation/shelf/pkg/errors"
)

// Store loads and saves the whole collection.
type Store interface {
	Load(ctx context.Context) ([]books.Book, error)
	Save(ctx context.Context, list []books.Book) error
	Path() string
}

var (
	_ Store = (*File)(nil)
	_ Store = (*Memory)(nil)
)

// Format is the encoding of the library document.
type Format string

// Supported document formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts user input to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", &errors.ValidationError{
			Field:   "format",
			Value:   s,
			Message: "must be json or yaml",
		}
	}
}

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Open returns a Store for the given location. An empty path selects the
// in-memory store.
func Open(path string, opts ...Option) (Store, error) {
	if path == "" {
		return NewMemory(), nil
	}
	s, err := NewFile(path, opts...)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	return s, nil
}
