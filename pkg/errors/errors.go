// Package errors defines the typed errors shared by the shelf packages.
//
// Each type matches a sentinel with errors.Is, so the CLI and the
// interactive UI can pick a message or a recovery hint without comparing
// strings:
//
//	if errors.IsOutOfRange(err) { ... }
//
// New, Is and As forward to the standard library so callers need a single
// errors import.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	New = errors.New
	Is  = errors.Is
	As  = errors.As
)

// Sentinels matched by the typed errors below.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrOutOfRange       = errors.New("position out of range")
	ErrUnsupportedField = errors.New("unsupported search field")
	ErrCorrupted        = errors.New("library corrupted")
)

// ValidationError rejects a book field or a typed position.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid book: " + e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NewValidationError reports that value is not acceptable for field.
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// IndexError reports a 0-based position outside a collection of Len books.
type IndexError struct {
	Operation string
	Index     int
	Len       int
}

func (e *IndexError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("%s: position %d in an empty library", e.Operation, e.Index)
	}
	return fmt.Sprintf("%s: position %d outside 0..%d", e.Operation, e.Index, e.Len-1)
}

func (e *IndexError) Is(target error) bool { return target == ErrOutOfRange }

// NewIndexError reports that operation was given index for a collection of length books.
func NewIndexError(operation string, index, length int) *IndexError {
	return &IndexError{Operation: operation, Index: index, Len: length}
}

// UnsupportedFieldError reports a search over a field other than the supported ones.
type UnsupportedFieldError struct {
	Field     string
	Supported []string
}

func (e *UnsupportedFieldError) Error() string {
	msg := fmt.Sprintf("cannot search by %q", e.Field)
	if len(e.Supported) > 0 {
		msg += ", use " + strings.Join(e.Supported, ", ")
	}
	return msg
}

func (e *UnsupportedFieldError) Is(target error) bool { return target == ErrUnsupportedField }

// NewUnsupportedFieldError reports field as unsearchable.
func NewUnsupportedFieldError(field string, supported ...string) *UnsupportedFieldError {
	return &UnsupportedFieldError{Field: field, Supported: supported}
}

// CorruptedError reports a library document that could not be decoded. The
// library has been reset to empty when this error is returned.
type CorruptedError struct {
	Path   string
	Format string
	Err    error
}

func (e *CorruptedError) Error() string {
	msg := e.Path + ": unreadable " + e.Format + " library, reset to empty"
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CorruptedError) Unwrap() error { return e.Err }

func (e *CorruptedError) Is(target error) bool { return target == ErrCorrupted }

// NewCorruptedError records that the document at path failed to decode as format.
func NewCorruptedError(path, format string, err error) *CorruptedError {
	return &CorruptedError{Path: path, Format: format, Err: err}
}

// ConfigError reports a bad configuration key or file.
type ConfigError struct {
	Key     string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	msg := "config"
	if e.Key != "" {
		msg += " " + e.Key
	}
	msg += ": " + e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

// NewConfigError reports a problem with key.
func NewConfigError(key, message string, err error) *ConfigError {
	return &ConfigError{Key: key, Message: message, Err: err}
}

// ParseError wraps a decoder failure. File is empty for in-memory documents.
type ParseError struct {
	Format string
	File   string
	Err    error
}

func (e *ParseError) Error() string {
	where := e.Format
	if e.File != "" {
		where = e.File + " (" + e.Format + ")"
	}
	return fmt.Sprintf("decoding %s: %v", where, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IOError wraps a filesystem failure.
type IOError struct {
	Operation string // read, write, create, rename
	Path      string
	Err       error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Operation, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// IsValidationError reports whether err rejects user input.
func IsValidationError(err error) bool { return errors.Is(err, ErrInvalidInput) }

// IsOutOfRange reports whether err is an IndexError.
func IsOutOfRange(err error) bool { return errors.Is(err, ErrOutOfRange) }

// IsUnsupportedField reports whether err is an UnsupportedFieldError.
func IsUnsupportedField(err error) bool { return errors.Is(err, ErrUnsupportedField) }

// IsCorrupted reports whether err announces a library reset.
func IsCorrupted(err error) bool { return errors.Is(err, ErrCorrupted) }

// WrapIO returns nil for a nil err and an *IOError otherwise.
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}

// WrapParse returns nil for a nil err and a *ParseError otherwise.
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, File: file, Err: err}
}
