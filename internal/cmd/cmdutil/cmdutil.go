// Package cmdutil provides helpers shared by the shelf commands.
package cmdutil

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/agentstation/shelf/internal/appcontext"
	"github.com/agentstation/shelf/internal/cmd/hints"
	"github.com/agentstation/shelf/pkg/books"
	"github.com/agentstation/shelf/pkg/errors"
)

// OpenLibrary opens the application library. A corrupted file is not an
// error for commands: the reset is reported as a warning and the empty
// library returned.
func OpenLibrary(ctx context.Context, app appcontext.Interface) (*books.Library, error) {
	lib, err := app.Library(ctx)
	if err == nil {
		return lib, nil
	}
	if !errors.IsCorrupted(err) || lib == nil {
		return nil, err
	}

	app.Logger().Warn().Err(err).Msg("Library reset")
	if werr := app.Notifier().Warning(CorruptedMessage(err), hints.Context{ErrorType: hints.ErrorCorrupted}); werr != nil {
		return nil, werr
	}
	return lib, nil
}

// CorruptedMessage returns the user-facing message for a reset library.
func CorruptedMessage(err error) string {
	name := "library"
	var ce *errors.CorruptedError
	if errors.As(err, &ce) && ce.Path != "" {
		name = filepath.Base(ce.Path)
	}
	return fmt.Sprintf("Error: %s is corrupted. Resetting the library.", name)
}

// ParsePosition converts a 1-based position typed by the user into an index.
func ParsePosition(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 {
		return 0, errors.NewValidationError("position", arg, "must be a positive whole number")
	}
	return n - 1, nil
}

// PositionError restates an out-of-range error with the 1-based positions
// shown by the list command. Other errors are returned unchanged.
func PositionError(err error) error {
	var ie *errors.IndexError
	if !errors.As(err, &ie) {
		return err
	}
	return &positionError{index: ie}
}

type positionError struct {
	index *errors.IndexError
}

func (e *positionError) Error() string {
	if e.index.Len == 0 {
		return "the library is empty"
	}
	return fmt.Sprintf("no book at position %d, choose 1-%d", e.index.Index+1, e.index.Len)
}

func (e *positionError) Unwrap() error { return e.index }

// Fail reports err as an error alert with recovery hints and returns an
// error that the entry point exits on without printing again.
func Fail(app appcontext.Interface, command, message string, err error) error {
	ctx := hints.Context{Command: command, ErrorType: ErrorType(err)}
	if werr := app.Notifier().Error(message, err, ctx); werr != nil {
		return err
	}
	return &reportedError{err: err}
}

type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// IsReported reports whether err was already shown to the user by Fail.
func IsReported(err error) bool {
	var re *reportedError
	return errors.As(err, &re)
}

// ErrorType classifies err for hint selection.
func ErrorType(err error) string {
	switch {
	case errors.IsOutOfRange(err):
		return hints.ErrorOutOfRange
	case errors.IsValidationError(err):
		return hints.ErrorValidation
	case errors.IsCorrupted(err):
		return hints.ErrorCorrupted
	default:
		return ""
	}
}
