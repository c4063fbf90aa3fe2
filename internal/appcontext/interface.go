// Package appcontext provides the shared application context interface
// used by all commands. This eliminates interface duplication across
// command packages and provides a single source of truth for app dependencies.
package appcontext

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/agentstation/shelf/internal/cmd/notify"
	"github.com/agentstation/shelf/pkg/books"
)

// Interface defines the application context interface that commands need.
// The App struct from cmd/shelf/app implements this interface, providing
// dependency injection for commands while maintaining testability.
type Interface interface {
	// Library returns the library, opening it on first use. When the file
	// was corrupted the library is usable (and empty) and the returned
	// error matches errors.ErrCorrupted.
	Library(ctx context.Context) (*books.Library, error)

	// LibraryPath returns the configured library file.
	LibraryPath() string

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, wide, json, yaml).
	OutputFormat() string

	// Notifier returns the alert and hint writer for the current command.
	Notifier() *notify.Notifier

	// Stdout returns where command data is written.
	Stdout() io.Writer

	// BannerURL returns the decorative banner location, empty when disabled.
	BannerURL() string

	// NoColor reports whether colors are disabled.
	NoColor() bool

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
