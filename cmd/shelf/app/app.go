// Package app wires configuration, logging and the library store into the
// shelf command tree.
package app

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/shelf/internal/appcontext"
	"github.com/agentstation/shelf/internal/cmd/notify"
	"github.com/agentstation/shelf/internal/cmd/output"
	"github.com/agentstation/shelf/pkg/books"
	"github.com/agentstation/shelf/pkg/errors"
	"github.com/agentstation/shelf/pkg/logging"
	"github.com/agentstation/shelf/pkg/store"
)

// App represents the shelf application with all its dependencies.
type App struct {
	version string
	commit  string
	date    string
	builtBy string

	config  *Config
	logger  *zerolog.Logger
	logFile io.Closer
	stdout  io.Writer
	stderr  io.Writer

	mu     sync.Mutex
	lib    *books.Library
	libErr error
	opened bool
}

// New creates a new App instance with the given version information and options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	config, err := LoadConfig("")
	if err != nil {
		return nil, err
	}

	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		config:  config,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		app.setLogger(NewLogger(app.config, app.stderr))
	}

	return app, nil
}

// Option is a function that configures an App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return errors.NewConfigError("config", "cannot be nil", nil)
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithOutput redirects command data and notifications.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *App) error {
		if stdout != nil {
			a.stdout = stdout
		}
		if stderr != nil {
			a.stderr = stderr
		}
		return nil
	}
}

// Config returns the active configuration.
func (a *App) Config() *Config {
	return a.config
}

// Library opens the library on first use. With --dry-run the file is read
// into memory and never written. A corrupted file yields an empty library
// along with the CorruptedError.
func (a *App) Library(ctx context.Context) (*books.Library, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.opened {
		return a.lib, a.libErr
	}

	ctx = logging.WithLibrary(logging.WithLogger(ctx, a.logger), a.config.LibraryPath)
	a.lib, a.libErr = a.openLibrary(ctx)
	a.opened = true
	return a.lib, a.libErr
}

func (a *App) openLibrary(ctx context.Context) (*books.Library, error) {
	var (
		st      books.Persister
		loadErr error
	)

	if a.config.DryRun {
		mem, err := store.Snapshot(ctx, a.config.LibraryPath, store.WithLogger(a.logger))
		if mem == nil {
			return nil, err
		}
		st, loadErr = mem, err
		a.logger.Debug().Str("path", a.config.LibraryPath).Msg("Dry run, changes will not be saved")
	} else {
		fs, err := store.Open(a.config.LibraryPath, store.WithLogger(a.logger))
		if err != nil {
			return nil, err
		}
		st = fs
	}

	lib, err := books.Open(ctx, st)
	if err != nil {
		return lib, err
	}
	return lib, loadErr
}

// setLogger installs logger, closing the log file of the previous one.
func (a *App) setLogger(logger zerolog.Logger, closer io.Closer) {
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
	a.logger = &logger
	a.logFile = closer
}

// RedirectLogs points the logger away from the terminal for the
// interactive UI. It must be called before the library is opened.
func (a *App) RedirectLogs() (io.Closer, error) {
	logger, closer, err := NewFileLogger(a.config)
	if err != nil {
		return closer, err
	}
	a.setLogger(logger, nil)
	logging.SetDefault(logger)
	return closer, nil
}

// LibraryPath returns the configured library file.
func (a *App) LibraryPath() string {
	return a.config.LibraryPath
}

// Logger returns the configured logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured or detected output format.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format))
}

// Notifier returns a notifier writing to stderr.
func (a *App) Notifier() *notify.Notifier {
	cfg := notify.DefaultConfig()
	cfg.Format = output.Format(a.OutputFormat())
	cfg.ShowHints = cfg.ShowHints && !a.config.Quiet
	cfg.Writer = a.stderr
	cfg.UseColor = !a.config.NoColor
	return notify.New(cfg)
}

// Stdout returns where command data is written.
func (a *App) Stdout() io.Writer {
	return a.stdout
}

// BannerURL returns the decorative banner location.
func (a *App) BannerURL() string {
	return a.config.BannerURL
}

// NoColor reports whether colors are disabled.
func (a *App) NoColor() bool {
	return a.config.NoColor
}

// Version returns the application version.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Shutdown closes the log file. Every mutation is saved as it happens, so
// there is nothing to flush.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Debug().Msg("Shutting down shelf")

	if err := ctx.Err(); err != nil {
		return err
	}
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

var _ appcontext.Interface = (*App)(nil)
