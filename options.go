package shelf

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/shelf/pkg/books"
	"github.com/agentstation/shelf/pkg/constants"
	"github.com/agentstation/shelf/pkg/errors"
	"github.com/agentstation/shelf/pkg/logging"
)

// Option is a function that configures a Shelf instance
type Option func(*config) error

// config holds the configuration for a Shelf instance
type config struct {
	path     string
	store    books.Persister
	now      func() time.Time
	logger   *zerolog.Logger
	validate bool
}

func defaultConfig() *config {
	return &config{
		path:     constants.DefaultLibraryFile,
		now:      time.Now,
		logger:   logging.Default(),
		validate: true,
	}
}

// WithLibraryPath sets the library document. A .yaml or .yml extension
// selects YAML.
func WithLibraryPath(path string) Option {
	return func(c *config) error {
		if path == "" {
			return errors.NewValidationError("path", path, "cannot be empty")
		}
		c.path = path
		return nil
	}
}

// WithStore replaces the file store, for example with store.NewMemory().
func WithStore(p books.Persister) Option {
	return func(c *config) error {
		if p == nil {
			return errors.NewValidationError("store", nil, "cannot be nil")
		}
		c.store = p
		return nil
	}
}

// WithClock sets the clock used to stamp added_date and bound the
// publication year.
func WithClock(now func() time.Time) Option {
	return func(c *config) error {
		if now == nil {
			return errors.NewValidationError("clock", nil, "cannot be nil")
		}
		c.now = now
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		if logger != nil {
			c.logger = logger
		}
		return nil
	}
}

// WithValidation turns input validation in Add on or off. It is on by
// default; turning it off allows importing records the add form would
// reject.
func WithValidation(enabled bool) Option {
	return func(c *config) error {
		c.validate = enabled
		return nil
	}
}

func (c *config) apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}
