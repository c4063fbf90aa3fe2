// Package logging configures the zerolog loggers used by shelf.
//
// A logger writes human-readable lines when it talks to a terminal and JSON
// everywhere else, so piping `shelf list -o json` into jq never mixes the two
// streams. Library code takes its logger from the context:
//
//	ctx := logging.WithLogger(ctx, logger)
//	logging.FromContext(ctx).Debug().Int("position", 3).Msg("Toggled read status")
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// consoleTime is the timestamp layout for console output.
const consoleTime = "15:04:05"

// Config describes a logger.
type Config struct {
	// Level is a zerolog level name. "warning" and "off" are accepted too.
	Level string

	// Format is "console", "json" or "auto" (console on a terminal).
	Format string

	// Output is "stderr", "stdout", "discard" or a file path.
	Output string

	NoColor bool

	// Caller adds file:line to each entry. Debug and trace always do.
	Caller bool
}

var current atomic.Pointer[zerolog.Logger]

func init() {
	logger, _, _ := New(Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		NoColor: os.Getenv("NO_COLOR") != "",
	})
	current.Store(&logger)
}

// Default returns the process-wide logger.
func Default() *zerolog.Logger {
	return current.Load()
}

// SetDefault replaces the process-wide logger, including zerolog's global log.Logger.
func SetDefault(logger zerolog.Logger) {
	current.Store(&logger)
	log.Logger = logger
}

// Configure builds a logger from cfg and makes it the default. A log file
// that cannot be opened falls back to stderr.
func Configure(cfg Config) {
	logger, _, _ := New(cfg)
	SetDefault(logger)
}

// New builds a logger from cfg. The returned closer releases the log file
// when Output names one; it is a no-op otherwise. If the file cannot be
// opened the logger writes to stderr and the error is returned alongside it.
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	out, closer, err := open(cfg.Output)

	level := ParseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(wrap(out, cfg)).Level(level).With().Timestamp().Logger()
	if cfg.Caller || level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	return logger, closer, err
}

// ParseLevel converts a level name to a zerolog level, defaulting to info.
func ParseLevel(name string) zerolog.Level {
	switch name = strings.ToLower(strings.TrimSpace(name)); name {
	case "":
		return zerolog.InfoLevel
	case "warning":
		return zerolog.WarnLevel
	case "off", "none":
		return zerolog.Disabled
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func open(output string) (io.Writer, io.Closer, error) {
	switch strings.ToLower(output) {
	case "", "stderr":
		return os.Stderr, io.NopCloser(nil), nil
	case "stdout":
		return os.Stdout, io.NopCloser(nil), nil
	case "discard", "none":
		return io.Discard, io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) // #nosec G304 - user-selected log file
	if err != nil {
		return os.Stderr, io.NopCloser(nil), fmt.Errorf("opening log file: %w", err)
	}
	return f, f, nil
}

func wrap(out io.Writer, cfg Config) io.Writer {
	switch strings.ToLower(cfg.Format) {
	case "json":
		return out
	case "console", "pretty":
	default:
		if !isTerminal(out) {
			return out
		}
	}
	return zerolog.ConsoleWriter{Out: out, TimeFormat: consoleTime, NoColor: cfg.NoColor}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
