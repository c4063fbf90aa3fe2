package app

import (
	"fmt"
	"io"
	"slices"

	"github.com/rs/zerolog"

	"github.com/agentstation/shelf/pkg/logging"
)

var validLogLevels = []string{"trace", "debug", "info", "warn", "error"}

// NewLogger creates a configured logger based on the application configuration.
// Log level precedence (highest to lowest):
//  1. --log-level flag (explicit always wins)
//  2. LOG_LEVEL environment variable or log_level config key
//  3. -v/--verbose flag (shortcut for debug)
//  4. -q/--quiet flag (shortcut for warn)
//  5. Default (info)
//
// The closer releases the log file when LOG_OUTPUT names one.
func NewLogger(config *Config, warnings io.Writer) (zerolog.Logger, io.Closer) {
	logger, closer, err := logging.New(logging.Config{
		Level:   determineLogLevel(config, warnings),
		Format:  config.LogFormat,
		Output:  config.LogOutput,
		NoColor: config.NoColor,
	})
	if err != nil {
		fmt.Fprintf(warnings, "Warning: %v, logging to stderr\n", err)
	}
	return logger, closer
}

// NewFileLogger creates a logger for the interactive UI, which owns the
// terminal. Logs go to LOG_OUTPUT as JSON when it names a file and are
// discarded otherwise.
func NewFileLogger(config *Config) (zerolog.Logger, io.Closer, error) {
	switch config.LogOutput {
	case "", "stderr", "stdout":
		return zerolog.Nop(), io.NopCloser(nil), nil
	}

	logger, closer, err := logging.New(logging.Config{
		Level:  determineLogLevel(config, io.Discard),
		Format: "json",
		Output: config.LogOutput,
	})
	if err != nil {
		_ = closer.Close()
		return zerolog.Nop(), io.NopCloser(nil), err
	}
	return logger, closer, nil
}

// determineLogLevel determines the log level using clear precedence rules.
func determineLogLevel(config *Config, warnings io.Writer) string {
	if config.LogLevel != "" {
		validated := validateLogLevel(config.LogLevel)
		if validated != config.LogLevel {
			fmt.Fprintf(warnings, "Warning: invalid log level %q, using %q\n", config.LogLevel, validated)
		}
		return validated
	}

	if config.Verbose && config.Quiet {
		fmt.Fprintf(warnings, "Warning: both --verbose and --quiet specified, using --quiet\n")
		return "warn"
	}

	if config.Verbose {
		return "debug"
	}
	if config.Quiet {
		return "warn"
	}

	return "info"
}

// validateLogLevel validates a log level string and returns a valid level.
// If the input is invalid, returns "info" as a safe default.
func validateLogLevel(level string) string {
	if slices.Contains(validLogLevels, level) {
		return level
	}
	return "info"
}
