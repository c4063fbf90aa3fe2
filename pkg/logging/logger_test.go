package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreGlobals(t *testing.T) {
	t.Helper()
	original := *Default()
	level := zerolog.GlobalLevel()
	t.Cleanup(func() {
		SetDefault(original)
		zerolog.SetGlobalLevel(level)
	})
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"trace":   zerolog.TraceLevel,
		" DEBUG ": zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"loud":    zerolog.InfoLevel,
	}
	for name, want := range tests {
		assert.Equal(t, want, ParseLevel(name), "level %q", name)
	}
}

func TestNewWritesJSONToFile(t *testing.T) {
	restoreGlobals(t)
	path := filepath.Join(t.TempDir(), "shelf.log")

	logger, closer, err := New(Config{Level: "warn", Format: "auto", Output: path})
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	logger.Info().Msg("hidden")
	logger.Warn().Str("title", "Dune").Msg("Library reset")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), `"title":"Dune"`)
	assert.Contains(t, string(data), `"message":"Library reset"`)
}

func TestNewFallsBackToStderr(t *testing.T) {
	restoreGlobals(t)
	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "shelf.log")

	_, closer, err := New(Config{Output: missing})
	assert.ErrorContains(t, err, "opening log file")
	assert.NoError(t, closer.Close())
}

func TestWrap(t *testing.T) {
	var buf bytes.Buffer

	assert.Same(t, &buf, wrap(&buf, Config{Format: "auto"}))
	assert.Same(t, &buf, wrap(&buf, Config{Format: "json"}))

	cw, ok := wrap(&buf, Config{Format: "console", NoColor: true}).(zerolog.ConsoleWriter)
	require.True(t, ok)
	assert.True(t, cw.NoColor)
	assert.Equal(t, consoleTime, cw.TimeFormat)
}

func TestOpenNamedOutputs(t *testing.T) {
	w, _, err := open("discard")
	require.NoError(t, err)
	assert.Equal(t, io.Discard, w)

	w, _, err = open("STDOUT")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, w)
}

func TestConfigure(t *testing.T) {
	restoreGlobals(t)

	Configure(Config{Level: "error", Output: "discard"})
	assert.Equal(t, zerolog.ErrorLevel, Default().GetLevel())
}
