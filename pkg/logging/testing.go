package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// Recorder is a JSON logger whose entries a test can inspect.
type Recorder struct {
	Logger *zerolog.Logger
	buf    bytes.Buffer
}

// NewRecorder returns a Recorder that accepts every level. The global
// level is lowered for the duration of the test.
func NewRecorder(t testing.TB) *Recorder {
	t.Helper()

	previous := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })

	r := &Recorder{}
	logger := zerolog.New(&r.buf).Level(zerolog.TraceLevel)
	r.Logger = &logger
	return r
}

// String returns the raw log output.
func (r *Recorder) String() string {
	return r.buf.String()
}

// Entries decodes each logged line. Lines that are not JSON are skipped.
func (r *Recorder) Entries() []map[string]any {
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(r.buf.String()), "\n") {
		var entry map[string]any
		if json.Unmarshal([]byte(line), &entry) == nil {
			entries = append(entries, entry)
		}
	}
	return entries
}

// AssertContains fails t when no entry contains substr.
func (r *Recorder) AssertContains(t testing.TB, substr string) {
	t.Helper()
	if !strings.Contains(r.String(), substr) {
		t.Errorf("log does not contain %q\n%s", substr, r.String())
	}
}

// Nop returns a logger that discards everything.
func Nop() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}
