package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/shelf/internal/cmd/hints"
	"github.com/agentstation/shelf/internal/cmd/output"
	"github.com/agentstation/shelf/pkg/errors"
)

func newTestNotifier(buf *bytes.Buffer, showHints bool) *Notifier {
	return New(Config{
		Format:     output.FormatTable,
		ShowHints:  showHints,
		ShowAlerts: true,
		MaxHints:   1,
		Writer:     buf,
	})
}

func TestSuccessWithHint(t *testing.T) {
	var buf bytes.Buffer
	n := newTestNotifier(&buf, true)

	require.NoError(t, n.Success("Book added successfully!", hints.Context{Command: "add", Books: 1}))
	out := buf.String()
	assert.Contains(t, out, "Book added successfully!")
	assert.Contains(t, out, "Run: shelf list")
}

func TestErrorWithHint(t *testing.T) {
	var buf bytes.Buffer
	n := newTestNotifier(&buf, true)

	err := errors.NewIndexError("remove", 7, 2)
	require.NoError(t, n.Error("Book not removed", err, hints.Context{Command: "remove", ErrorType: hints.ErrorOutOfRange}))
	out := buf.String()
	assert.Contains(t, out, "Book not removed: ")
	assert.Contains(t, out, "Positions are the # column")
}

func TestHintsDisabled(t *testing.T) {
	var buf bytes.Buffer
	n := newTestNotifier(&buf, false)

	require.NoError(t, n.Info("Your library is empty.", hints.Context{Command: "list", Succeeded: true}))
	assert.Equal(t, "i Your library is empty.\n", buf.String())
}

func TestAlertsDisabled(t *testing.T) {
	var buf bytes.Buffer
	n := New(Config{Format: output.FormatJSON, Writer: &buf})

	require.NoError(t, n.Warning("ignored", hints.Context{}))
	assert.Empty(t, buf.String())
}
