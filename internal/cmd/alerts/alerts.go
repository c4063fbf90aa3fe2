// Package alerts holds the status messages shelf shows after an operation,
// such as "Book added successfully!" or "Your library is empty.". The CLI
// prints them on stderr so stdout only carries data; the interactive UI
// keeps the latest one in its status line.
package alerts

import (
	"fmt"
	"io"

	"github.com/agentstation/shelf/internal/cmd/emoji"
	"github.com/agentstation/shelf/internal/cmd/output"
)

// Level is the severity of an alert.
type Level int

// Alert levels, most severe first.
const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
	LevelSuccess
)

var levels = [...]struct {
	name, icon, ansi string
}{
	LevelError:   {"error", emoji.Error, "\033[31m"},
	LevelWarning: {"warning", emoji.Warning, "\033[33m"},
	LevelInfo:    {"info", emoji.Info, "\033[36m"},
	LevelSuccess: {"success", emoji.Success, "\033[32m"},
}

func (l Level) valid() bool { return l >= 0 && int(l) < len(levels) }

func (l Level) String() string {
	if !l.valid() {
		return fmt.Sprintf("unknown(%d)", int(l))
	}
	return levels[l].name
}

// Icon returns the symbol printed before the message.
func (l Level) Icon() string {
	if !l.valid() {
		return "?"
	}
	return levels[l].icon
}

// Alert is a single status message, optionally caused by an error.
type Alert struct {
	Level   Level
	Message string
	Err     error
}

// NewError returns an error alert.
func NewError(message string) *Alert { return &Alert{Level: LevelError, Message: message} }

// NewWarning returns a warning alert.
func NewWarning(message string) *Alert { return &Alert{Level: LevelWarning, Message: message} }

// NewInfo returns an info alert.
func NewInfo(message string) *Alert { return &Alert{Level: LevelInfo, Message: message} }

// NewSuccess returns a success alert.
func NewSuccess(message string) *Alert { return &Alert{Level: LevelSuccess, Message: message} }

// WithError attaches the cause and returns a.
func (a *Alert) WithError(err error) *Alert {
	a.Err = err
	return a
}

// String renders the alert as "<icon> message[: cause]".
func (a *Alert) String() string {
	s := a.Level.Icon() + " " + a.Message
	if a.Err != nil {
		s += ": " + a.Err.Error()
	}
	return s
}

// record is the structured form written with --output json|yaml.
type record struct {
	Level   string `json:"level" yaml:"level"`
	Message string `json:"message" yaml:"message"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Printer writes alerts to a stream.
type Printer struct {
	w      io.Writer
	format output.Format

	// Color wraps plain alerts in ANSI colors.
	Color bool
}

// NewPrinter returns a Printer for w. Table formats print one line per
// alert; JSON and YAML print a record.
func NewPrinter(w io.Writer, format output.Format) *Printer {
	return &Printer{w: w, format: format}
}

// Print writes a single alert.
func (p *Printer) Print(a *Alert) error {
	if !p.format.IsTable() {
		r := record{Level: a.Level.String(), Message: a.Message}
		if a.Err != nil {
			r.Error = a.Err.Error()
		}
		return output.Write(p.w, p.format, r)
	}

	line := a.String()
	if p.Color && a.Level.valid() {
		line = levels[a.Level].ansi + line + "\033[0m"
	}
	_, err := fmt.Fprintln(p.w, line)
	return err
}
