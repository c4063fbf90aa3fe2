// Package notify writes alerts and the hints that follow them.
package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/agentstation/shelf/internal/cmd/alerts"
	"github.com/agentstation/shelf/internal/cmd/hints"
	"github.com/agentstation/shelf/internal/cmd/output"
)

// ciVars mark a non-interactive run where hints are noise.
var ciVars = []string{"CI", "CONTINUOUS_INTEGRATION", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "BUILDKITE"}

// Config controls what a Notifier writes.
type Config struct {
	Format     output.Format
	ShowHints  bool
	ShowAlerts bool
	MaxHints   int
	Writer     io.Writer // defaults to stderr
	UseColor   bool
}

// DefaultConfig shows alerts and a single hint, in color, on stderr.
// Hints are off under CI.
func DefaultConfig() Config {
	return Config{
		Format:     output.FormatTable,
		ShowHints:  !inCI(),
		ShowAlerts: true,
		MaxHints:   1,
		Writer:     os.Stderr,
		UseColor:   true,
	}
}

// Notifier reports the outcome of a command.
type Notifier struct {
	cfg      Config
	printer  *alerts.Printer
	registry *hints.Registry
}

// New returns a Notifier for cfg.
func New(cfg Config) *Notifier {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	p := alerts.NewPrinter(cfg.Writer, cfg.Format)
	p.Color = cfg.UseColor
	return &Notifier{cfg: cfg, printer: p, registry: hints.Shelf(cfg.MaxHints)}
}

// Success reports a completed operation. ctx.Succeeded is set for the caller.
func (n *Notifier) Success(message string, ctx hints.Context) error {
	ctx.Succeeded = true
	return n.send(alerts.NewSuccess(message), ctx)
}

// Error reports a failed operation and its cause.
func (n *Notifier) Error(message string, err error, ctx hints.Context) error {
	return n.send(alerts.NewError(message).WithError(err), ctx)
}

// Warning reports a recoverable problem.
func (n *Notifier) Warning(message string, ctx hints.Context) error {
	return n.send(alerts.NewWarning(message), ctx)
}

// Info reports a neutral outcome.
func (n *Notifier) Info(message string, ctx hints.Context) error {
	return n.send(alerts.NewInfo(message), ctx)
}

// Hints writes the hints for ctx without an alert.
func (n *Notifier) Hints(ctx hints.Context) error {
	if !n.cfg.ShowHints {
		return nil
	}
	return hints.Display(n.cfg.Writer, n.cfg.Format, n.registry.For(ctx))
}

func (n *Notifier) send(a *alerts.Alert, ctx hints.Context) error {
	if n.cfg.ShowAlerts {
		if err := n.printer.Print(a); err != nil {
			return fmt.Errorf("writing alert: %w", err)
		}
	}
	return n.Hints(ctx)
}

func inCI() bool {
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}
