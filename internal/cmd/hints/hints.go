// Package hints suggests the next shelf command after an operation.
package hints

import (
	"fmt"
	"io"

	"github.com/agentstation/shelf/internal/cmd/output"
)

// Hint is a suggestion, optionally with a command to run.
type Hint struct {
	Message string `json:"message" yaml:"message"`
	Command string `json:"command,omitempty" yaml:"command,omitempty"`
}

func (h Hint) String() string {
	if h.Command == "" {
		return "Hint: " + h.Message
	}
	return fmt.Sprintf("Hint: %s\n   Run: %s", h.Message, h.Command)
}

// Context describes the operation that just ran.
type Context struct {
	Command   string // add, list, remove, ...
	Succeeded bool
	ErrorType string // one of the Error* constants when the command failed
	Books     int    // library size after the command
	Matches   int    // search results
}

// Provider returns the hints that apply to ctx.
type Provider func(ctx Context) []Hint

// Registry collects hints from its providers in registration order.
type Registry struct {
	providers []Provider
	limit     int
}

// NewRegistry returns a registry that yields at most limit hints, or all
// of them when limit is zero.
func NewRegistry(limit int, providers ...Provider) *Registry {
	return &Registry{providers: providers, limit: limit}
}

// For returns the hints for ctx.
func (r *Registry) For(ctx Context) []Hint {
	var out []Hint
	for _, p := range r.providers {
		out = append(out, p(ctx)...)
		if r.limit > 0 && len(out) >= r.limit {
			return out[:r.limit]
		}
	}
	return out
}

// Display writes hints after a blank line, or as a {hints: [...]} document
// for structured formats. Nothing is written for an empty list.
func Display(w io.Writer, format output.Format, list []Hint) error {
	if len(list) == 0 {
		return nil
	}
	if !format.IsTable() {
		return output.Write(w, format, struct {
			Hints []Hint `json:"hints" yaml:"hints"`
		}{list})
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, h := range list {
		if _, err := fmt.Fprintln(w, h); err != nil {
			return err
		}
	}
	return nil
}
