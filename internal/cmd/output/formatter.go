// Package output writes command results to stdout in the selected format.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"

	"github.com/agentstation/shelf/internal/cmd/table"
)

// Format is an output format name.
type Format string

// Output formats accepted by --output.
const (
	FormatTable Format = "table"
	FormatWide  Format = "wide"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// IsTable reports whether f renders as a table.
func (f Format) IsTable() bool {
	return f == FormatTable || f == FormatWide || f == ""
}

// Write encodes data as JSON or YAML. Table formats accept table.Data and
// render anything else as JSON.
func Write(w io.Writer, format Format, data any) error {
	switch format {
	case FormatYAML:
		out, err := yaml.MarshalWithOptions(data, yaml.Indent(2), yaml.IndentSequence(false))
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case FormatJSON:
	default:
		if d, ok := data.(table.Data); ok {
			return d.Render(w)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// DetectFormat returns the explicit format, or table on a terminal and
// JSON when stdout is piped.
func DetectFormat(explicit string) Format {
	if explicit != "" {
		return Format(strings.ToLower(explicit))
	}
	if fd := os.Stdout.Fd(); isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return FormatTable
	}
	return FormatJSON
}

// ParseFormat validates a --output value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatTable, FormatWide, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("invalid format %q: must be one of: table, wide, json, yaml", s)
}
