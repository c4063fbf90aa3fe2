// Package constants provides shared constants for CLI commands.
package constants

// Export format constants.
const (
	// FormatCSV writes comma-separated values with a header row.
	FormatCSV = "csv"

	// FormatJSON writes the same document as the library file.
	FormatJSON = "json"

	// FormatYAML writes the collection as a YAML sequence.
	FormatYAML = "yaml"
)

// ExportFormats lists the formats accepted by the export command.
var ExportFormats = []string{FormatCSV, FormatJSON, FormatYAML}

// Shell type constants for completion commands.
const (
	// ShellBash represents the Bash shell.
	ShellBash = "bash"

	// ShellZsh represents the Zsh shell.
	ShellZsh = "zsh"

	// ShellFish represents the Fish shell.
	ShellFish = "fish"

	// ShellPowerShell represents PowerShell.
	ShellPowerShell = "powershell"
)

// Shells lists the shells completion scripts can be generated for.
var Shells = []string{ShellBash, ShellZsh, ShellFish, ShellPowerShell}
