// Package emoji provides symbol constants for CLI output.
package emoji

// Symbols shared by alerts, tables and the interactive UI.
const (
	// Success marks a completed operation.
	Success = "✓"

	// Error marks a failed operation.
	Error = "✗"

	// Warning marks a recoverable problem, such as a reset library.
	Warning = "!"

	// Info marks neutral messages like "Your library is empty."
	Info = "i"

	// Read marks a book that has been read.
	Read = "●"

	// Unread marks a book that has not been read.
	Unread = "○"

	// Missing stands in for an empty cell.
	Missing = "-"
)
