// Package constants provides shared constants used throughout the shelf codebase.
// This includes file names, permissions, limits, and formats that must stay
// consistent between the store, the CLI, and the interactive UI.
package constants

import "time"

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Path constants
const (
	// DefaultLibraryFile is the library document used when no path is configured
	DefaultLibraryFile = "library.json"

	// ConfigFileName is the config file name searched in $HOME and the working directory
	ConfigFileName = ".shelf"

	// EnvPrefix prefixes all shelf environment variables
	EnvPrefix = "SHELF"
)

// Format constants
const (
	// AddedDateLayout is the layout of the added_date field (%Y-%m-%d %H:%M:%S)
	AddedDateLayout = "2006-01-02 15:04:05"

	// JSONIndent is the indentation used when writing the library document
	JSONIndent = "  "
)

// Limit constants define various limits used by the catalog
const (
	// MinPublicationYear is the smallest year accepted when adding a book
	MinPublicationYear = 1000

	// DefaultPublicationYear pre-fills the year input of the add form
	DefaultPublicationYear = 2023

	// TopAuthorsLimit is the number of authors listed in the statistics view
	TopAuthorsLimit = 5

	// DecadeSpan is the width of a decade bucket
	DecadeSpan = 10

	// MaxTitleDisplayLength truncates long titles in table output
	MaxTitleDisplayLength = 48
)

// Timeout constants
const (
	// BannerFetchTimeout bounds the optional decorative banner download
	BannerFetchTimeout = 3 * time.Second

	// ShutdownTimeout bounds graceful shutdown after a failed command
	ShutdownTimeout = 5 * time.Second
)
