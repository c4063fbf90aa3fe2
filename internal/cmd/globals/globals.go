// Package globals provides the persistent flags shared by every command.
package globals

import "github.com/spf13/cobra"

// Flags holds global common flags across all commands.
type Flags struct {
	Config   string
	Library  string
	Format   string
	LogLevel string
	Quiet    bool
	Verbose  bool
	NoColor  bool
	DryRun   bool
}

// AddFlags adds the persistent flags to the root command.
func AddFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}
	pf := cmd.PersistentFlags()

	pf.StringVar(&flags.Config, "config", "",
		"config file (default is $HOME/.shelf.yaml)")
	pf.StringVarP(&flags.Library, "library", "l", "",
		"library file (default is library.json)")
	pf.StringVarP(&flags.Format, "format", "o", "",
		"output format: table, wide, json, yaml")
	pf.StringVar(&flags.LogLevel, "log-level", "",
		"log level: trace, debug, info, warn, error (overrides -v/-q)")
	pf.BoolVarP(&flags.Quiet, "quiet", "q", false,
		"minimal output (shortcut for --log-level=warn)")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false,
		"verbose output (shortcut for --log-level=debug)")
	pf.BoolVar(&flags.NoColor, "no-color", false,
		"disable colored output")
	pf.BoolVar(&flags.DryRun, "dry-run", false,
		"apply changes in memory only, leaving the library file untouched")

	return flags
}

// Parse extracts global flags from the command hierarchy.
// This is useful for subcommands that were not handed the Flags struct.
func Parse(cmd *cobra.Command) *Flags {
	root := cmd.Root()
	pf := root.PersistentFlags()

	config, _ := pf.GetString("config")
	library, _ := pf.GetString("library")
	format, _ := pf.GetString("format")
	logLevel, _ := pf.GetString("log-level")
	quiet, _ := pf.GetBool("quiet")
	verbose, _ := pf.GetBool("verbose")
	noColor, _ := pf.GetBool("no-color")
	dryRun, _ := pf.GetBool("dry-run")

	return &Flags{
		Config:   config,
		Library:  library,
		Format:   format,
		LogLevel: logLevel,
		Quiet:    quiet,
		Verbose:  verbose,
		NoColor:  noColor,
		DryRun:   dryRun,
	}
}
