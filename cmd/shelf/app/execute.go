package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/agentstation/shelf/internal/cmd/cmdutil"
	"github.com/agentstation/shelf/internal/cmd/globals"
)

// Execute runs the shelf CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "shelf",
		Short:   "Personal library catalog",
		Version: a.version,
		Long: `Shelf keeps a catalog of the books you own in a single JSON file.

Add, remove and search books, mark them read or unread, and see statistics
about your collection from the command line or the interactive UI.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands:",
	})

	globals.AddFlags(rootCmd)

	rootCmd.SetVersionTemplate("shelf {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	flags := globals.Parse(cmd)

	if flags.Config != "" {
		config, err := LoadConfig(flags.Config)
		if err != nil {
			return err
		}
		a.config = config
	}

	a.config.UpdateFromFlags(flags)

	// Reinitialize logger with updated config
	a.setLogger(NewLogger(a.config, a.stderr))

	a.logger.Debug().
		Str("command", cmd.CommandPath()).
		Str("library", a.config.LibraryPath).
		Bool("dry_run", a.config.DryRun).
		Msg("Running command")

	return nil
}

// ContextWithSignals returns a context cancelled on SIGINT or SIGTERM.
func ContextWithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

// ExitOnError exits with status 1, printing err unless a command already
// reported it.
func ExitOnError(err error) {
	if err == nil {
		return
	}
	if !cmdutil.IsReported(err) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(1)
}
