package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/shelf/cmd/shelf/cmd/add"
	"github.com/agentstation/shelf/cmd/shelf/cmd/completion"
	"github.com/agentstation/shelf/cmd/shelf/cmd/export"
	"github.com/agentstation/shelf/cmd/shelf/cmd/list"
	"github.com/agentstation/shelf/cmd/shelf/cmd/remove"
	"github.com/agentstation/shelf/cmd/shelf/cmd/search"
	"github.com/agentstation/shelf/cmd/shelf/cmd/stats"
	"github.com/agentstation/shelf/cmd/shelf/cmd/toggle"
	"github.com/agentstation/shelf/cmd/shelf/cmd/ui"
	"github.com/agentstation/shelf/cmd/shelf/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(add.NewCommand(a))
	rootCmd.AddCommand(remove.NewCommand(a))
	rootCmd.AddCommand(toggle.NewCommand(a))
	rootCmd.AddCommand(search.NewCommand(a))
	rootCmd.AddCommand(stats.NewCommand(a))
	rootCmd.AddCommand(ui.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(export.NewCommand(a))
	rootCmd.AddCommand(completion.NewCommand())

	rootCmd.AddCommand(version.NewCommand(a))
}
