// Package completion provides the completion command.
package completion

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/shelf/internal/cmd/completion"
	"github.com/agentstation/shelf/internal/cmd/constants"
)

// NewCommand creates the completion command. It replaces cobra's default
// completion command so scripts can also be installed.
func NewCommand() *cobra.Command {
	var install bool

	cmd := &cobra.Command{
		Use:     "completion SHELL",
		GroupID: "management",
		Short:   "Generate or install shell completions",
		Long: fmt.Sprintf(`Generate the autocompletion script for SHELL (%s).

To load completions in your current bash session:

  source <(shelf completion bash)

Use --install to write the script to your shell's completion directory
(bash, zsh and fish).`, strings.Join(constants.Shells, ", ")),
		Example: `  shelf completion zsh > "${fpath[1]}/_shelf"
  shelf completion fish --install`,
		Args:                  cobra.ExactArgs(1),
		ValidArgs:             constants.Shells,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := strings.ToLower(args[0])
			if !install {
				return completion.Generate(cmd.Root(), shell, cmd.OutOrStdout())
			}

			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("finding home directory: %w", err)
			}
			path, err := completion.Install(cmd.Root(), home, shell)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Installed %s completions to %s\n", shell, path)
			return err
		},
	}

	cmd.Flags().BoolVar(&install, "install", false, "install the script instead of printing it")

	return cmd
}
