// Package completion generates and installs shell completion scripts.
package completion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentstation/shelf/internal/cmd/constants"
	pkgconstants "github.com/agentstation/shelf/pkg/constants"
	"github.com/agentstation/shelf/pkg/errors"
)

// Generate writes the completion script for shell to w.
func Generate(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case constants.ShellBash:
		return root.GenBashCompletionV2(w, true)
	case constants.ShellZsh:
		return root.GenZshCompletion(w)
	case constants.ShellFish:
		return root.GenFishCompletion(w, true)
	case constants.ShellPowerShell:
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.NewValidationError("shell", shell, fmt.Sprintf("must be one of %v", constants.Shells))
	}
}

// Path returns where the completion script for shell is installed,
// relative to home.
func Path(home, shell string) (string, error) {
	switch shell {
	case constants.ShellBash:
		return filepath.Join(home, ".local", "share", "bash-completion", "completions", "shelf"), nil
	case constants.ShellZsh:
		return filepath.Join(home, ".zsh", "completions", "_shelf"), nil
	case constants.ShellFish:
		return filepath.Join(home, ".config", "fish", "completions", "shelf.fish"), nil
	default:
		return "", errors.NewValidationError("shell", shell, "cannot be installed automatically")
	}
}

// Install writes the completion script for shell into the user's
// completion directory and returns the path written.
func Install(root *cobra.Command, home, shell string) (string, error) {
	target, err := Path(home, shell)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(target), pkgconstants.DirPermissions); err != nil {
		return "", errors.WrapIO("create", filepath.Dir(target), err)
	}

	file, err := os.Create(target) // #nosec G304 - path is built by Path
	if err != nil {
		return "", errors.WrapIO("create", target, err)
	}

	if err := Generate(root, shell, file); err != nil {
		_ = file.Close()
		return "", fmt.Errorf("generating %s completion: %w", shell, err)
	}
	if err := file.Close(); err != nil {
		return "", errors.WrapIO("write", target, err)
	}
	return target, nil
}
