package cli

import (
	"io"

	"github.com/arthur-debert/makky/pkg/errors"
	"github.com/spf13/cobra"
)

// GenCompletion writes the completion script for shell
func GenCompletion(rootCmd *cobra.Command, shell string, w io.Writer) error {
	var err error
	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletionV2(w, true)
	case "zsh":
		err = rootCmd.GenZshCompletion(w)
	case "fish":
		err = rootCmd.GenFishCompletion(w, true)
	case "powershell":
		err = rootCmd.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.Newf(errors.ErrInvalidInput,
			"unknown shell: %s (supported: bash, zsh, fish, powershell)", shell)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "generate %s completion", shell)
	}
	return nil
}
