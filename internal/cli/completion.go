// Package cli provides the completion subcommand for netcarve.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// NewCompletionCmd creates the completion subcommand with shell-specific subcommands.
func NewCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for netcarve.

To load completions:

Bash:
  $ source <(netcarve completion bash)

Zsh:
  $ source <(netcarve completion zsh)

Fish:
  $ netcarve completion fish | source`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			}
			return nil
		},
	}

	return cmd
}
