package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for cygconv.

To load completions:

Bash:
  # Option 1: Install permanently (requires sudo)
  $ sudo mkdir -p /etc/bash_completion.d
  $ cygconv completion bash | sudo tee /etc/bash_completion.d/cygconv >/dev/null

  # Option 2: Load on shell startup (add to ~/.bashrc)
  $ source <(cygconv completion bash)

Zsh:
  # Option 1: Install permanently (requires sudo)
  $ sudo mkdir -p /usr/local/share/zsh/site-functions
  $ cygconv completion zsh | sudo tee /usr/local/share/zsh/site-functions/_cygconv >/dev/null

  # Option 2: Load on shell startup (add to ~/.zshrc)
  $ source <(cygconv completion zsh)

  # Note: If shell completion is not already enabled:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

Fish:
  $ cygconv completion fish > ~/.config/fish/completions/cygconv.fish

PowerShell:
  PS> cygconv completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
	return cmd
}
