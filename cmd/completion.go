package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/cli"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for sharptime.

The completion command allows you to generate shell completion scripts for
bash, zsh, fish, and powershell. This enables tab-completion for commands,
flags, and arguments in your shell.

Usage:
  sharptime completion bash       Generate bash completion script
  sharptime completion zsh        Generate zsh completion script
  sharptime completion fish       Generate fish completion script
  sharptime completion powershell Generate powershell completion script

Installation Instructions:

Bash:
  # Load completion temporarily (current session only):
  source <(sharptime completion bash)

  # Install completion permanently:
  # Linux:
  sharptime completion bash > ~/.local/share/bash-completion/completions/sharptime

  # macOS (requires bash-completion from Homebrew):
  sharptime completion bash > $(brew --prefix)/etc/bash_completion.d/sharptime

Zsh:
  # Load completion temporarily (current session only):
  source <(sharptime completion zsh)

  # Install completion permanently:
  mkdir -p ~/.zsh/completion
  sharptime completion zsh > ~/.zsh/completion/_sharptime

Fish:
  # Install completion permanently:
  sharptime completion fish > ~/.config/fish/completions/sharptime.fish

PowerShell:
  # Add this line to your PowerShell profile:
  sharptime completion powershell | Out-String | Invoke-Expression`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// generateCompletion generates the appropriate completion script based on shell type
func generateCompletion(shell string) {
	deps := cli.GetDeps()

	var err error
	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletion(deps.Stdout)
	case "zsh":
		err = rootCmd.GenZshCompletion(deps.Stdout)
	case "fish":
		err = rootCmd.GenFishCompletion(deps.Stdout, true)
	case "powershell":
		err = rootCmd.GenPowerShellCompletionWithDesc(deps.Stdout)
	default:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Unsupported shell '%s'\n", shell)
		_, _ = fmt.Fprintln(deps.Stderr, "Supported shells: bash, zsh, fish, powershell")
		deps.Exit(1)
		return
	}

	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to generate %s completion: %v\n", shell, err)
		deps.Exit(1)
		return
	}
}
