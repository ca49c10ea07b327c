package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/cli"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/cli/handlers"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and manage configuration",
	Long: `View and manage the sharptime configuration.

Without a subcommand, displays the current configuration values and
whether they come from a config file or from defaults.

Examples:
  sharptime config         Show current configuration
  sharptime config init    Create a sample config file
  sharptime config path    Print the config file path`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowConfig(cli.GetDeps())
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Long:  `Create a sample config file with all settings commented out at their defaults.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.InitConfig(cli.GetDeps())
	},
}

// configPathCmd represents the config path command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		deps := cli.GetDeps()
		_, _ = fmt.Fprintln(deps.Stdout, deps.Services.Config.GetPath())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}
