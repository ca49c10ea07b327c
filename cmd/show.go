package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/cli"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/cli/handlers"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single entry",
	Long: `Show the full details of a single work entry by id.

Example:
  sharptime show 3f2a1b`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowEntry(cli.GetDeps(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
