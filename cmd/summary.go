package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/cli"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/cli/handlers"
)

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the compliance summary",
	Long: `Compute the compliance summary for the entries in view.

Each person gets one line per date with the daily total checked against
the daily target, followed by an aggregate line checked against the
weekly target. The aggregate bucketing (all-time or ISO week) comes from
the week_grouping configuration setting.

The root filter flags narrow the entries in view:

Examples:
  sharptime summary                       Summarize all entries
  sharptime summary --person Alice        Summarize Alice's entries
  sharptime summary --date 2025-01-10     Summarize a single day`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		f, ok := buildFilter(cmd)
		if !ok {
			return
		}
		handlers.ShowSummary(cli.GetDeps(), f)
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
