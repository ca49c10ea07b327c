package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/cli"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/cli/handlers"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/entry"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/filter"
)

var rootCmd = &cobra.Command{
	Use:   "sharptime",
	Short: "A timesheet tracking and compliance CLI",
	Long: `sharptime is a CLI tool for logging work entries per person and day,
and checking the log against daily and weekly compliance targets.

Usage:
  sharptime                                     List all entries
  sharptime --person Alice                      List Alice's entries
  sharptime add --person Alice --start 09:00 --end 17:00
  sharptime add --person Bob --duration 0:45
  sharptime edit <id> --duration 2:00           Edit an entry (within the edit window)
  sharptime summary                             Show the compliance summary
  sharptime validate                            Check storage file health
  sharptime restore [n]                         Restore from backup (default: most recent)

Duration format: H:MM (hours, colon, two-digit minutes)
Examples: 8:00, 0:45, 1:30`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if CheckTUIFlag(cmd) {
			return
		}
		f, ok := buildFilter(cmd)
		if !ok {
			return
		}
		handlers.ListEntries(cli.GetDeps(), f)
	},
}

func init() {
	rootCmd.PersistentFlags().String("person", "", "Filter by person (case-insensitive)")
	rootCmd.PersistentFlags().String("date", "", "Filter by date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().String("keyword", "", "Filter by keyword in descriptions")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"sharptime version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// buildFilter constructs a Filter from the root persistent flags. Reports
// flag parse problems itself and returns ok=false.
func buildFilter(cmd *cobra.Command) (*filter.Filter, bool) {
	deps := cli.GetDeps()

	person, _ := cmd.Root().PersistentFlags().GetString("person")
	dateStr, _ := cmd.Root().PersistentFlags().GetString("date")
	keyword, _ := cmd.Root().PersistentFlags().GetString("keyword")

	var date entry.Date
	if dateStr != "" {
		parsed, err := entry.ParseDate(dateStr)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid --date '%s'\n", dateStr)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use the format YYYY-MM-DD, e.g. 2025-01-10")
			deps.Exit(1)
			return nil, false
		}
		date = parsed
	}

	return filter.New(person, date, keyword), true
}
