package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/cli"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/cli/handlers"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/entry"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/service"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a new work entry",
	Long: `Log a new work entry for a person and date.

Timing can be given three ways:
  --start and --end                      duration is computed from the interval
  --start and --duration                 end is computed from start plus duration
  --duration alone                       start/end stay unset

Examples:
  sharptime add --person Alice --start 09:00 --end 17:00
  sharptime add --person Alice --start 09:00 --duration 3:30
  sharptime add --person Bob --duration 0:45 --description 'standup notes'
  sharptime add --person Carol --date 2025-01-10 --duration 8:00`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runAdd(cmd)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().String("date", "", "Calendar date (YYYY-MM-DD, default: today)")
	timingFlags(addCmd)
}

// runAdd parses the add flags and creates a new entry
func runAdd(cmd *cobra.Command) {
	deps := cli.GetDeps()

	person, _ := cmd.Root().PersistentFlags().GetString("person")

	date, ok := getDateFlag(cmd, "date")
	if !ok {
		return
	}
	if date.IsZero() {
		date = entry.DateOf(time.Now())
	}

	start, ok := getClockFlag(cmd, "start")
	if !ok {
		return
	}
	end, ok := getClockFlag(cmd, "end")
	if !ok {
		return
	}

	durationText, _ := cmd.Flags().GetString("duration")
	description, _ := cmd.Flags().GetString("description")

	fields := service.AddFields{
		Person:       person,
		Date:         date,
		Start:        start,
		End:          end,
		DurationText: durationText,
		Description:  description,
	}
	if cmd.Flags().Changed("completed") {
		completed, _ := cmd.Flags().GetBool("completed")
		fields.Completed = &completed
	}

	handlers.AddEntry(deps, fields)
}
