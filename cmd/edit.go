package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/cli"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/cli/handlers"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/service"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing entry",
	Long: `Edit an existing work entry by id.

Entries can only be edited within the edit window after their creation
(24 hours by default); outside it the edit is refused.

When any timing flag (--start, --end, --duration) is given, the entry's
timing is recomputed from the supplied flags alone.

Usage:
  sharptime edit <id> --description 'new text'
  sharptime edit <id> --duration 2:00
  sharptime edit <id> --start 09:00 --end 12:30

At least one flag is required.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runEdit(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().String("assignee", "", "Reassign the entry to another person")
	editCmd.Flags().String("date", "", "New calendar date (YYYY-MM-DD)")
	timingFlags(editCmd)
}

// runEdit parses the edit flags into a change set and applies it
func runEdit(cmd *cobra.Command, id string) {
	deps := cli.GetDeps()

	var changes service.Changes

	if cmd.Flags().Changed("assignee") {
		person, _ := cmd.Flags().GetString("assignee")
		changes.Person = &person
	}
	if cmd.Flags().Changed("date") {
		date, ok := getDateFlag(cmd, "date")
		if !ok {
			return
		}
		changes.Date = &date
	}
	if cmd.Flags().Changed("start") {
		start, ok := getClockFlag(cmd, "start")
		if !ok {
			return
		}
		changes.Start = start
	}
	if cmd.Flags().Changed("end") {
		end, ok := getClockFlag(cmd, "end")
		if !ok {
			return
		}
		changes.End = end
	}
	if cmd.Flags().Changed("duration") {
		durationText, _ := cmd.Flags().GetString("duration")
		changes.DurationText = &durationText
	}
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		changes.Description = &description
	}
	if cmd.Flags().Changed("completed") {
		completed, _ := cmd.Flags().GetBool("completed")
		changes.Completed = &completed
	}

	handlers.EditEntry(deps, id, changes)
}
