package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/cli"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/entry"
)

// timingFlags registers the flags shared by add and edit for describing
// an entry's timing and content.
func timingFlags(cmd *cobra.Command) {
	cmd.Flags().String("start", "", "Start time of day (HH:MM)")
	cmd.Flags().String("end", "", "End time of day (HH:MM)")
	cmd.Flags().String("duration", "", "Duration as H:MM (e.g. 8:00, 0:45)")
	cmd.Flags().String("description", "", "Free-text description")
	cmd.Flags().Bool("completed", true, "Whether the work is completed")
}

// getClockFlag parses an optional HH:MM flag. Returns ok=false after
// reporting a malformed value.
func getClockFlag(cmd *cobra.Command, name string) (*entry.Clock, bool) {
	deps := cli.GetDeps()

	value, _ := cmd.Flags().GetString(name)
	if value == "" {
		return nil, true
	}

	c, err := entry.ParseClock(value)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid --%s '%s'\n", name, value)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use the format HH:MM, e.g. 09:00")
		deps.Exit(1)
		return nil, false
	}
	return entry.ClockPtr(c), true
}

// getDateFlag parses an optional YYYY-MM-DD flag. Returns ok=false after
// reporting a malformed value.
func getDateFlag(cmd *cobra.Command, name string) (entry.Date, bool) {
	deps := cli.GetDeps()

	value, _ := cmd.Flags().GetString(name)
	if value == "" {
		return entry.Date{}, true
	}

	d, err := entry.ParseDate(value)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid --%s '%s'\n", name, value)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use the format YYYY-MM-DD, e.g. 2025-01-10")
		deps.Exit(1)
		return entry.Date{}, false
	}
	return d, true
}
