package handlers

import (
	"fmt"
	"strings"

	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/cli"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/filter"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/summary"
)

// ShowSummary computes and displays the compliance summary for entries
// matching the given filter.
func ShowSummary(deps *cli.Deps, f *filter.Filter) {
	result, err := deps.Services.Summary.Summarize(f)
	if err != nil {
		reportEntryError(deps, err)
		deps.Exit(1)
		return
	}

	printWarnings(deps, result.Warnings)

	if len(result.Lines) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No entries to summarize")
		return
	}

	thresholds := deps.Services.Summary.Thresholds()
	_, _ = fmt.Fprintf(deps.Stdout, "Compliance summary (daily target %s, weekly target %s):\n",
		cli.FormatDuration(thresholds.DailyMinutes),
		cli.FormatDuration(thresholds.WeeklyMinutes))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	shortfalls := 0
	for _, l := range result.Lines {
		if l.Status != summary.StatusOK {
			shortfalls++
		}
		_, _ = fmt.Fprintln(deps.Stdout, cli.FormatSummaryLine(l))
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	if shortfalls == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "All targets met")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "%d %s below target\n", shortfalls, cli.Pluralize("line", shortfalls))
	}
}
