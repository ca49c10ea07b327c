// Package handlers implements the CLI command handlers on top of the
// service layer. Handlers write results to the injected Deps streams so
// commands stay thin and testable.
package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/cli"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/entry"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/filter"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/guard"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/service"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/storage"
)

// AddEntry creates a new work-log entry from the given fields
func AddEntry(deps *cli.Deps, fields service.AddFields) {
	e, err := deps.Services.Entry.Add(fields)
	if err != nil {
		reportEntryError(deps, err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Logged %s: %s\n", e.ID, cli.FormatEntryLine(*e))
}

// ListEntries lists entries matching the given filter
func ListEntries(deps *cli.Deps, f *filter.Filter) {
	result, err := deps.Services.Entry.List(f)
	if err != nil {
		reportEntryError(deps, err)
		deps.Exit(1)
		return
	}

	printWarnings(deps, result.Warnings)

	if len(result.Entries) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No entries found")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "%d %s:\n", len(result.Entries), cli.Pluralize("entry", len(result.Entries)))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	for _, e := range result.Entries {
		_, _ = fmt.Fprintf(deps.Stdout, "[%s] %s\n", e.ID, cli.FormatEntryLine(e))
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Total: %s\n", cli.FormatDuration(result.Total))
}

// ShowEntry displays a single entry by id
func ShowEntry(deps *cli.Deps, id string) {
	e, err := deps.Services.Entry.Get(id)
	if err != nil {
		reportEntryError(deps, err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "ID:          %s\n", e.ID)
	_, _ = fmt.Fprintf(deps.Stdout, "Person:      %s\n", e.Person)
	_, _ = fmt.Fprintf(deps.Stdout, "Date:        %s\n", e.Date)
	if timeRange := cli.FormatTimeRange(*e); timeRange != "" {
		_, _ = fmt.Fprintf(deps.Stdout, "Time:        %s\n", timeRange)
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Duration:    %s\n", e.Duration)
	if e.Description != "" {
		_, _ = fmt.Fprintf(deps.Stdout, "Description: %s\n", e.Description)
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Completed:   %t\n", e.Completed)
	_, _ = fmt.Fprintf(deps.Stdout, "Created:     %s\n", e.CreatedAt.Format("2006-01-02 15:04"))
}

// EditEntry applies the given changes to an existing entry
func EditEntry(deps *cli.Deps, id string, changes service.Changes) {
	e, err := deps.Services.Entry.Update(id, changes)
	if err != nil {
		if errors.Is(err, service.ErrNoChangesSpecified) {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: At least one change must be specified")
			_, _ = fmt.Fprintln(deps.Stderr, "Usage:")
			_, _ = fmt.Fprintln(deps.Stderr, "  sharptime edit <id> --description 'new text'")
			_, _ = fmt.Fprintln(deps.Stderr, "  sharptime edit <id> --duration 2:00")
			deps.Exit(1)
			return
		}
		reportEntryError(deps, err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Updated %s: %s\n", e.ID, cli.FormatEntryLine(*e))
}

// printWarnings reports corrupted snapshot lines to stderr
func printWarnings(deps *cli.Deps, warnings []storage.ParseWarning) {
	if len(warnings) == 0 {
		return
	}
	_, _ = fmt.Fprintf(deps.Stderr, "Warning: Found %d corrupted line(s) in storage file:\n", len(warnings))
	for _, warning := range warnings {
		_, _ = fmt.Fprintln(deps.Stderr, cli.FormatCorruptionWarning(warning))
	}
	_, _ = fmt.Fprintln(deps.Stderr)
}

// reportEntryError writes a user-facing message for a service error,
// distinguishing the error kinds callers can act on.
func reportEntryError(deps *cli.Deps, err error) {
	var verr *entry.ValidationError
	var nferr *service.NotFoundError
	var perr *guard.PermissionError

	switch {
	case errors.As(err, &verr):
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", verr)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Supply start and end times, or a duration like '1:30'")
	case errors.As(err, &nferr):
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", nferr)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: List entries with 'sharptime' to see their ids")
	case errors.As(err, &perr):
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", perr)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Entries lock %s after creation\n", perr.Window)
	case storage.IsPersistenceError(err):
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to save entries to storage")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that the storage directory exists and is writable")
	default:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
	}
}
