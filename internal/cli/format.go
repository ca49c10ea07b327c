// Package cli provides the CLI presentation layer for the sharptime
// application. It handles command-line output formatting and user
// interaction.
package cli

import (
	"fmt"

	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/entry"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/storage"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/summary"
)

// FormatDuration formats minutes as a human-readable string
// Examples: "30m", "2h", "1h 30m"
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatTimeRange formats an entry's start/end pair for display.
// Returns "09:00-17:00" when both are set, otherwise an empty string.
func FormatTimeRange(e entry.Entry) string {
	if e.Start == nil || e.End == nil {
		return ""
	}
	return fmt.Sprintf("%s-%s", e.Start, e.End)
}

// FormatEntryLine formats a single entry for list output.
// Example: "2025-01-10  Alice  09:00-17:00  quarterly report (8h)"
func FormatEntryLine(e entry.Entry) string {
	line := fmt.Sprintf("%s  %s", e.Date, e.Person)
	if timeRange := FormatTimeRange(e); timeRange != "" {
		line += "  " + timeRange
	}
	if e.Description != "" {
		line += "  " + e.Description
	}
	line += fmt.Sprintf(" (%s)", FormatDuration(int(e.Duration)))
	if !e.Completed {
		line += " [open]"
	}
	return line
}

// FormatSummaryLine formats a compliance summary line for display.
// Daily lines show the date; aggregate lines show the bucket.
func FormatSummaryLine(l summary.Line) string {
	switch l.Kind {
	case summary.KindAggregate:
		bucket := "total"
		if l.Week != "" {
			bucket = l.Week
		}
		return fmt.Sprintf("%s  %-10s  %8s  %s", l.Person, bucket, l.Hours(), l.Status)
	default:
		return fmt.Sprintf("%s  %s  %8s  %s", l.Person, l.Date, l.Hours(), l.Status)
	}
}

// FormatCorruptionWarning formats a ParseWarning into a human-readable string
func FormatCorruptionWarning(warning storage.ParseWarning) string {
	content := warning.Content
	if len(content) > 50 {
		content = content[:47] + "..."
	}
	return fmt.Sprintf("  Line %d: %s (error: %s)", warning.LineNumber, content, warning.Error)
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
