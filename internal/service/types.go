// Package service provides the business logic layer for the sharptime
// application. It wraps the underlying storage, guard, summary, and config
// packages, providing a clean API for both CLI and TUI frontends.
package service

import (
	"fmt"

	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/entry"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/storage"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/summary"
)

// NotFoundError indicates that no entry exists with the requested id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("entry %s not found", e.ID)
}

// AddFields holds the raw fields for creating a new entry. Start, End and
// DurationText are the caller-supplied timing subset; the service resolves
// them into a canonical triple before persisting.
type AddFields struct {
	Person       string
	Date         entry.Date
	Start        *entry.Clock
	End          *entry.Clock
	DurationText string
	Description  string
	Completed    *bool // nil defaults to true
}

// Changes holds the fields of an update request. Nil pointers mean "leave
// unchanged". When any of Start, End or DurationText is supplied, the
// entry's timing is re-resolved from the supplied fields alone; the old
// timing is discarded rather than merged.
type Changes struct {
	Person       *string
	Date         *entry.Date
	Start        *entry.Clock
	End          *entry.Clock
	DurationText *string
	Description  *string
	Completed    *bool
}

// IsEmpty returns true if the change set specifies nothing.
func (c Changes) IsEmpty() bool {
	return c.Person == nil && c.Date == nil && !c.HasTiming() &&
		c.Description == nil && c.Completed == nil
}

// HasTiming returns true if any timing field is part of the change set.
func (c Changes) HasTiming() bool {
	return c.Start != nil || c.End != nil || c.DurationText != nil
}

// ListResult contains the results of listing entries
type ListResult struct {
	Entries  []entry.Entry
	Warnings []storage.ParseWarning
	Total    int // Total duration in minutes
}

// SummaryResult contains a computed compliance summary
type SummaryResult struct {
	Lines    []summary.Line
	Warnings []storage.ParseWarning
}
