// Package summary computes compliance summaries over the entry collection.
// Summaries are read-only; they never mutate entries.
package summary

import (
	"fmt"
	"sort"

	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/entry"
)

// Status classifies a summary line against the configured thresholds.
type Status string

const (
	// StatusOK means the total meets or exceeds the relevant threshold
	StatusOK Status = "OK"
	// StatusBelowDailyThreshold means a daily total is short of the daily target
	StatusBelowDailyThreshold Status = "BelowDailyThreshold"
	// StatusBelowWeeklyThreshold means a person's aggregate total is short of the weekly target
	StatusBelowWeeklyThreshold Status = "BelowWeeklyThreshold"
)

// Thresholds holds the compliance targets in minutes.
type Thresholds struct {
	DailyMinutes  int
	WeeklyMinutes int
}

// DefaultThresholds returns the standard targets: 8 hours per day,
// 40 hours per week.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DailyMinutes:  480,
		WeeklyMinutes: 2400,
	}
}

// Strategy selects how per-person aggregate lines are bucketed.
type Strategy string

const (
	// GroupByPersonAllTime sums every entry currently in view for a person
	// and compares the total against the weekly threshold, regardless of
	// how many calendar weeks the entries span.
	GroupByPersonAllTime Strategy = "all-time"
	// GroupByPersonISOWeek buckets a person's entries by ISO-8601 week
	// and compares each week's total against the weekly threshold.
	GroupByPersonISOWeek Strategy = "iso-week"
)

// ParseStrategy converts a configuration string to a Strategy.
// Unknown values fall back to GroupByPersonAllTime.
func ParseStrategy(s string) Strategy {
	if Strategy(s) == GroupByPersonISOWeek {
		return GroupByPersonISOWeek
	}
	return GroupByPersonAllTime
}

// Kind distinguishes daily lines from per-person aggregate lines.
type Kind string

const (
	KindDaily     Kind = "daily"
	KindAggregate Kind = "aggregate"
)

// Line is a single row of a compliance summary. Daily lines carry a Date;
// aggregate lines carry a Week label when the ISO-week strategy is active.
type Line struct {
	Person  string
	Kind    Kind
	Date    entry.Date // set for daily lines only
	Week    string     // ISO week label, set for iso-week aggregate lines
	Minutes entry.Minutes
	Status  Status
}

// Hours returns the line's total formatted as an hour figure, e.g. "8h 0m".
func (l Line) Hours() string {
	return l.Minutes.String()
}

// isoWeekLabel formats a date's ISO week as e.g. "2025-W02".
func isoWeekLabel(d entry.Date) string {
	year, week := d.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// Aggregate computes the compliance summary for the given view of entries.
// For each person it emits one daily line per date (status against the
// daily threshold), followed by the person's aggregate line(s) (status
// against the weekly threshold, bucketed per the strategy). Persons appear
// in order of first appearance in the view; dates and weeks ascending.
func Aggregate(entries []entry.Entry, thresholds Thresholds, strategy Strategy) []Line {
	if len(entries) == 0 {
		return []Line{}
	}

	type personTotals struct {
		daily map[entry.Date]int
		weeks map[string]int
		total int
	}

	totals := make(map[string]*personTotals)
	var persons []string

	for _, e := range entries {
		pt, exists := totals[e.Person]
		if !exists {
			pt = &personTotals{
				daily: make(map[entry.Date]int),
				weeks: make(map[string]int),
			}
			totals[e.Person] = pt
			persons = append(persons, e.Person)
		}

		minutes := int(e.Duration)
		pt.daily[e.Date] += minutes
		pt.weeks[isoWeekLabel(e.Date)] += minutes
		pt.total += minutes
	}

	var lines []Line
	for _, person := range persons {
		pt := totals[person]

		dates := make([]entry.Date, 0, len(pt.daily))
		for d := range pt.daily {
			dates = append(dates, d)
		}
		sort.Slice(dates, func(i, j int) bool {
			return dates[i].Before(dates[j])
		})

		for _, d := range dates {
			minutes := pt.daily[d]
			status := StatusOK
			if minutes < thresholds.DailyMinutes {
				status = StatusBelowDailyThreshold
			}
			lines = append(lines, Line{
				Person:  person,
				Kind:    KindDaily,
				Date:    d,
				Minutes: entry.Minutes(minutes),
				Status:  status,
			})
		}

		if strategy == GroupByPersonISOWeek {
			weeks := make([]string, 0, len(pt.weeks))
			for w := range pt.weeks {
				weeks = append(weeks, w)
			}
			sort.Strings(weeks)

			for _, w := range weeks {
				minutes := pt.weeks[w]
				status := StatusOK
				if minutes < thresholds.WeeklyMinutes {
					status = StatusBelowWeeklyThreshold
				}
				lines = append(lines, Line{
					Person:  person,
					Kind:    KindAggregate,
					Week:    w,
					Minutes: entry.Minutes(minutes),
					Status:  status,
				})
			}
		} else {
			status := StatusOK
			if pt.total < thresholds.WeeklyMinutes {
				status = StatusBelowWeeklyThreshold
			}
			lines = append(lines, Line{
				Person:  person,
				Kind:    KindAggregate,
				Minutes: entry.Minutes(pt.total),
				Status:  status,
			})
		}
	}

	return lines
}
