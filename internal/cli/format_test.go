package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/entry"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/storage"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/summary"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{30, "30m"},
		{60, "1h"},
		{90, "1h 30m"},
		{480, "8h"},
		{0, "0m"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, expected %q", tt.minutes, got, tt.want)
		}
	}
}

func TestFormatTimeRange(t *testing.T) {
	e := entry.Entry{
		Start: entry.ClockPtr(entry.NewClock(9, 0)),
		End:   entry.ClockPtr(entry.NewClock(17, 30)),
	}
	if got := FormatTimeRange(e); got != "09:00-17:30" {
		t.Errorf("FormatTimeRange() = %q, expected %q", got, "09:00-17:30")
	}
	if got := FormatTimeRange(entry.Entry{}); got != "" {
		t.Errorf("FormatTimeRange() on unset times = %q, expected empty", got)
	}
}

func TestFormatEntryLine(t *testing.T) {
	e := entry.Entry{
		Person:      "Alice",
		Date:        entry.Date{Year: 2025, Month: time.January, Day: 10},
		Start:       entry.ClockPtr(entry.NewClock(9, 0)),
		End:         entry.ClockPtr(entry.NewClock(17, 0)),
		Duration:    480,
		Description: "quarterly report",
		Completed:   true,
	}

	got := FormatEntryLine(e)
	for _, want := range []string{"2025-01-10", "Alice", "09:00-17:00", "quarterly report", "(8h)"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
	if strings.Contains(got, "[open]") {
		t.Errorf("completed entry should not be marked open: %q", got)
	}

	e.Completed = false
	if !strings.Contains(FormatEntryLine(e), "[open]") {
		t.Error("incomplete entry should be marked open")
	}
}

func TestFormatSummaryLine(t *testing.T) {
	daily := summary.Line{
		Person:  "Alice",
		Kind:    summary.KindDaily,
		Date:    entry.Date{Year: 2025, Month: time.January, Day: 10},
		Minutes: 479,
		Status:  summary.StatusBelowDailyThreshold,
	}
	got := FormatSummaryLine(daily)
	for _, want := range []string{"Alice", "2025-01-10", "7h 59m", "BelowDailyThreshold"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}

	aggregate := summary.Line{Person: "Alice", Kind: summary.KindAggregate, Minutes: 600, Status: summary.StatusBelowWeeklyThreshold}
	if !strings.Contains(FormatSummaryLine(aggregate), "total") {
		t.Errorf("all-time aggregate should show 'total': %q", FormatSummaryLine(aggregate))
	}

	weekly := summary.Line{Person: "Alice", Kind: summary.KindAggregate, Week: "2025-W02", Minutes: 600, Status: summary.StatusBelowWeeklyThreshold}
	if !strings.Contains(FormatSummaryLine(weekly), "2025-W02") {
		t.Errorf("iso-week aggregate should show the week label: %q", FormatSummaryLine(weekly))
	}
}

func TestFormatCorruptionWarning(t *testing.T) {
	w := storage.ParseWarning{LineNumber: 3, Content: "not json", Error: "invalid character"}
	got := FormatCorruptionWarning(w)
	if !strings.Contains(got, "Line 3") || !strings.Contains(got, "not json") {
		t.Errorf("unexpected warning format: %q", got)
	}

	long := storage.ParseWarning{LineNumber: 1, Content: strings.Repeat("x", 80), Error: "bad"}
	if !strings.Contains(FormatCorruptionWarning(long), "...") {
		t.Error("long content should be truncated")
	}
}

func TestPluralize(t *testing.T) {
	if Pluralize("entry", 1) != "entry" {
		t.Error("count 1 should stay singular")
	}
	if Pluralize("line", 3) != "lines" {
		t.Error("unexpected plural form")
	}
}
