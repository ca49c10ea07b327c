package summary

import (
	"testing"
	"time"

	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/entry"
)

func date(month time.Month, day int) entry.Date {
	return entry.Date{Year: 2025, Month: month, Day: day}
}

func workEntry(person string, d entry.Date, minutes int) entry.Entry {
	return entry.Entry{Person: person, Date: d, Duration: entry.Minutes(minutes)}
}

func findLine(t *testing.T, lines []Line, person string, kind Kind, d entry.Date) Line {
	t.Helper()
	for _, l := range lines {
		if l.Person == person && l.Kind == kind && l.Date == d {
			return l
		}
	}
	t.Fatalf("no %s line for %s/%v in %+v", kind, person, d, lines)
	return Line{}
}

func TestAggregate_Empty(t *testing.T) {
	lines := Aggregate(nil, DefaultThresholds(), GroupByPersonAllTime)
	if len(lines) != 0 {
		t.Errorf("expected no lines, got %d", len(lines))
	}
}

func TestAggregate_DailyStatus(t *testing.T) {
	tests := []struct {
		name       string
		minutes    int
		wantStatus Status
	}{
		{name: "full day is OK", minutes: 480, wantStatus: StatusOK},
		{name: "one minute short is below threshold", minutes: 479, wantStatus: StatusBelowDailyThreshold},
		{name: "over target is OK", minutes: 600, wantStatus: StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := []entry.Entry{workEntry("Alice", date(time.January, 10), tt.minutes)}
			lines := Aggregate(entries, DefaultThresholds(), GroupByPersonAllTime)

			daily := findLine(t, lines, "Alice", KindDaily, date(time.January, 10))
			if daily.Minutes != entry.Minutes(tt.minutes) {
				t.Errorf("expected %d minutes, got %d", tt.minutes, daily.Minutes)
			}
			if daily.Status != tt.wantStatus {
				t.Errorf("expected status %s, got %s", tt.wantStatus, daily.Status)
			}
		})
	}
}

func TestAggregate_DailyTotalsSumPerDate(t *testing.T) {
	entries := []entry.Entry{
		workEntry("Alice", date(time.January, 10), 240),
		workEntry("Alice", date(time.January, 10), 240),
	}
	lines := Aggregate(entries, DefaultThresholds(), GroupByPersonAllTime)

	daily := findLine(t, lines, "Alice", KindDaily, date(time.January, 10))
	if daily.Minutes != 480 {
		t.Errorf("expected summed daily total 480, got %d", daily.Minutes)
	}
	if daily.Status != StatusOK {
		t.Errorf("expected OK, got %s", daily.Status)
	}
}

func TestAggregate_AllTimeAggregate(t *testing.T) {
	// Three 200-minute days sum to 600, well under the weekly target,
	// even though the dates span more than one calendar week.
	entries := []entry.Entry{
		workEntry("Alice", date(time.January, 6), 200),
		workEntry("Alice", date(time.January, 7), 200),
		workEntry("Alice", date(time.January, 20), 200),
	}
	lines := Aggregate(entries, DefaultThresholds(), GroupByPersonAllTime)

	aggregate := findLine(t, lines, "Alice", KindAggregate, entry.Date{})
	if aggregate.Minutes != 600 {
		t.Errorf("expected all-time total 600, got %d", aggregate.Minutes)
	}
	if aggregate.Status != StatusBelowWeeklyThreshold {
		t.Errorf("expected BelowWeeklyThreshold, got %s", aggregate.Status)
	}
	if aggregate.Hours() != "10h 0m" {
		t.Errorf("expected hour figure '10h 0m', got %q", aggregate.Hours())
	}
}

func TestAggregate_AllTimeMeetsWeeklyTarget(t *testing.T) {
	entries := []entry.Entry{
		workEntry("Bob", date(time.January, 6), 1200),
		workEntry("Bob", date(time.January, 7), 1200),
	}
	lines := Aggregate(entries, DefaultThresholds(), GroupByPersonAllTime)

	aggregate := findLine(t, lines, "Bob", KindAggregate, entry.Date{})
	if aggregate.Minutes != 2400 || aggregate.Status != StatusOK {
		t.Errorf("expected 2400/OK, got %d/%s", aggregate.Minutes, aggregate.Status)
	}
}

func TestAggregate_ISOWeekStrategy(t *testing.T) {
	// Jan 6-7 2025 fall in ISO week 2, Jan 20 in week 4.
	entries := []entry.Entry{
		workEntry("Alice", date(time.January, 6), 1200),
		workEntry("Alice", date(time.January, 7), 1200),
		workEntry("Alice", date(time.January, 20), 200),
	}
	lines := Aggregate(entries, DefaultThresholds(), GroupByPersonISOWeek)

	var aggregates []Line
	for _, l := range lines {
		if l.Kind == KindAggregate {
			aggregates = append(aggregates, l)
		}
	}
	if len(aggregates) != 2 {
		t.Fatalf("expected 2 weekly aggregates, got %d: %+v", len(aggregates), aggregates)
	}

	if aggregates[0].Week != "2025-W02" || aggregates[0].Minutes != 2400 || aggregates[0].Status != StatusOK {
		t.Errorf("unexpected week 2 aggregate: %+v", aggregates[0])
	}
	if aggregates[1].Week != "2025-W04" || aggregates[1].Minutes != 200 || aggregates[1].Status != StatusBelowWeeklyThreshold {
		t.Errorf("unexpected week 4 aggregate: %+v", aggregates[1])
	}
}

func TestAggregate_Ordering(t *testing.T) {
	entries := []entry.Entry{
		workEntry("Bob", date(time.January, 11), 100),
		workEntry("Alice", date(time.January, 12), 100),
		workEntry("Bob", date(time.January, 10), 100),
	}
	lines := Aggregate(entries, DefaultThresholds(), GroupByPersonAllTime)

	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}

	// Bob appeared first in the view, so his block comes first, dates ascending,
	// aggregate last.
	if lines[0].Person != "Bob" || lines[0].Date != date(time.January, 10) {
		t.Errorf("unexpected first line: %+v", lines[0])
	}
	if lines[1].Person != "Bob" || lines[1].Date != date(time.January, 11) {
		t.Errorf("unexpected second line: %+v", lines[1])
	}
	if lines[2].Person != "Bob" || lines[2].Kind != KindAggregate {
		t.Errorf("unexpected third line: %+v", lines[2])
	}
	if lines[3].Person != "Alice" || lines[3].Kind != KindDaily {
		t.Errorf("unexpected fourth line: %+v", lines[3])
	}
	if lines[4].Person != "Alice" || lines[4].Kind != KindAggregate {
		t.Errorf("unexpected fifth line: %+v", lines[4])
	}
}

func TestAggregate_CustomThresholds(t *testing.T) {
	entries := []entry.Entry{workEntry("Alice", date(time.January, 10), 300)}
	thresholds := Thresholds{DailyMinutes: 300, WeeklyMinutes: 1500}
	lines := Aggregate(entries, thresholds, GroupByPersonAllTime)

	daily := findLine(t, lines, "Alice", KindDaily, date(time.January, 10))
	if daily.Status != StatusOK {
		t.Errorf("expected OK against custom daily threshold, got %s", daily.Status)
	}

	aggregate := findLine(t, lines, "Alice", KindAggregate, entry.Date{})
	if aggregate.Status != StatusBelowWeeklyThreshold {
		t.Errorf("expected BelowWeeklyThreshold against custom weekly threshold, got %s", aggregate.Status)
	}
}

func TestParseStrategy(t *testing.T) {
	if ParseStrategy("iso-week") != GroupByPersonISOWeek {
		t.Error("expected iso-week strategy")
	}
	if ParseStrategy("all-time") != GroupByPersonAllTime {
		t.Error("expected all-time strategy")
	}
	if ParseStrategy("") != GroupByPersonAllTime {
		t.Error("expected unknown values to fall back to all-time")
	}
}
