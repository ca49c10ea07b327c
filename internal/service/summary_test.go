package service

import (
	"path/filepath"
	"testing"

	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/config"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/entry"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/filter"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/storage"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/summary"
)

func seedEntries(t *testing.T, path string, entries []entry.Entry) {
	t.Helper()
	if err := storage.WriteSnapshot(path, entries); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
}

func TestSummarize_DailyAndAggregate(t *testing.T) {
	path := filepath.Join(t.TempDir(), storage.EntriesFile)
	seedEntries(t, path, []entry.Entry{
		{ID: "id-1", Person: "Alice", Date: testDate(10), Duration: 480},
		{ID: "id-2", Person: "Alice", Date: testDate(11), Duration: 479},
	})

	s := NewSummaryService(path, config.DefaultConfig())
	result, err := s.Summarize(nil)
	if err != nil {
		t.Fatalf("Summarize() returned unexpected error: %v", err)
	}

	// Two daily lines plus one all-time aggregate.
	if len(result.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(result.Lines))
	}
	if result.Lines[0].Status != summary.StatusOK {
		t.Errorf("full day should be OK, got %s", result.Lines[0].Status)
	}
	if result.Lines[1].Status != summary.StatusBelowDailyThreshold {
		t.Errorf("479 minutes should be below daily threshold, got %s", result.Lines[1].Status)
	}
	aggregate := result.Lines[2]
	if aggregate.Kind != summary.KindAggregate || aggregate.Minutes != 959 {
		t.Errorf("unexpected aggregate line: %+v", aggregate)
	}
	if aggregate.Status != summary.StatusBelowWeeklyThreshold {
		t.Errorf("959 minutes should be below weekly threshold, got %s", aggregate.Status)
	}
}

func TestSummarize_WithFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), storage.EntriesFile)
	seedEntries(t, path, []entry.Entry{
		{ID: "id-1", Person: "Alice", Date: testDate(10), Duration: 480},
		{ID: "id-2", Person: "Bob", Date: testDate(10), Duration: 60},
	})

	s := NewSummaryService(path, config.DefaultConfig())
	result, err := s.Summarize(&filter.Filter{Person: "Bob"})
	if err != nil {
		t.Fatalf("Summarize() returned unexpected error: %v", err)
	}

	for _, l := range result.Lines {
		if l.Person != "Bob" {
			t.Errorf("filtered summary contains %s line", l.Person)
		}
	}
}

func TestSummarize_ConfiguredThresholdsAndStrategy(t *testing.T) {
	path := filepath.Join(t.TempDir(), storage.EntriesFile)
	seedEntries(t, path, []entry.Entry{
		{ID: "id-1", Person: "Alice", Date: testDate(10), Duration: 300},
	})

	cfg := config.DefaultConfig()
	cfg.DailyTargetMinutes = 300
	cfg.WeeklyTargetMinutes = 300
	cfg.WeekGrouping = "iso-week"

	s := NewSummaryService(path, cfg)
	if s.Strategy() != summary.GroupByPersonISOWeek {
		t.Errorf("Strategy() = %s, expected iso-week", s.Strategy())
	}

	result, err := s.Summarize(nil)
	if err != nil {
		t.Fatalf("Summarize() returned unexpected error: %v", err)
	}
	if len(result.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(result.Lines))
	}
	if result.Lines[0].Status != summary.StatusOK {
		t.Errorf("daily line should meet the custom threshold, got %s", result.Lines[0].Status)
	}
	if result.Lines[1].Week == "" {
		t.Error("iso-week aggregate should carry a week label")
	}
	if result.Lines[1].Status != summary.StatusOK {
		t.Errorf("weekly line should meet the custom threshold, got %s", result.Lines[1].Status)
	}
}
