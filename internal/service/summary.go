package service

import (
	"fmt"

	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/config"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/filter"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/storage"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/summary"
)

// SummaryService computes compliance summaries over the entry collection.
// It is read-only and never mutates the snapshot.
type SummaryService struct {
	storagePath string
	config      config.Config
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(storagePath string, cfg config.Config) *SummaryService {
	return &SummaryService{
		storagePath: storagePath,
		config:      cfg,
	}
}

// Thresholds returns the compliance targets from the configuration.
func (s *SummaryService) Thresholds() summary.Thresholds {
	return summary.Thresholds{
		DailyMinutes:  s.config.DailyTargetMinutes,
		WeeklyMinutes: s.config.WeeklyTargetMinutes,
	}
}

// Strategy returns the configured aggregate bucketing strategy.
func (s *SummaryService) Strategy() summary.Strategy {
	return summary.ParseStrategy(s.config.WeekGrouping)
}

// Summarize computes the compliance summary for the entries matching the
// given filter, using the configured thresholds and grouping strategy.
func (s *SummaryService) Summarize(f *filter.Filter) (*SummaryResult, error) {
	result, err := storage.ReadSnapshot(s.storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	view := filter.Apply(result.Entries, f)
	lines := summary.Aggregate(view, s.Thresholds(), s.Strategy())

	return &SummaryResult{
		Lines:    lines,
		Warnings: result.Warnings,
	}, nil
}
