package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/config"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/entry"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/filter"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/guard"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/storage"
)

// Common errors for the entry service
var (
	ErrNoChangesSpecified = errors.New("at least one change must be specified")
)

// Persistence write retry policy. Only PersistenceErrors are retried;
// validation and permission failures are terminal for the request.
const (
	persistAttempts = 3
	persistBackoff  = 50 * time.Millisecond
)

// EntryService provides operations for managing work-log entries. It is
// the sole owner of the entry collection: every mutation runs under the
// service mutex, so concurrent snapshot writes cannot race each other.
type EntryService struct {
	mu          sync.Mutex
	storagePath string
	config      config.Config
	guard       *guard.Guard
	now         func() time.Time
	newID       func() string
}

// NewEntryService creates a new EntryService
func NewEntryService(storagePath string, cfg config.Config) *EntryService {
	return &EntryService{
		storagePath: storagePath,
		config:      cfg,
		guard:       guard.New(time.Duration(cfg.EditWindowHours) * time.Hour),
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// Add creates a new entry from the given fields, resolves its timing,
// assigns id and created_at, and persists a full snapshot.
func (s *EntryService) Add(fields AddFields) (*entry.Entry, error) {
	if fields.Person == "" {
		return nil, &entry.ValidationError{Field: "person", Reason: "cannot be empty"}
	}
	if fields.Date.IsZero() {
		return nil, &entry.ValidationError{Field: "date", Reason: "cannot be empty"}
	}

	timing, err := entry.ResolveTiming(fields.Start, fields.End, fields.DurationText)
	if err != nil {
		return nil, err
	}

	completed := true
	if fields.Completed != nil {
		completed = *fields.Completed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := storage.ReadEntries(s.storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	e := entry.Entry{
		ID:          s.newID(),
		Person:      fields.Person,
		Date:        fields.Date,
		Start:       timing.Start,
		End:         timing.End,
		Duration:    timing.Duration,
		Description: fields.Description,
		Completed:   completed,
		CreatedAt:   s.now(),
	}

	if err := s.persist(append(entries, e)); err != nil {
		return nil, err
	}

	return &e, nil
}

// Get returns the entry with the given id.
func (s *EntryService) Get(id string) (*entry.Entry, error) {
	entries, err := storage.ReadEntries(s.storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	for _, e := range entries {
		if e.ID == id {
			return &e, nil
		}
	}

	return nil, &NotFoundError{ID: id}
}

// List returns entries matching the given filter in insertion order,
// along with any parse warnings from the snapshot.
func (s *EntryService) List(f *filter.Filter) (*ListResult, error) {
	result, err := storage.ReadSnapshot(s.storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	filtered := filter.Apply(result.Entries, f)

	totalMinutes := 0
	for _, e := range filtered {
		totalMinutes += int(e.Duration)
	}

	return &ListResult{
		Entries:  filtered,
		Warnings: result.Warnings,
		Total:    totalMinutes,
	}, nil
}

// Update applies the given changes to the entry with the given id. The
// edit must fall inside the entry's edit window; outside it the update is
// refused with a PermissionError and the store is left untouched. When
// any timing field is supplied, the timing triple is re-resolved from the
// supplied fields alone.
func (s *EntryService) Update(id string, changes Changes) (*entry.Entry, error) {
	if changes.IsEmpty() {
		return nil, ErrNoChangesSpecified
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := storage.ReadEntries(s.storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	index := -1
	for i, e := range entries {
		if e.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, &NotFoundError{ID: id}
	}

	e := entries[index]
	if err := s.guard.Authorize(e); err != nil {
		return nil, err
	}

	if changes.Person != nil {
		if *changes.Person == "" {
			return nil, &entry.ValidationError{Field: "person", Reason: "cannot be empty"}
		}
		e.Person = *changes.Person
	}
	if changes.Date != nil {
		if changes.Date.IsZero() {
			return nil, &entry.ValidationError{Field: "date", Reason: "cannot be empty"}
		}
		e.Date = *changes.Date
	}
	if changes.HasTiming() {
		durationText := ""
		if changes.DurationText != nil {
			durationText = *changes.DurationText
		}
		timing, err := entry.ResolveTiming(changes.Start, changes.End, durationText)
		if err != nil {
			return nil, err
		}
		e.Start = timing.Start
		e.End = timing.End
		e.Duration = timing.Duration
	}
	if changes.Description != nil {
		e.Description = *changes.Description
	}
	if changes.Completed != nil {
		e.Completed = *changes.Completed
	}

	entries[index] = e
	if err := s.persist(entries); err != nil {
		return nil, err
	}

	return &e, nil
}

// persist backs up the current snapshot and writes the new one, retrying
// transient write failures with exponential backoff. Must be called with
// the service mutex held.
func (s *EntryService) persist(entries []entry.Entry) error {
	if err := storage.CreateBackup(s.storagePath); err != nil {
		return fmt.Errorf("failed to back up snapshot: %w", err)
	}

	var err error
	backoff := persistBackoff
	for attempt := 0; attempt < persistAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(backoff)
			backoff *= 2
		}
		err = storage.WriteSnapshot(s.storagePath, entries)
		if err == nil {
			return nil
		}
		if !storage.IsPersistenceError(err) {
			return err
		}
	}

	return fmt.Errorf("failed to save entries: %w", err)
}
