package handlers

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/cli"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/config"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/entry"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/filter"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/service"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/storage"
)

func setupTestDeps(t *testing.T) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	tmpDir := t.TempDir()
	storagePath := filepath.Join(tmpDir, storage.EntriesFile)
	configPath := filepath.Join(tmpDir, config.ConfigFile)
	cfg := config.DefaultConfig()

	services := service.NewServicesWithPaths(storagePath, configPath, cfg)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := 0

	deps := &cli.Deps{
		Stdout:   stdout,
		Stderr:   stderr,
		Stdin:    strings.NewReader(""),
		Exit:     func(code int) { exitCode = code },
		Services: services,
		Config:   cfg,
	}

	return deps, stdout, stderr, &exitCode
}

func addFields(person string, day int, durationText string) service.AddFields {
	return service.AddFields{
		Person:       person,
		Date:         entry.Date{Year: 2025, Month: time.January, Day: day},
		DurationText: durationText,
	}
}

func TestAddEntry_Success(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	AddEntry(deps, addFields("Alice", 10, "8:00"))

	if *exitCode != 0 {
		t.Fatalf("exit code = %d, expected 0", *exitCode)
	}
	out := stdout.String()
	if !strings.Contains(out, "Logged") {
		t.Errorf("expected success message, got: %q", out)
	}
	if !strings.Contains(out, "Alice") || !strings.Contains(out, "(8h)") {
		t.Errorf("expected entry details in output, got: %q", out)
	}
}

func TestAddEntry_ValidationError(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	AddEntry(deps, addFields("Alice", 10, "bad"))

	if *exitCode != 1 {
		t.Fatalf("exit code = %d, expected 1", *exitCode)
	}
	if !strings.Contains(stderr.String(), "Error:") {
		t.Errorf("expected error on stderr, got: %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "Hint:") {
		t.Errorf("expected hint on stderr, got: %q", stderr.String())
	}
}

func TestListEntries_Empty(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	ListEntries(deps, nil)

	if *exitCode != 0 {
		t.Fatalf("exit code = %d, expected 0", *exitCode)
	}
	if !strings.Contains(stdout.String(), "No entries found") {
		t.Errorf("expected empty message, got: %q", stdout.String())
	}
}

func TestListEntries_FilteredWithTotal(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	AddEntry(deps, addFields("Alice", 10, "2:00"))
	AddEntry(deps, addFields("Bob", 10, "1:00"))
	stdout.Reset()

	ListEntries(deps, &filter.Filter{Person: "Alice"})

	if *exitCode != 0 {
		t.Fatalf("exit code = %d, expected 0", *exitCode)
	}
	out := stdout.String()
	if !strings.Contains(out, "1 entry:") {
		t.Errorf("expected single entry header, got: %q", out)
	}
	if strings.Contains(out, "Bob") {
		t.Errorf("filtered output should not contain Bob: %q", out)
	}
	if !strings.Contains(out, "Total: 2h") {
		t.Errorf("expected total, got: %q", out)
	}
}

func TestShowEntry_NotFound(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	ShowEntry(deps, "missing")

	if *exitCode != 1 {
		t.Fatalf("exit code = %d, expected 1", *exitCode)
	}
	if !strings.Contains(stderr.String(), "not found") {
		t.Errorf("expected not-found error, got: %q", stderr.String())
	}
}

func TestShowEntry_Success(t *testing.T) {
	deps, stdout, _, _ := setupTestDeps(t)

	e, err := deps.Services.Entry.Add(service.AddFields{
		Person: "Alice",
		Date:   entry.Date{Year: 2025, Month: time.January, Day: 10},
		Start:  entry.ClockPtr(entry.NewClock(9, 0)),
		End:    entry.ClockPtr(entry.NewClock(17, 0)),
	})
	if err != nil {
		t.Fatalf("Add() returned unexpected error: %v", err)
	}
	stdout.Reset()

	ShowEntry(deps, e.ID)

	out := stdout.String()
	for _, want := range []string{"Alice", "2025-01-10", "09:00-17:00", "8h 0m"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got: %q", want, out)
		}
	}
}

func TestEditEntry_Success(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	AddEntry(deps, addFields("Alice", 10, "1:00"))
	id := extractID(t, stdout.String())
	stdout.Reset()

	desc := "retro notes"
	EditEntry(deps, id, service.Changes{Description: &desc})

	if *exitCode != 0 {
		t.Fatalf("exit code = %d, expected 0", *exitCode)
	}
	if !strings.Contains(stdout.String(), "Updated") || !strings.Contains(stdout.String(), "retro notes") {
		t.Errorf("expected update confirmation, got: %q", stdout.String())
	}
}

func TestEditEntry_NoChanges(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	EditEntry(deps, "any", service.Changes{})

	if *exitCode != 1 {
		t.Fatalf("exit code = %d, expected 1", *exitCode)
	}
	if !strings.Contains(stderr.String(), "At least one change") {
		t.Errorf("expected usage error, got: %q", stderr.String())
	}
}

// extractID pulls the generated entry id out of an AddEntry success line
// of the form "Logged <id>: ...".
func extractID(t *testing.T, out string) string {
	t.Helper()
	rest := strings.TrimPrefix(out, "Logged ")
	idx := strings.Index(rest, ":")
	if rest == out || idx == -1 {
		t.Fatalf("could not extract id from output: %q", out)
	}
	return rest[:idx]
}
