package handlers

import (
	"strings"
	"testing"
)

func TestShowConfig_Defaults(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	ShowConfig(deps)

	if *exitCode != 0 {
		t.Fatalf("exit code = %d, expected 0", *exitCode)
	}
	out := stdout.String()
	if !strings.Contains(out, "Using defaults") {
		t.Errorf("expected defaults status, got: %q", out)
	}
	for _, want := range []string{"daily_target_minutes:  480", "weekly_target_minutes: 2400", "edit_window_hours:     24", "week_grouping:         all-time"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got: %q", want, out)
		}
	}
}

func TestInitConfig(t *testing.T) {
	deps, stdout, stderr, exitCode := setupTestDeps(t)

	InitConfig(deps)

	if *exitCode != 0 {
		t.Fatalf("exit code = %d, expected 0: %s", *exitCode, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Created config file") {
		t.Errorf("expected creation message, got: %q", stdout.String())
	}

	// Second init refuses to overwrite.
	InitConfig(deps)
	if *exitCode != 1 {
		t.Error("expected non-zero exit when config already exists")
	}
	if !strings.Contains(stderr.String(), "already exists") {
		t.Errorf("expected already-exists error, got: %q", stderr.String())
	}
}
