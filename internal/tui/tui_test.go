package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/config"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/service"
)

func setupTestServices(t *testing.T) *service.Services {
	t.Helper()
	tmpDir := t.TempDir()
	storagePath := filepath.Join(tmpDir, "timesheet.jsonl")
	configPath := filepath.Join(tmpDir, "config.toml")
	return service.NewServicesWithPaths(storagePath, configPath, config.DefaultConfig())
}

func TestNew(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	if model.activeTab != TabEntries {
		t.Errorf("expected initial tab to be Entries, got %d", model.activeTab)
	}
	if model.services == nil {
		t.Error("expected services to be set")
	}
	if model.showHelp {
		t.Error("expected showHelp to be false initially")
	}
}

func TestInit(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	cmd := model.Init()
	if cmd == nil {
		t.Error("expected Init to return a command")
	}
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	newModel, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	m := newModel.(Model)

	if m.width != 100 {
		t.Errorf("expected width 100, got %d", m.width)
	}
	if m.height != 50 {
		t.Errorf("expected height 50, got %d", m.height)
	}
}

func TestUpdate_QuitKey(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	// Quit should return a tea.Quit command
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestUpdate_HelpKey(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m := newModel.(Model)

	if !m.showHelp {
		t.Error("expected showHelp to be true after pressing ?")
	}

	// Toggle off
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = newModel.(Model)

	if m.showHelp {
		t.Error("expected showHelp to be false after pressing ? again")
	}
}

func TestUpdate_TabNavigation(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	if model.activeTab != TabEntries {
		t.Errorf("expected initial tab TabEntries, got %d", model.activeTab)
	}

	// Press tab to go to next tab
	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyTab})
	m := newModel.(Model)

	if m.activeTab != TabSummary {
		t.Errorf("expected TabSummary after pressing tab, got %d", m.activeTab)
	}
}

func TestUpdate_DirectTabKeys(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	tests := []struct {
		key      rune
		expected Tab
	}{
		{'1', TabEntries},
		{'2', TabSummary},
		{'3', TabConfig},
	}

	for _, tt := range tests {
		newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{tt.key}})
		m := newModel.(Model)

		if m.activeTab != tt.expected {
			t.Errorf("pressing %c: expected tab %d, got %d", tt.key, tt.expected, m.activeTab)
		}
	}
}

func TestUpdate_PrevTab(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	model.activeTab = TabSummary

	// Press shift+tab to go to previous tab
	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m := newModel.(Model)

	if m.activeTab != TabEntries {
		t.Errorf("expected TabEntries after shift+tab, got %d", m.activeTab)
	}
}

func TestUpdate_TabWrapsAround(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	model.activeTab = TabConfig

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyTab})
	m := newModel.(Model)

	if m.activeTab != TabEntries {
		t.Errorf("expected tab to wrap to TabEntries, got %d", m.activeTab)
	}
}

func TestView_BeforeWindowSize(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	// Without a window size the view renders a loading placeholder
	if model.View() != "Loading..." {
		t.Errorf("expected loading placeholder before first WindowSizeMsg")
	}
}

func TestView_RendersTabs(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	newModel, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m := newModel.(Model)

	view := m.View()
	for _, name := range tabNames {
		if !strings.Contains(view, name) {
			t.Errorf("expected view to contain tab name %q", name)
		}
	}
}
