package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestDefaultStyles(t *testing.T) {
	styles := DefaultStyles()

	// Test that styles are non-empty (basic sanity check)
	tests := []struct {
		name  string
		style lipgloss.Style
	}{
		{"App", styles.App},
		{"TabBar", styles.TabBar},
		{"TabActive", styles.TabActive},
		{"TabInactive", styles.TabInactive},
		{"TabSeparator", styles.TabSeparator},
		{"Content", styles.Content},
		{"ViewTitle", styles.ViewTitle},
		{"StatusBar", styles.StatusBar},
		{"StatusKey", styles.StatusKey},
		{"StatusValue", styles.StatusValue},
		{"StatusHelp", styles.StatusHelp},
		{"EntrySelected", styles.EntrySelected},
		{"EntryNormal", styles.EntryNormal},
		{"EntryDate", styles.EntryDate},
		{"EntryPerson", styles.EntryPerson},
		{"EntryTime", styles.EntryTime},
		{"EntryDesc", styles.EntryDesc},
		{"EntryDuration", styles.EntryDuration},
		{"SummaryOK", styles.SummaryOK},
		{"SummaryBelow", styles.SummaryBelow},
		{"StatLabel", styles.StatLabel},
		{"StatValue", styles.StatValue},
		{"HelpKey", styles.HelpKey},
		{"HelpDesc", styles.HelpDesc},
		{"Input", styles.Input},
		{"InputFocused", styles.InputFocused},
		{"Dialog", styles.Dialog},
		{"DialogTitle", styles.DialogTitle},
		{"Error", styles.Error},
		{"Warning", styles.Warning},
		{"Success", styles.Success},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Render some text with the style to verify it works
			rendered := tt.style.Render("test")
			if rendered == "" {
				t.Errorf("expected non-empty rendered output for style %s", tt.name)
			}
		})
	}
}

func TestStylesRenderText(t *testing.T) {
	styles := DefaultStyles()

	testText := "Hello, World!"

	// App style should add padding
	appRendered := styles.App.Render(testText)
	if appRendered == "" {
		t.Error("App style rendered empty string")
	}

	// TabActive should be bold
	tabRendered := styles.TabActive.Render("Tab")
	if tabRendered == "" {
		t.Error("TabActive style rendered empty string")
	}

	// Error style should work
	errorRendered := styles.Error.Render("Error message")
	if errorRendered == "" {
		t.Error("Error style rendered empty string")
	}
}

func TestNewStylesFromRegistry(t *testing.T) {
	tp := NewThemeProvider("dracula")
	styles := NewStylesFromRegistry(tp.Registry())

	// Verify that themed styles render text
	if styles.SummaryOK.Render("OK") == "" {
		t.Error("SummaryOK style rendered empty string")
	}
	if styles.SummaryBelow.Render("BelowDailyThreshold") == "" {
		t.Error("SummaryBelow style rendered empty string")
	}
	if styles.EntryPerson.Render("Alice") == "" {
		t.Error("EntryPerson style rendered empty string")
	}
}
