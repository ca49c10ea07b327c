package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/entry"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/service"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/summary"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/tui/ui"
)

// SummaryModel is the model for the compliance summary view
type SummaryModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width   int
	height  int
	result  *service.SummaryResult
	loading bool
	err     error
}

// NewSummaryModel creates a new summary view model
func NewSummaryModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) SummaryModel {
	return SummaryModel{
		services: services,
		styles:   styles,
		keys:     keys,
	}
}

// summaryLoadedMsg is sent when the summary is computed
type summaryLoadedMsg struct {
	result *service.SummaryResult
	err    error
}

// Init implements tea.Model
func (m SummaryModel) Init() tea.Cmd {
	return m.loadSummary()
}

// Update implements tea.Model
func (m SummaryModel) Update(msg tea.Msg) (SummaryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Refresh) {
			return m, m.loadSummary()
		}

	case summaryLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.result = msg.result

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m SummaryModel) View() string {
	var b strings.Builder

	thresholds := m.services.Summary.Thresholds()
	title := fmt.Sprintf("Compliance Summary (daily %s, weekly %s)",
		entry.Minutes(thresholds.DailyMinutes), entry.Minutes(thresholds.WeeklyMinutes))
	b.WriteString(m.styles.ViewTitle.Render(title))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}

	if m.result == nil || len(m.result.Lines) == 0 {
		b.WriteString(m.styles.StatLabel.Render("No entries to summarize"))
		return b.String()
	}

	below := 0
	lastPerson := ""
	for _, line := range m.result.Lines {
		if line.Person != lastPerson {
			if lastPerson != "" {
				b.WriteString("\n")
			}
			b.WriteString(m.styles.EntryPerson.Render(line.Person))
			b.WriteString("\n")
			lastPerson = line.Person
		}

		b.WriteString(m.renderSummaryLine(line))
		b.WriteString("\n")
		if line.Status != summary.StatusOK {
			below++
		}
	}

	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", min(50, max(1, m.width))))
	b.WriteString("\n")
	if below == 0 {
		b.WriteString(m.styles.Success.Render("All targets met"))
	} else {
		b.WriteString(m.styles.Warning.Render(
			fmt.Sprintf("%d %s below target", below, pluralize("line", below))))
	}

	return b.String()
}

// renderSummaryLine renders one daily or aggregate summary line
func (m SummaryModel) renderSummaryLine(line summary.Line) string {
	label := line.Date.String()
	if line.Kind == summary.KindAggregate {
		label = "total"
		if line.Week != "" {
			label = line.Week
		}
	}

	statusStyle := m.styles.SummaryOK
	if line.Status != summary.StatusOK {
		statusStyle = m.styles.SummaryBelow
	}

	return fmt.Sprintf("  %-12s %10s  %s",
		label,
		line.Hours(),
		statusStyle.Render(string(line.Status)))
}

// SetSize sets the view dimensions
func (m *SummaryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// loadSummary creates a command to compute the summary
func (m SummaryModel) loadSummary() tea.Cmd {
	return func() tea.Msg {
		result, err := m.services.Summary.Summarize(nil)
		return summaryLoadedMsg{result: result, err: err}
	}
}
