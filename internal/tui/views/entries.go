package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/entry"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/filter"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/service"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/tui/ui"
)

// entryMode represents the current mode of the entries view
type entryMode int

const (
	entryModeNormal entryMode = iota
	entryModeAdd
	entryModeEdit
	entryModeFilter
	entryModeSearch
)

// form input indices for add/edit mode
const (
	inputPerson = iota
	inputDate
	inputDuration
	inputDescription
	inputCount
)

// EntriesModel is the model for the entries view
type EntriesModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width   int
	height  int
	cursor  int
	entries []entry.Entry
	total   entry.Minutes
	loading bool
	err     error

	// Active filter
	personFilter string
	keyword      string

	// Input mode state
	mode         entryMode
	inputs       [inputCount]textinput.Model
	focusedInput int
	editID       string // ID of entry being edited

	// Filter/search input state
	filterInput textinput.Model
}

// NewEntriesModel creates a new entries view model
func NewEntriesModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) EntriesModel {
	personInput := textinput.New()
	personInput.Placeholder = "Person name..."
	personInput.CharLimit = 100
	personInput.Width = 30

	dateInput := textinput.New()
	dateInput.Placeholder = "Date (YYYY-MM-DD, empty = today)..."
	dateInput.CharLimit = 10
	dateInput.Width = 30

	durationInput := textinput.New()
	durationInput.Placeholder = "Duration (H:MM, e.g. 8:00, 0:45)..."
	durationInput.CharLimit = 10
	durationInput.Width = 30

	descInput := textinput.New()
	descInput.Placeholder = "Description..."
	descInput.CharLimit = 200
	descInput.Width = 50

	filterInput := textinput.New()
	filterInput.Placeholder = "Filter..."
	filterInput.CharLimit = 100
	filterInput.Width = 40

	m := EntriesModel{
		services:    services,
		styles:      styles,
		keys:        keys,
		filterInput: filterInput,
	}
	m.inputs[inputPerson] = personInput
	m.inputs[inputDate] = dateInput
	m.inputs[inputDuration] = durationInput
	m.inputs[inputDescription] = descInput
	return m
}

// entriesLoadedMsg is sent when entries are loaded
type entriesLoadedMsg struct {
	entries []entry.Entry
	total   entry.Minutes
	err     error
}

// Init implements tea.Model
func (m EntriesModel) Init() tea.Cmd {
	return m.loadEntries()
}

// Update implements tea.Model
func (m EntriesModel) Update(msg tea.Msg) (EntriesModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Handle input modes
		switch m.mode {
		case entryModeAdd, entryModeEdit:
			return m.handleInputMode(msg)
		case entryModeFilter, entryModeSearch:
			return m.handleFilterMode(msg)
		}

		// Normal mode key handling
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadEntries()
		case key.Matches(msg, m.keys.New):
			m.mode = entryModeAdd
			for i := range m.inputs {
				m.inputs[i].SetValue("")
			}
			m.focusInput(inputPerson)
			return m, textinput.Blink
		case key.Matches(msg, m.keys.Edit):
			if len(m.entries) > 0 && m.cursor < len(m.entries) {
				m.mode = entryModeEdit
				e := m.entries[m.cursor]
				m.editID = e.ID
				m.inputs[inputPerson].SetValue(e.Person)
				m.inputs[inputDate].SetValue(e.Date.String())
				m.inputs[inputDuration].SetValue(fmt.Sprintf("%d:%02d", int(e.Duration)/60, int(e.Duration)%60))
				m.inputs[inputDescription].SetValue(e.Description)
				m.focusInput(inputPerson)
				return m, textinput.Blink
			}
			return m, nil
		case key.Matches(msg, m.keys.Filter):
			m.mode = entryModeFilter
			m.filterInput.Placeholder = "Filter by person..."
			m.filterInput.SetValue(m.personFilter)
			m.filterInput.Focus()
			return m, textinput.Blink
		case key.Matches(msg, m.keys.Search):
			m.mode = entryModeSearch
			m.filterInput.Placeholder = "Search descriptions..."
			m.filterInput.SetValue(m.keyword)
			m.filterInput.Focus()
			return m, textinput.Blink
		case key.Matches(msg, m.keys.Back):
			// Clear active filters
			if m.personFilter != "" || m.keyword != "" {
				m.personFilter = ""
				m.keyword = ""
				return m, m.loadEntries()
			}
			return m, nil
		}

	case entriesLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.mode = entryModeNormal
		if msg.err == nil {
			m.entries = msg.entries
			m.total = msg.total
			if m.cursor >= len(m.entries) {
				m.cursor = max(0, len(m.entries)-1)
			}
		}

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	// Update focused text input if in a form mode
	if m.mode == entryModeAdd || m.mode == entryModeEdit {
		m.inputs[m.focusedInput], cmd = m.inputs[m.focusedInput].Update(msg)
		return m, cmd
	}
	if (m.mode == entryModeFilter || m.mode == entryModeSearch) && m.filterInput.Focused() {
		m.filterInput, cmd = m.filterInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// focusInput moves form focus to the given input index
func (m *EntriesModel) focusInput(index int) {
	m.focusedInput = index
	for i := range m.inputs {
		if i == index {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// handleInputMode handles key events when in add/edit mode
func (m EntriesModel) handleInputMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select): // Enter
		person := strings.TrimSpace(m.inputs[inputPerson].Value())
		duration := strings.TrimSpace(m.inputs[inputDuration].Value())
		if person != "" && duration != "" {
			for i := range m.inputs {
				m.inputs[i].Blur()
			}
			if m.mode == entryModeAdd {
				return m, m.addEntry()
			}
			return m, m.editEntry(m.editID)
		}
		return m, nil
	case key.Matches(msg, m.keys.Back): // Escape
		m.mode = entryModeNormal
		for i := range m.inputs {
			m.inputs[i].Blur()
		}
		return m, nil
	case msg.String() == "tab":
		m.focusInput((m.focusedInput + 1) % inputCount)
		return m, textinput.Blink
	case msg.String() == "shift+tab":
		m.focusInput((m.focusedInput - 1 + inputCount) % inputCount)
		return m, textinput.Blink
	}

	// Pass other keys to focused input
	var cmd tea.Cmd
	m.inputs[m.focusedInput], cmd = m.inputs[m.focusedInput].Update(msg)
	return m, cmd
}

// handleFilterMode handles key events when entering a person filter or
// description search
func (m EntriesModel) handleFilterMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select): // Enter
		value := strings.TrimSpace(m.filterInput.Value())
		if m.mode == entryModeFilter {
			m.personFilter = value
		} else {
			m.keyword = value
		}
		m.filterInput.Blur()
		return m, m.loadEntries()
	case key.Matches(msg, m.keys.Back): // Escape
		m.mode = entryModeNormal
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m EntriesModel) View() string {
	var b strings.Builder

	// Handle special modes
	switch m.mode {
	case entryModeAdd:
		return m.renderEntryForm("New Entry")
	case entryModeEdit:
		return m.renderEntryForm("Edit Entry")
	case entryModeFilter, entryModeSearch:
		return m.renderFilterForm()
	}

	title := "Entries"
	if m.personFilter != "" {
		title += " for " + m.personFilter
	}
	if m.keyword != "" {
		title += fmt.Sprintf(" matching %q", m.keyword)
	}
	b.WriteString(m.styles.ViewTitle.Render(title))
	b.WriteString("\n")

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}

	if len(m.entries) == 0 {
		b.WriteString(m.styles.StatLabel.Render("No entries found"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatLabel.Render("Press 'n' to add a new entry"))
		return b.String()
	}

	// Render entries using shared renderer
	b.WriteString(RenderEntryList(m.entries, m.styles, EntryRenderOptions{
		Width:  m.width,
		Cursor: m.cursor,
	}))

	// Total
	b.WriteString(strings.Repeat("─", min(50, max(1, m.width))))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total: %s (%d %s)",
		m.total,
		len(m.entries),
		pluralize("entry", len(m.entries))))

	return b.String()
}

// renderEntryForm renders the add/edit entry form
func (m EntriesModel) renderEntryForm(title string) string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render(title))
	b.WriteString("\n\n")

	labels := [inputCount]string{"Person:", "Date:", "Duration:", "Description:"}
	for i, label := range labels {
		if i == m.focusedInput {
			label = "▸ " + label
		}
		b.WriteString(m.styles.StatLabel.Render(label))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.StatLabel.Render("Tab to switch fields, Enter to save, Esc to cancel"))
	return b.String()
}

// renderFilterForm renders the person filter / keyword search input
func (m EntriesModel) renderFilterForm() string {
	var b strings.Builder

	title := "Filter by Person"
	if m.mode == entryModeSearch {
		title = "Search Descriptions"
	}
	b.WriteString(m.styles.ViewTitle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.filterInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.StatLabel.Render("Enter to apply, empty value clears, Esc to cancel"))

	return b.String()
}

// SetSize sets the view dimensions
func (m *EntriesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// currentFilter builds the filter for the active person/keyword criteria.
// Returns nil when nothing is filtered.
func (m EntriesModel) currentFilter() *filter.Filter {
	if m.personFilter == "" && m.keyword == "" {
		return nil
	}
	return filter.New(m.personFilter, entry.Date{}, m.keyword)
}

// loadEntries creates a command to load entries
func (m EntriesModel) loadEntries() tea.Cmd {
	f := m.currentFilter()
	return func() tea.Msg {
		result, err := m.services.Entry.List(f)
		if err != nil {
			return entriesLoadedMsg{err: err}
		}
		return entriesLoadedMsg{
			entries: result.Entries,
			total:   entry.Minutes(result.Total),
		}
	}
}

// addEntry creates a command to add a new entry from the form values
func (m EntriesModel) addEntry() tea.Cmd {
	fields := service.AddFields{
		Person:       strings.TrimSpace(m.inputs[inputPerson].Value()),
		DurationText: strings.TrimSpace(m.inputs[inputDuration].Value()),
		Description:  strings.TrimSpace(m.inputs[inputDescription].Value()),
	}
	dateText := strings.TrimSpace(m.inputs[inputDate].Value())
	f := m.currentFilter()

	return func() tea.Msg {
		date := entry.DateOf(time.Now())
		if dateText != "" {
			parsed, err := entry.ParseDate(dateText)
			if err != nil {
				return entriesLoadedMsg{err: err}
			}
			date = parsed
		}
		fields.Date = date

		if _, err := m.services.Entry.Add(fields); err != nil {
			return entriesLoadedMsg{err: err}
		}
		return reloadEntries(m.services, f)
	}
}

// editEntry creates a command to apply the form values to an existing entry
func (m EntriesModel) editEntry(id string) tea.Cmd {
	person := strings.TrimSpace(m.inputs[inputPerson].Value())
	dateText := strings.TrimSpace(m.inputs[inputDate].Value())
	duration := strings.TrimSpace(m.inputs[inputDuration].Value())
	description := strings.TrimSpace(m.inputs[inputDescription].Value())
	f := m.currentFilter()

	return func() tea.Msg {
		changes := service.Changes{
			Person:       &person,
			DurationText: &duration,
			Description:  &description,
		}
		if dateText != "" {
			date, err := entry.ParseDate(dateText)
			if err != nil {
				return entriesLoadedMsg{err: err}
			}
			changes.Date = &date
		}

		if _, err := m.services.Entry.Update(id, changes); err != nil {
			return entriesLoadedMsg{err: err}
		}
		return reloadEntries(m.services, f)
	}
}

// reloadEntries fetches the current view after a mutation
func reloadEntries(services *service.Services, f *filter.Filter) tea.Msg {
	result, err := services.Entry.List(f)
	if err != nil {
		return entriesLoadedMsg{err: err}
	}
	return entriesLoadedMsg{
		entries: result.Entries,
		total:   entry.Minutes(result.Total),
	}
}

// IsInputMode returns true when the view is capturing keyboard input
func (m EntriesModel) IsInputMode() bool {
	return m.mode != entryModeNormal
}
