package views

import (
	"fmt"
	"strings"

	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/entry"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/tui/ui"
)

// EntryRenderOptions configures how entries are rendered
type EntryRenderOptions struct {
	Width  int // Available width for rendering
	Cursor int // Currently selected entry index (-1 for none)
}

// RenderEntryList renders a list of entries with aligned columns
func RenderEntryList(entries []entry.Entry, styles ui.Styles, opts EntryRenderOptions) string {
	if len(entries) == 0 {
		return ""
	}

	// Calculate column widths for alignment
	maxPersonWidth := 0
	maxDescWidth := 0

	type entryData struct {
		date     string
		person   string
		time     string
		desc     string
		duration string
	}
	data := make([]entryData, len(entries))

	for i, e := range entries {
		if len(e.Person) > maxPersonWidth {
			maxPersonWidth = len(e.Person)
		}

		timeStr := ""
		if e.Start != nil && e.End != nil {
			timeStr = fmt.Sprintf("%s-%s", e.Start, e.End)
		}

		desc := e.Description
		if !e.Completed {
			desc += " [open]"
		}
		if len(desc) > maxDescWidth {
			maxDescWidth = len(desc)
		}

		data[i] = entryData{
			date:     e.Date.String(),
			person:   e.Person,
			time:     timeStr,
			desc:     desc,
			duration: e.Duration.String(),
		}
	}

	// Limit description width to leave room for the duration column
	maxAllowedDescWidth := opts.Width - maxPersonWidth - 40
	if maxAllowedDescWidth < 20 {
		maxAllowedDescWidth = 20
	}
	if maxDescWidth > maxAllowedDescWidth {
		maxDescWidth = maxAllowedDescWidth
	}

	// Render entries with alignment
	var b strings.Builder
	for i, ed := range data {
		style := styles.EntryNormal
		if i == opts.Cursor {
			style = styles.EntrySelected
		}

		// Truncate description if needed
		desc := ed.desc
		if len(desc) > maxDescWidth {
			desc = desc[:maxDescWidth-1] + "…"
		}

		// Build aligned line
		dateCol := styles.EntryDate.Render(ed.date)
		personCol := styles.EntryPerson.Render(fmt.Sprintf("%-*s", maxPersonWidth, ed.person))
		timeCol := styles.EntryTime.Render(ed.time)
		descCol := fmt.Sprintf("%-*s", maxDescWidth, desc)
		duration := styles.EntryDuration.Render(ed.duration)

		line := fmt.Sprintf("%s %s %s %s %s", dateCol, personCol, timeCol, descCol, duration)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
