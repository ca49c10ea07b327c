package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/cli"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/entry"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/filter"
)

// exportCmd represents the export parent command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export entries to various formats",
	Long: `Export work entries to various formats for programmatic use, backup,
or migration.

Available formats:
  json    Export entries as JSON
  csv     Export entries as CSV

The root filter flags narrow the exported set:

Examples:
  sharptime export json                     Export all entries as JSON
  sharptime export json > backup.json       Export to file
  sharptime export csv --person Alice       Export Alice's entries as CSV
  sharptime export csv --date 2025-01-10    Export a single day`,
}

// exportJSONCmd represents the export json command
var exportJSONCmd = &cobra.Command{
	Use:   "json",
	Short: "Export entries as JSON",
	Long: `Export entries to JSON format.

Output includes metadata (export timestamp, total entries, filter
criteria) and an array of entry objects.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exportJSON(cmd)
	},
}

// exportCSVCmd represents the export csv command
var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export entries as CSV",
	Long: `Export entries to CSV format.

Output is in standard CSV format with headers.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exportCSV(cmd)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportJSONCmd)
	exportCmd.AddCommand(exportCSVCmd)
}

// exportEntries reads the filtered view shared by both export formats.
// Returns ok=false after reporting the failure.
func exportEntries(cmd *cobra.Command) ([]entry.Entry, *filter.Filter, bool) {
	deps := cli.GetDeps()

	f, ok := buildFilter(cmd)
	if !ok {
		return nil, nil, false
	}

	result, err := deps.Services.Entry.List(f)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read entries from storage")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return nil, nil, false
	}

	if len(result.Warnings) > 0 {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: Found %d corrupted line(s) in storage file\n", len(result.Warnings))
	}

	return result.Entries, f, true
}

// exportJSON handles the export json command logic
func exportJSON(cmd *cobra.Command) {
	deps := cli.GetDeps()

	entries, f, ok := exportEntries(cmd)
	if !ok {
		return
	}

	output := struct {
		Metadata struct {
			ExportTimestamp time.Time         `json:"export_timestamp"`
			TotalEntries    int               `json:"total_entries"`
			FilterCriteria  map[string]string `json:"filter_criteria"`
		} `json:"metadata"`
		Entries []entry.Entry `json:"entries"`
	}{}

	output.Metadata.ExportTimestamp = time.Now()
	output.Metadata.TotalEntries = len(entries)
	output.Metadata.FilterCriteria = make(map[string]string)
	if f.Person != "" {
		output.Metadata.FilterCriteria["person"] = f.Person
	}
	if !f.Date.IsZero() {
		output.Metadata.FilterCriteria["date"] = f.Date.String()
	}
	if f.Keyword != "" {
		output.Metadata.FilterCriteria["keyword"] = f.Keyword
	}
	output.Entries = entries

	encoder := json.NewEncoder(deps.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to encode JSON output")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}
}

// exportCSV handles the export csv command logic
func exportCSV(cmd *cobra.Command) {
	deps := cli.GetDeps()

	entries, _, ok := exportEntries(cmd)
	if !ok {
		return
	}

	writer := csv.NewWriter(deps.Stdout)

	headers := []string{"id", "person", "date", "start", "end", "duration_minutes", "duration_hours", "description", "completed", "created_at"}
	if err := writer.Write(headers); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write CSV headers")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	for _, e := range entries {
		start := ""
		if e.Start != nil {
			start = e.Start.String()
		}
		end := ""
		if e.End != nil {
			end = e.End.String()
		}
		durationHours := strconv.FormatFloat(float64(e.Duration)/60.0, 'f', 2, 64)

		row := []string{
			e.ID,
			e.Person,
			e.Date.String(),
			start,
			end,
			strconv.Itoa(int(e.Duration)),
			durationHours,
			e.Description,
			strconv.FormatBool(e.Completed),
			e.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write CSV row")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			deps.Exit(1)
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to flush CSV output")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}
}
