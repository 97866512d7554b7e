package cli

// render.go formats validation findings and statistics for the terminal.
// The table renderer is the default; json/csv/markdown cover scripting.

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/udayashankhii/trekadmin-sub001/internal/core"
)

// renderFindings writes validation rows in the requested format.
func renderFindings(w io.Writer, rows []findingRow, format string) error {
	switch format {
	case "json":
		return renderJSON(w, rows)
	case "csv":
		return renderFindingsCSV(w, rows)
	case "md", "markdown":
		return renderFindingsTable(w, rows, true)
	default:
		return renderFindingsTable(w, rows, false)
	}
}

func renderFindingsTable(w io.Writer, rows []findingRow, markdown bool) error {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 treks)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Slug", "Title", "Status", "Findings"})

	for _, row := range rows {
		status := "valid"
		if !row.Valid {
			status = "invalid"
		}
		t.AppendRow(table.Row{
			row.Index, row.Slug, row.Title, status, formatFindings(row),
		})
	}

	if markdown {
		t.RenderMarkdown()
	} else {
		t.Render()
	}
	_, _ = fmt.Fprintf(w, "(%d treks)\n", len(rows))
	return nil
}

func renderFindingsCSV(w io.Writer, rows []findingRow) error {
	_, _ = fmt.Fprintln(w, "index,slug,title,valid,errors,warnings")
	for _, row := range rows {
		_, _ = fmt.Fprintf(w, "%d,%s,%s,%v,%s,%s\n",
			row.Index,
			escapeCSV(row.Slug),
			escapeCSV(row.Title),
			row.Valid,
			escapeCSV(strings.Join(row.Errors, "; ")),
			escapeCSV(strings.Join(row.Warnings, "; ")),
		)
	}
	return nil
}

// formatFindings folds a row's errors and warnings into one cell.
func formatFindings(row findingRow) string {
	var parts []string
	for _, e := range row.Errors {
		parts = append(parts, "E: "+e)
	}
	for _, warn := range row.Warnings {
		parts = append(parts, "W: "+warn)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, "\n")
}

// renderStats writes aggregate counts in the requested format.
func renderStats(w io.Writer, stats core.Statistics, format string) error {
	switch format {
	case "json":
		return renderJSON(w, stats)
	case "csv":
		_, _ = fmt.Fprintln(w, "metric,value")
		for _, row := range statsRows(stats) {
			_, _ = fmt.Fprintf(w, "%s,%d\n", row.name, row.value)
		}
		return nil
	case "md", "markdown":
		return renderStatsTable(w, stats, true)
	default:
		return renderStatsTable(w, stats, false)
	}
}

func renderStatsTable(w io.Writer, stats core.Statistics, markdown bool) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Metric", "Value"})
	for _, row := range statsRows(stats) {
		t.AppendRow(table.Row{row.name, row.value})
	}
	if markdown {
		t.RenderMarkdown()
	} else {
		t.Render()
	}
	return nil
}

type statRow struct {
	name  string
	value int
}

func statsRows(stats core.Statistics) []statRow {
	return []statRow{
		{"regions", stats.Regions},
		{"treks", stats.Treks},
		{"total_itinerary_days", stats.TotalItineraryDays},
		{"total_highlights", stats.TotalHighlights},
		{"total_faqs", stats.TotalFAQs},
		{"total_gallery_images", stats.TotalGalleryImages},
		{"total_departures", stats.TotalDepartures},
		{"days_with_gps", stats.DaysWithGPS},
	}
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// escapeCSV quotes a value when it contains CSV metacharacters.
func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
