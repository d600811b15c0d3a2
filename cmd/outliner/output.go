package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tsawler/outliner/batch"
)

var (
	// headerStyle for the summary title
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for succeeded counts
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// errorStyle for failed counts and per-file errors
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// boxStyle wraps the run summary
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("81")).
			Padding(0, 1)
)

// printSummary renders a human-readable batch report.
func printSummary(w io.Writer, outputDir string, report batch.Report) {
	body := fmt.Sprintf("%s\n%s %d   %s %d   %s %d\n%s %s\n%s %s",
		headerStyle.Render("Batch run complete"),
		dimStyle.Render("Total:"), report.Total,
		successStyle.Render("Succeeded:"), report.Succeeded,
		errorStyle.Render("Failed:"), report.Failed,
		dimStyle.Render("Elapsed:"), report.Elapsed.Round(time.Millisecond).String(),
		dimStyle.Render("Output:"), outputDir,
	)
	fmt.Fprintln(w, boxStyle.Render(body))

	for _, r := range report.Results {
		if r.Status == batch.StatusError {
			fmt.Fprintf(w, "%s %s: %s\n", errorStyle.Render("✗"), r.File, r.Error)
			continue
		}
		fmt.Fprintf(w, "%s %s %s\n", successStyle.Render("✓"), r.File,
			dimStyle.Render(fmt.Sprintf("(%d headings)", r.Headings)))
	}
}
