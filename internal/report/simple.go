package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/arsemag/Web-Crawler/internal/model"
)

// timeRounding trims sub-millisecond noise from the elapsed duration.
const timeRounding = time.Millisecond

// SimpleWriter outputs human-readable text reports.
// The default output is just the flag verdict, which keeps the crawler
// usable in pipelines that only care about the secret flags.
//
// Design decision: We use plain text without ANSI colors because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// verbose enables the run summary in addition to the flag verdict.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with the full run summary.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.CrawlReport) (int, error) {
	var sb strings.Builder

	if report.FlagFound() {
		for _, flag := range report.Flags {
			sb.WriteString(fmt.Sprintf("Flag found: %s\n", flag))
		}
	} else {
		sb.WriteString("Flag not found.\n")
	}

	if w.verbose {
		w.writeSummary(&sb, report)
	}

	return w.output.Write([]byte(sb.String()))
}

// writeSummary writes the run summary section.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, report *model.CrawlReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 50))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Server:        %s\n", report.Server))
	sb.WriteString(fmt.Sprintf("Username:      %s\n", report.Username))
	sb.WriteString(fmt.Sprintf("Started:       %s\n", report.StartedAt.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Elapsed:       %s\n", report.Elapsed.Round(timeRounding)))
	sb.WriteString(fmt.Sprintf("Pages visited: %d\n", report.PagesVisited))
	sb.WriteString(fmt.Sprintf("Flags found:   %d\n", len(report.Flags)))
	sb.WriteString(strings.Repeat("-", 50))
	sb.WriteString("\n")
}
