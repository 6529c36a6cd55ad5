package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/arsemag/Web-Crawler/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *model.CrawlReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeFlags(md, report)
	w.writePages(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.CrawlReport) {
	md.H1("Crawl Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Server", "`" + report.Server + "`"},
			{"Username", "`" + report.Username + "`"},
			{"Started", report.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Elapsed", report.Elapsed.Round(timeRounding).String()},
			{"Pages Visited", strconv.Itoa(report.PagesVisited)},
		},
	})
	md.PlainText("")
}

// writeFlags writes the secret flags section.
func (w *MarkdownWriter) writeFlags(md *markdown.Markdown, report *model.CrawlReport) {
	md.H2("Secret Flags")
	md.PlainText("")

	if !report.FlagFound() {
		md.Warning("No secret flag was found during this run.")
		md.PlainText("")
		return
	}

	md.Tipf("%d secret flag(s) found.", len(report.Flags))
	md.PlainText("")

	flags := make([]string, len(report.Flags))
	for i, flag := range report.Flags {
		flags[i] = "`" + flag + "`"
	}
	md.BulletList(flags...)
	md.PlainText("")
}

// writePages writes the visited pages section.
func (w *MarkdownWriter) writePages(md *markdown.Markdown, report *model.CrawlReport) {
	md.H2("Visited Pages")
	md.PlainText("")

	if len(report.Pages) == 0 {
		md.PlainText("No pages recorded.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.Pages))
	for i, page := range report.Pages {
		flag := "-"
		if page.HasFlag() {
			flag = "`" + page.Flag + "`"
		}
		rows[i] = []string{
			truncateString(page.Path, 60),
			page.StatusLine,
			flag,
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Path", "Status", "Flag"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [Web-Crawler](https://github.com/arsemag/Web-Crawler)*")
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
