package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/procpipe/internal/model"
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

// Write outputs the run report in Markdown format.
func (w *MarkdownWriter) Write(report *model.RunReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writeResults(md, report)
	w.writeProcessor(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.RunReport) {
	md.H1("Processing Report")
	md.PlainText("")

	// Basic info table
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Processor Kind", "`" + report.Kind + "`"},
			{"Started", report.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Elapsed", report.Elapsed.String()},
			{"Items", strconv.Itoa(len(report.Items))},
		},
	})
	md.PlainText("")
}

// writeSummary writes the outcome summary section.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.RunReport) {
	md.H2("Outcome Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Outcome", "Count"},
		Rows: [][]string{
			{"✅ Succeeded", strconv.Itoa(report.Succeeded())},
			{"⚪ Empty", strconv.Itoa(report.Failed())},
			{"**Total**", "**" + strconv.Itoa(len(report.Items)) + "**"},
		},
	})
	md.PlainText("")

	if len(report.Items) > 0 {
		w.writePieChart(md, report)
	}

	w.writeAlert(md, report)
}

// writePieChart writes a mermaid pie chart for the outcome distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.RunReport) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Outcome Distribution"),
		piechart.WithShowData(true),
	)

	if n := report.Succeeded(); n > 0 {
		chart.LabelAndIntValue("Succeeded", uint64(n))
	}
	if n := report.Failed(); n > 0 {
		chart.LabelAndIntValue("Empty", uint64(n))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on the outcome counts.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.RunReport) {
	failed := report.Failed()
	switch {
	case len(report.Items) == 0:
		md.Note("No items were processed in this run.")
	case failed == len(report.Items):
		md.Cautionf("All %d item(s) produced an empty result.", failed)
	case failed > 0:
		md.Warningf("%d item(s) produced an empty result and should be reviewed.", failed)
	default:
		md.Tip("All items processed successfully.")
	}
	md.PlainText("")
}

// writeResults writes the per-item results table.
func (w *MarkdownWriter) writeResults(md *markdown.Markdown, report *model.RunReport) {
	md.H2("Results")
	md.PlainText("")

	if len(report.Items) == 0 {
		md.PlainText("No items processed.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.Items))
	for i, item := range report.Items {
		input := item.Input
		if input == "" {
			input = "-"
		}

		rows[i] = []string{
			strconv.Itoa(item.Index),
			truncateString(input, 40),
			truncateString(w.getOutcomeText(item), 60),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Index", "Input", "Outcome"},
		Rows:   rows,
	})
	md.PlainText("")
}

// getOutcomeText returns the outcome cell text for a single item.
func (w *MarkdownWriter) getOutcomeText(item model.ItemResult) string {
	switch {
	case item.OK:
		return item.Output
	case item.Error != "":
		return "❌ " + item.Error
	default:
		return "⚪ absent"
	}
}

// writeProcessor writes the processor state section.
func (w *MarkdownWriter) writeProcessor(md *markdown.Markdown, report *model.RunReport) {
	md.H2("Processor")
	md.PlainText("")

	snap := report.Processor
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"ID", "`" + snap.ID + "`"},
			{"Name", snap.Name},
			{"Status", snap.Status.String()},
			{"Processed", strconv.FormatUint(snap.ProcessedCount, 10)},
			{"Created", snap.CreatedAt.Format("2006-01-02 15:04:05 MST")},
		},
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [procpipe](https://github.com/nao1215/procpipe)*")
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
