package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/procpipe/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting and per-item outcome indicators.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// showItems controls whether the per-item results section is shown.
	showItems bool

	// verbose enables additional detail in the output, such as the
	// original inputs alongside the outputs.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowItems configures the writer to show the per-item results section.
func WithShowItems(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showItems = show
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		showItems:  true,
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the run report in human-readable format.
func (w *SimpleWriter) Write(report *model.RunReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeSummary(&sb, report)

	if w.showItems {
		w.writeItems(&sb, report)
	}

	w.writeProcessor(&sb, report)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with run information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.RunReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                        PROCPIPE RUN REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Processor Kind: %s\n", report.Kind))
	sb.WriteString(fmt.Sprintf("Started:        %s\n", report.StartedAt.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Elapsed:        %s\n", report.Elapsed))
	sb.WriteString(fmt.Sprintf("Items:          %d\n", len(report.Items)))
	sb.WriteString("\n")
}

// writeSummary writes the outcome summary section.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, report *model.RunReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("OUTCOME SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  SUCCEEDED: %d\n", report.Succeeded()))
	sb.WriteString(fmt.Sprintf("  EMPTY:     %d\n", report.Failed()))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  TOTAL:     %d items\n", len(report.Items)))
	sb.WriteString("\n")
}

// writeItems writes the per-item results section.
func (w *SimpleWriter) writeItems(sb *strings.Builder, report *model.RunReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("RESULTS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(report.Items) == 0 {
		sb.WriteString("  No items processed\n\n")
		return
	}

	for _, item := range report.Items {
		indicator := w.getItemIndicator(item)
		sb.WriteString(fmt.Sprintf("  [%s] #%d", indicator, item.Index))

		if item.OK {
			sb.WriteString(fmt.Sprintf(" %s\n", item.Output))
		} else if item.Error != "" {
			sb.WriteString(fmt.Sprintf(" %s\n", item.Error))
		} else {
			sb.WriteString(" (absent)\n")
		}

		if w.verbose && item.Input != "" {
			sb.WriteString(fmt.Sprintf("      Input: %s\n", item.Input))
		}
	}
	sb.WriteString("\n")
}

// getItemIndicator returns a visual indicator for the item outcome.
func (w *SimpleWriter) getItemIndicator(item model.ItemResult) string {
	switch {
	case item.OK:
		return "+"
	case item.Error != "":
		return "!"
	default:
		return "-"
	}
}

// writeProcessor writes the processor state section.
func (w *SimpleWriter) writeProcessor(sb *strings.Builder, report *model.RunReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("PROCESSOR\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  %s\n", report.Processor.Statistics()))
	sb.WriteString("\n")
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by procpipe\n")
	sb.WriteString("https://github.com/nao1215/procpipe\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
