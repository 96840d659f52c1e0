// Package report provides output writers for processing run reports.
//
// It supports multiple output formats:
//   - Simple: human-readable text for terminal display
//   - JSON: machine-readable format for tool integration
//   - Markdown: documentation-friendly format with tables and charts
//
// All writers implement the Writer interface and render a
// model.RunReport, so output destinations and formats can be swapped
// without touching the pipeline itself.
package report
