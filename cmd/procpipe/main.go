// Package main provides the entry point for the procpipe CLI.
//
// procpipe is a feature-driven payload processing pipeline. It transforms
// text or binary-style payloads through configurable processors, tracks
// processor state across runs, and renders the results as terminal, JSON,
// or Markdown reports.
//
// Usage:
//
//	procpipe process "  Hello   World  "
//	procpipe process --kind data --feature statistics payload
//
// See --help for all available options.
package main

// main is the entry point for procpipe.
func main() {
	Execute()
}
