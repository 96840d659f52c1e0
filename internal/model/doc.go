// Package model defines the core data structures used throughout procpipe.
//
// This package contains the following main types:
//   - Status: Processor lifecycle state with labels and priorities
//   - FeatureSet: Feature-flag configuration consulted by transformers
//   - Snapshot: An immutable view of a processor's state
//   - RunReport: The record of a processing run, consumed by report writers
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (processor, report, cmd) need to use these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output.
package model
