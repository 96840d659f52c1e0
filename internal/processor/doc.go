// Package processor provides the payload-processing pipeline.
//
// A Processor wraps a pluggable Transformer (the "variant") with the shared
// pipeline concerns: input validation, status bookkeeping, error translation,
// and counting. It exposes synchronous, asynchronous, and batch entry points.
//
// Design decision: The original shape of this problem is a template-method
// base class with per-type overrides. We express it as a Transformer
// interface implemented by each variant plus one concrete Processor type,
// because:
//  1. It keeps the pipeline logic in a single place instead of spread
//     across an inheritance hierarchy
//  2. Variants stay trivially testable in isolation
//  3. New variants plug in without touching the pipeline
//
// State mutation (status, timestamps, counter) is serialized per Processor
// behind a mutex, so concurrent calls never observe a partial update.
// Asynchronous calls run on a shared worker Pool and resolve a Future;
// in-flight work is never cancelled, callers may only abandon the Future.
package processor
