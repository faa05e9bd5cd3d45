// Package pipeline streams whole FASTA records through per-sequence mask
// aggregators and calls a visit callback in input order.
//
// Concurrency lives here, not in the core: aggregators are never shared, and
// the collector is the only goroutine that touches the output side.
package pipeline
