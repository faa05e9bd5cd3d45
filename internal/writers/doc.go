// Package writers turns per-sequence mask reports into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (text/TSV, JSON, JSONL).
//   - The mask core stays domain-only; the pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
