// Package writers turns evaluated reports into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV columns, JSON/JSONL).
//   - report stays domain-only; app stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
