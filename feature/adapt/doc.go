// Package adapt implements the batch CSV adapter feature.
//
// It normalizes heterogeneous CSV files into the canonical schema the
// downstream batch processor expects: canonical column set, order,
// names, and delimiter.
//
// # Pipeline
//
// Every input file passes through the same stages:
//
//	pending -> parsed -> reconciled -> adapted -> written
//
// or ends in failed when it cannot be parsed, misses reference columns,
// or carries duplicate column names. Failed files are skipped, copied
// to the invalid-files directory, and the run continues; only sink
// failures and an unreadable input directory abort a run.
//
// # Components
//
//   - Apply: applies a reconcile.Plan to one parsed table and produces
//     the adapted table plus the ordered action log.
//   - Service: orchestrates a run — discovery, per-file pipeline,
//     logging, and the final report with run ID and timing.
//   - Sink: output target abstraction; a local directory by default,
//     optionally an object storage bucket.
//
// Every valid input file produces exactly one output file, including
// files that were already in the correct format (those are re-emitted
// unchanged). Input files are never modified or deleted.
package adapt
