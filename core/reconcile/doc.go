// Package reconcile computes the transformation plan that maps an
// arbitrary CSV header onto the canonical reference schema.
//
// Given one input header and a schema, Reconcile decides which columns
// to drop, which to rename, and how to reorder the survivors so the
// result matches the reference header exactly. The computation is pure:
// it touches no file and carries no state, which keeps it trivial to
// test and safe to run for many files against one shared schema.
//
// # Outcomes
//
// A header either yields a Plan or fails with one of two typed errors:
//
//   - SchemaMismatchError: the input lacks columns the reference
//     demands. The file cannot be adapted and is skipped.
//   - DuplicateColumnError: the input header carries a column name more
//     than once, verbatim or after renaming.
//
// Extra columns are not an error; they are planned for dropping.
// Rename-map entries that match nothing in the header are ignored.
//
// # Identity plans
//
// When the input header already equals the reference header, the plan
// is marked Identity and the file adapter can short-circuit to a plain
// copy (delimiter permitting).
package reconcile
