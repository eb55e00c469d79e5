// Package reconcile classifies the rows of two keyed tables and merges the
// classification back into a single result table.
//
// The engine builds a composite-key index per side in one pass, then routes
// every row into exactly one of four buckets:
//
//   - Matched: the key maps to exactly one row on each side.
//   - LeftOnly / RightOnly: the key appears on one side only, regardless of
//     how many rows share it there.
//   - Duplicates: the key appears on both sides and maps to more than one
//     row on at least one of them. Ambiguous keys are excluded from matching
//     entirely rather than paired arbitrarily.
//
// Duplicate keys are a defined classification outcome reported through the
// log, never an error. Unify then folds the buckets into one schema with
// user-requested numeric difference columns.
//
// All functions are pure with respect to their inputs: they allocate and
// return new tables, so concurrent callers need no coordination.
package reconcile
