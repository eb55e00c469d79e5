// Package table defines the in-memory tabular data model shared by the
// reconciliation and partition engines.
//
// A Table is an ordered header list plus rows of typed cells. Cell text is
// parsed exactly once at ingestion into Text, Number or Date; downstream
// logic (sorting, numeric diffs) operates on the typed representation while
// the original text is preserved for output.
//
// The package also owns composite key construction (BuildKey) and the
// generic stable multi-column sort (Sort) reused by the reconcile result
// ordering and by split output sorting.
package table
