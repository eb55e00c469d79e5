package reconcile

import "sheetmerge/core/table"

// Column prefixes applied to bucket headers. Left-drawn rows populate the
// L__ column set, right-drawn rows the R__ set; the opposite side of a row
// stays empty.
const (
	LeftPrefix  = "L__"
	RightPrefix = "R__"
)

// Log levels used in reconciliation log entries.
const (
	LevelInfo = "info"
	LevelWarn = "warn"
)

// LogEntry is one ordered severity/message pair summarizing a
// reconciliation outcome.
type LogEntry struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Mismatch records, for one matched pair, the same-named non-key columns
// whose values disagree between the two sides.
type Mismatch struct {
	// Key is the composite key of the matched pair.
	Key string `json:"key"`
	// Columns lists the differing column names, in left header order.
	Columns []string `json:"columns"`
}

// Buckets is the classification outcome of a reconciliation. Each bucket is
// itself a table whose headers carry the L__/R__ prefixes.
type Buckets struct {
	// Matched holds one row per uniquely keyed pair: the left row's cells
	// under L__ headers followed by the right row's cells under R__ headers.
	Matched *table.Table

	// LeftOnly holds rows whose key appears only on the left, under L__
	// headers, in left input order.
	LeftOnly *table.Table

	// RightOnly holds rows whose key appears only on the right, under R__
	// headers, in right input order.
	RightOnly *table.Table

	// Duplicates holds every row (both sides) of any key that maps to more
	// than one row on either side while appearing on both. Headers are the
	// L__ set followed by the R__ set; each row fills only its own side.
	Duplicates *table.Table

	// Mismatches lists matched pairs whose shared non-key columns differ.
	Mismatches []Mismatch

	// Log summarizes bucket counts as ordered severity/message pairs.
	Log []LogEntry
}

// DiffSpec describes one user-requested numeric difference column computed
// as left minus right. Specs with any empty field are ignored.
type DiffSpec struct {
	// LeftColumn is the left-side source column (pre-prefix name).
	LeftColumn string
	// RightColumn is the right-side source column (pre-prefix name).
	RightColumn string
	// Label names the output column; it must be unique in the output header
	// set.
	Label string
}
