package compare

import (
	"sheetmerge/core/reconcile"
	"sheetmerge/core/table"
)

// TablePayload is the wire form of a table: plain text cells.
type TablePayload struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Options mirrors the composite key normalization switches.
type Options struct {
	Trim            bool `json:"trim"`
	CaseInsensitive bool `json:"case_insensitive"`
}

// DiffColumn requests one numeric difference column (left minus right).
type DiffColumn struct {
	Left  string `json:"left"`
	Right string `json:"right"`
	Label string `json:"label"`
}

// SortColumn is one entry of the output sort chain.
type SortColumn struct {
	Column    string `json:"column"`
	Direction string `json:"direction"`
}

// Request carries two inline tables to reconcile. Key is a comma-separated
// list of column names resolved on each side; the single-name case covers
// callers that precomputed a composite helper column.
type Request struct {
	LeftHeaders  []string     `json:"left_headers"`
	LeftRows     [][]string   `json:"left_rows"`
	RightHeaders []string     `json:"right_headers"`
	RightRows    [][]string   `json:"right_rows"`
	Key          string       `json:"key"`
	Options      Options      `json:"options"`
	DiffCols     []DiffColumn `json:"diff_cols,omitempty"`
	Sort         []SortColumn `json:"sort,omitempty"`
}

// Response returns the unified result plus the raw classification buckets.
// Mismatches lists, per matched pair, the same-named non-key columns whose
// values disagree between the two sides.
type Response struct {
	Result     TablePayload         `json:"result"`
	LeftOnly   TablePayload         `json:"left_only"`
	RightOnly  TablePayload         `json:"right_only"`
	Duplicates TablePayload         `json:"duplicates"`
	Mismatches []reconcile.Mismatch `json:"mismatches"`
	Log        [][2]string          `json:"log"`
}

// ObjectsRequest reconciles two stored datasets. Each side names either an
// xlsx object in the configured bucket or a database table, never both.
type ObjectsRequest struct {
	LeftObject   string       `json:"left_object,omitempty"`
	LeftTable    string       `json:"left_table,omitempty"`
	LeftSheet    string       `json:"left_sheet,omitempty"`
	RightObject  string       `json:"right_object,omitempty"`
	RightTable   string       `json:"right_table,omitempty"`
	RightSheet   string       `json:"right_sheet,omitempty"`
	Key          string       `json:"key"`
	Options      Options      `json:"options"`
	DiffCols     []DiffColumn `json:"diff_cols,omitempty"`
	Sort         []SortColumn `json:"sort,omitempty"`
	OutputObject string       `json:"output_object"`
}

// ObjectsResponse summarizes a stored reconciliation.
type ObjectsResponse struct {
	Matched      int         `json:"matched"`
	LeftOnly     int         `json:"left_only"`
	RightOnly    int         `json:"right_only"`
	Duplicates   int         `json:"duplicates"`
	Mismatched   int         `json:"mismatched"`
	OutputObject string      `json:"output_object"`
	Log          [][2]string `json:"log"`
}

func payload(t *table.Table) TablePayload {
	return TablePayload{Headers: append([]string(nil), t.Headers...), Rows: t.RowValues()}
}

func logPairs(entries []reconcile.LogEntry) [][2]string {
	pairs := make([][2]string, len(entries))
	for i, e := range entries {
		pairs[i] = [2]string{e.Level, e.Message}
	}
	return pairs
}

func diffSpecs(cols []DiffColumn) []reconcile.DiffSpec {
	specs := make([]reconcile.DiffSpec, len(cols))
	for i, c := range cols {
		specs[i] = reconcile.DiffSpec{LeftColumn: c.Left, RightColumn: c.Right, Label: c.Label}
	}
	return specs
}

func sortSpecs(cols []SortColumn) []table.SortSpec {
	specs := make([]table.SortSpec, len(cols))
	for i, c := range cols {
		specs[i] = table.SortSpec{Column: c.Column, Direction: table.Direction(c.Direction)}
	}
	return specs
}
