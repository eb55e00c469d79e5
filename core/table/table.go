package table

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CellKind discriminates the typed representation of a cell.
type CellKind int

const (
	// KindText is the fallback kind for anything that is not a number or date.
	KindText CellKind = iota
	// KindNumber marks a cell whose text parses as a floating-point number.
	KindNumber
	// KindDate marks a cell whose text parses as a calendar date.
	KindDate
)

// dateLayouts are the layouts recognized at ingestion. Spreadsheet exports
// in the wild overwhelmingly use one of these two.
var dateLayouts = []string{"2006-01-02", "2006/01/02"}

// Cell is a single table value. The raw text is parsed exactly once at
// ingestion; Raw is always retained and is what serializes back out.
type Cell struct {
	Kind   CellKind
	Raw    string
	Number float64
	Date   time.Time
}

// NewCell parses raw text into a typed cell.
func NewCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed != "" {
		if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return Cell{Kind: KindNumber, Raw: raw, Number: n}
		}
		for _, layout := range dateLayouts {
			if d, err := time.Parse(layout, trimmed); err == nil {
				return Cell{Kind: KindDate, Raw: raw, Date: d}
			}
		}
	}
	return Cell{Kind: KindText, Raw: raw}
}

// String returns the original cell text.
func (c Cell) String() string {
	return c.Raw
}

// IsEmpty reports whether the cell holds no text at all.
func (c Cell) IsEmpty() bool {
	return c.Raw == ""
}

// Table is an in-memory tabular dataset: an ordered header list and rows of
// typed cells. Every row has exactly len(Headers) cells; rows arriving
// shorter are padded with empty cells at construction. Engines operating on
// a Table never mutate it; they return new tables.
type Table struct {
	Headers []string
	Rows    [][]Cell
}

// New builds a Table from raw string data, parsing each cell once and
// padding short rows with empty cells.
func New(headers []string, rows [][]string) *Table {
	t := &Table{
		Headers: append([]string(nil), headers...),
		Rows:    make([][]Cell, 0, len(rows)),
	}
	for _, row := range rows {
		cells := make([]Cell, len(headers))
		for i := range headers {
			if i < len(row) {
				cells[i] = NewCell(row[i])
			} else {
				cells[i] = Cell{}
			}
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

// FromCells builds a Table from already typed rows, padding short rows.
func FromCells(headers []string, rows [][]Cell) *Table {
	t := &Table{
		Headers: append([]string(nil), headers...),
		Rows:    make([][]Cell, 0, len(rows)),
	}
	for _, row := range rows {
		cells := make([]Cell, len(headers))
		copy(cells, row)
		t.Rows = append(t.Rows, cells)
	}
	return t
}

// RowValues renders the table back to plain string rows for serialization.
func (t *Table) RowValues() [][]string {
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		values := make([]string, len(row))
		for j, cell := range row {
			values[j] = cell.Raw
		}
		rows[i] = values
	}
	return rows
}

// ColumnIndex returns the position of a header, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// KeyIndices resolves key column names to header positions, in the order
// given. Order matters: composite keys are positional.
func (t *Table) KeyIndices(names []string) ([]int, error) {
	if len(names) == 0 {
		return nil, ErrNoKeyColumns
	}
	indices := make([]int, 0, len(names))
	for _, name := range names {
		idx := t.ColumnIndex(name)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
		}
		indices = append(indices, idx)
	}
	return indices, nil
}

// SplitKeyList parses a comma-separated key column list as passed across
// the HTTP and CLI boundaries. Blank segments are dropped.
func SplitKeyList(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			names = append(names, part)
		}
	}
	return names
}
