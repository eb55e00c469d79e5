package reconcile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"sheetmerge/core/table"
)

// ErrDuplicateLabel is returned when a diff column label collides with an
// output header or another label.
var ErrDuplicateLabel = errors.New("duplicate diff column label")

// Unify merges the four buckets into a single result table.
//
// Rows are concatenated in fixed order (matched, left-only, right-only,
// duplicates). L__k / R__k headers whose base name k is a key column are
// folded into a single column k; key columns lead the output in the order
// the caller declared them, all other headers follow in first-seen order.
// One numeric difference column is appended per fully specified DiffSpec,
// in declaration order, computed from the pre-fold row values so a diff can
// never accidentally read a folded key column.
func Unify(b *Buckets, keyColumns []string, diffs []DiffSpec) (*table.Table, error) {
	keySet := make(map[string]bool, len(keyColumns))
	for _, k := range keyColumns {
		keySet[k] = true
	}

	buckets := []*table.Table{b.Matched, b.LeftOnly, b.RightOnly, b.Duplicates}

	headers := append([]string(nil), keyColumns...)
	seen := make(map[string]bool, len(keyColumns))
	for _, k := range keyColumns {
		seen[k] = true
	}
	for _, bucket := range buckets {
		for _, h := range bucket.Headers {
			if foldsToKey(h, keySet) {
				continue
			}
			if !seen[h] {
				seen[h] = true
				headers = append(headers, h)
			}
		}
	}

	// Active diff specs: all three fields present. Labels must not collide
	// with each other or with the unified header set.
	var active []DiffSpec
	for _, d := range diffs {
		if d.LeftColumn == "" || d.RightColumn == "" || d.Label == "" {
			continue
		}
		if seen[d.Label] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, d.Label)
		}
		seen[d.Label] = true
		active = append(active, d)
	}

	width := len(headers) + len(active)
	out := make([][]table.Cell, 0, len(b.Matched.Rows)+len(b.LeftOnly.Rows)+len(b.RightOnly.Rows)+len(b.Duplicates.Rows))
	for _, bucket := range buckets {
		for _, row := range bucket.Rows {
			cells := rowMap(bucket.Headers, row)
			merged := make([]table.Cell, 0, width)
			for _, h := range headers {
				if keySet[h] {
					merged = append(merged, foldKeyValue(cells, h))
					continue
				}
				merged = append(merged, cells[h])
			}
			for _, d := range active {
				value := numeric(cells[LeftPrefix+d.LeftColumn]) - numeric(cells[RightPrefix+d.RightColumn])
				merged = append(merged, table.NewCell(formatNumber(value)))
			}
			out = append(out, merged)
		}
	}

	result := append(headers, labels(active)...)
	return table.FromCells(result, out), nil
}

// foldsToKey reports whether a bucket header is the L__/R__ rendition of a
// key column.
func foldsToKey(header string, keySet map[string]bool) bool {
	if base, ok := strings.CutPrefix(header, LeftPrefix); ok && keySet[base] {
		return true
	}
	if base, ok := strings.CutPrefix(header, RightPrefix); ok && keySet[base] {
		return true
	}
	return false
}

// foldKeyValue picks the key cell for a folded column: the left value when
// present and non-empty, else the right value, else an empty cell.
func foldKeyValue(cells map[string]table.Cell, key string) table.Cell {
	if c, ok := cells[LeftPrefix+key]; ok && !c.IsEmpty() {
		return c
	}
	if c, ok := cells[RightPrefix+key]; ok {
		return c
	}
	return table.Cell{}
}

func rowMap(headers []string, row []table.Cell) map[string]table.Cell {
	m := make(map[string]table.Cell, len(headers))
	for i, h := range headers {
		m[h] = row[i]
	}
	return m
}

// numeric maps a cell to its number, with unparsable text defaulting to 0
// so one stray cell cannot abort a bulk reconciliation.
func numeric(c table.Cell) float64 {
	if c.Kind == table.KindNumber {
		return c.Number
	}
	return 0
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func labels(diffs []DiffSpec) []string {
	out := make([]string, len(diffs))
	for i, d := range diffs {
		out[i] = d.Label
	}
	return out
}
