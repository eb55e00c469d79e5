package reconcile

import (
	"fmt"

	"sheetmerge/core/table"
)

// Reconcile classifies the rows of two tables by composite key.
//
// A key appearing on both sides pairs into Matched only when it maps to
// exactly one row on each side. If either side holds more than one row for
// the key, every row sharing it (both sides) is routed to Duplicates so the
// engine never makes an arbitrary pairing decision. A key with rows on one
// side only goes to LeftOnly/RightOnly regardless of multiplicity. Inputs
// are never mutated.
func Reconcile(left, right *table.Table, leftKeys, rightKeys []int, opts table.KeyOptions) (*Buckets, error) {
	if len(leftKeys) == 0 || len(rightKeys) == 0 {
		return nil, table.ErrNoKeyColumns
	}

	leftIndex := keyIndex(left, leftKeys, opts)
	rightIndex := keyIndex(right, rightKeys, opts)

	leftHeaders := prefixHeaders(left.Headers, LeftPrefix)
	rightHeaders := prefixHeaders(right.Headers, RightPrefix)
	pairedHeaders := append(append([]string(nil), leftHeaders...), rightHeaders...)

	shared := sharedColumns(left, right, leftKeys, rightKeys)

	var (
		matchedRows  [][]table.Cell
		leftOnlyRows [][]table.Cell
		dupLeftRows  [][]table.Cell
		mismatches   []Mismatch
	)

	// Left pass: each row is routed by its key's classification as it is
	// visited, so rows keep their original relative order within a bucket
	// even when a key's occurrences are interleaved with other keys. A
	// matched key holds exactly one left row, so its pair is emitted right
	// there.
	for _, row := range left.Rows {
		key := table.BuildKey(row, leftKeys, opts)
		ls := leftIndex[key]
		rs := rightIndex[key]
		switch {
		case len(rs) == 0:
			leftOnlyRows = append(leftOnlyRows, row)
		case len(ls) == 1 && len(rs) == 1:
			pair := append(append([]table.Cell(nil), row...), right.Rows[rs[0]]...)
			matchedRows = append(matchedRows, pair)
			if diff := diffColumns(row, right.Rows[rs[0]], shared); len(diff) > 0 {
				mismatches = append(mismatches, Mismatch{Key: key, Columns: diff})
			}
		default:
			padded := make([]table.Cell, len(pairedHeaders))
			copy(padded, row)
			dupLeftRows = append(dupLeftRows, padded)
		}
	}

	// Right pass: right-only rows and the right half of ambiguous keys, in
	// right input order.
	var (
		rightOnlyRows [][]table.Cell
		dupRightRows  [][]table.Cell
	)
	for _, row := range right.Rows {
		key := table.BuildKey(row, rightKeys, opts)
		ls := leftIndex[key]
		rs := rightIndex[key]
		switch {
		case len(ls) == 0:
			rightOnlyRows = append(rightOnlyRows, row)
		case len(ls) == 1 && len(rs) == 1:
			// Already paired in the left pass.
		default:
			padded := make([]table.Cell, len(pairedHeaders))
			copy(padded[len(leftHeaders):], row)
			dupRightRows = append(dupRightRows, padded)
		}
	}

	b := &Buckets{
		Matched:    table.FromCells(pairedHeaders, matchedRows),
		LeftOnly:   table.FromCells(leftHeaders, leftOnlyRows),
		RightOnly:  table.FromCells(rightHeaders, rightOnlyRows),
		Duplicates: table.FromCells(pairedHeaders, append(dupLeftRows, dupRightRows...)),
		Mismatches: mismatches,
	}
	b.Log = buildLog(len(matchedRows), len(leftOnlyRows), len(rightOnlyRows),
		len(dupLeftRows), len(dupRightRows), len(mismatches))
	return b, nil
}

// keyIndex maps every composite key to the row indices holding it, in input
// order. Single O(n) pass.
func keyIndex(t *table.Table, keyCols []int, opts table.KeyOptions) map[string][]int {
	index := make(map[string][]int, len(t.Rows))
	for i, row := range t.Rows {
		key := table.BuildKey(row, keyCols, opts)
		index[key] = append(index[key], i)
	}
	return index
}

func prefixHeaders(headers []string, prefix string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = prefix + h
	}
	return out
}

// sharedColumn pairs a left column index with the right column index of the
// same header name.
type sharedColumn struct {
	name  string
	left  int
	right int
}

// sharedColumns lists same-named non-key columns present on both sides, in
// left header order.
func sharedColumns(left, right *table.Table, leftKeys, rightKeys []int) []sharedColumn {
	leftKeySet := make(map[int]bool, len(leftKeys))
	for _, i := range leftKeys {
		leftKeySet[i] = true
	}
	rightKeySet := make(map[int]bool, len(rightKeys))
	for _, i := range rightKeys {
		rightKeySet[i] = true
	}

	var shared []sharedColumn
	for li, name := range left.Headers {
		if leftKeySet[li] {
			continue
		}
		ri := right.ColumnIndex(name)
		if ri < 0 || rightKeySet[ri] {
			continue
		}
		shared = append(shared, sharedColumn{name: name, left: li, right: ri})
	}
	return shared
}

// diffColumns returns the shared column names whose raw values differ
// between a matched pair.
func diffColumns(leftRow, rightRow []table.Cell, shared []sharedColumn) []string {
	var diff []string
	for _, col := range shared {
		if leftRow[col.left].Raw != rightRow[col.right].Raw {
			diff = append(diff, col.name)
		}
	}
	return diff
}

func buildLog(matched, leftOnly, rightOnly, dupLeft, dupRight, mismatched int) []LogEntry {
	dupLevel := LevelInfo
	if dupLeft+dupRight > 0 {
		dupLevel = LevelWarn
	}
	return []LogEntry{
		{Level: LevelInfo, Message: fmt.Sprintf("matched pairs: %d", matched)},
		{Level: LevelInfo, Message: fmt.Sprintf("left-only rows: %d", leftOnly)},
		{Level: LevelInfo, Message: fmt.Sprintf("right-only rows: %d", rightOnly)},
		{Level: dupLevel, Message: fmt.Sprintf("duplicate-key rows on left: %d", dupLeft)},
		{Level: dupLevel, Message: fmt.Sprintf("duplicate-key rows on right: %d", dupRight)},
		{Level: LevelInfo, Message: fmt.Sprintf("matched pairs with differing shared columns: %d", mismatched)},
	}
}
