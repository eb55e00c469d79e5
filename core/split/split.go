package split

import "sheetmerge/core/table"

// Partition is the subset of a table's rows sharing one composite key
// value, plus that key's literal string.
type Partition struct {
	// KeyValue is the composite key string produced under the options
	// passed to Split, before any caller-side renaming.
	KeyValue string
	// Table holds the partition's rows under the full source header set.
	Table *table.Table
}

// Split groups a table's rows by composite key. Partitions are emitted in
// the order their key was first seen in the input, and rows keep their
// original relative order within each partition. Every partition keeps the
// full header set of the source table; stripping any temporary helper key
// column is the caller's responsibility. The input table is not mutated.
func Split(t *table.Table, keyCols []int, opts table.KeyOptions) ([]Partition, error) {
	if len(keyCols) == 0 {
		return nil, table.ErrNoKeyColumns
	}

	var order []string
	groups := make(map[string][][]table.Cell)
	for _, row := range t.Rows {
		key := table.BuildKey(row, keyCols, opts)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], row)
	}

	parts := make([]Partition, 0, len(order))
	for _, key := range order {
		parts = append(parts, Partition{
			KeyValue: key,
			Table:    table.FromCells(t.Headers, groups[key]),
		})
	}
	return parts, nil
}
