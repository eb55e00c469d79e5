package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortedColumn(t *Table, name string) []string {
	idx := t.ColumnIndex(name)
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx].Raw
	}
	return out
}

func TestSort_Numeric(t *testing.T) {
	tbl := New([]string{"amount"}, [][]string{{"10"}, {"2"}, {"33"}})

	sorted := Sort(tbl, []SortSpec{{Column: "amount", Direction: Asc}})

	// Numeric comparison, not lexicographic: 2 before 10.
	assert.Equal(t, []string{"2", "10", "33"}, sortedColumn(sorted, "amount"))
}

func TestSort_Descending(t *testing.T) {
	tbl := New([]string{"amount"}, [][]string{{"10"}, {"2"}, {"33"}})

	sorted := Sort(tbl, []SortSpec{{Column: "amount", Direction: Desc}})

	assert.Equal(t, []string{"33", "10", "2"}, sortedColumn(sorted, "amount"))
}

func TestSort_Dates(t *testing.T) {
	tbl := New([]string{"date"}, [][]string{{"2024-03-01"}, {"2023-12-31"}, {"2024-01-15"}})

	sorted := Sort(tbl, []SortSpec{{Column: "date"}})

	assert.Equal(t, []string{"2023-12-31", "2024-01-15", "2024-03-01"}, sortedColumn(sorted, "date"))
}

func TestSort_MixedKindsFallBackToString(t *testing.T) {
	tbl := New([]string{"v"}, [][]string{{"banana"}, {"10"}, {"apple"}})

	sorted := Sort(tbl, []SortSpec{{Column: "v"}})

	assert.Equal(t, []string{"10", "apple", "banana"}, sortedColumn(sorted, "v"))
}

func TestSort_Stable(t *testing.T) {
	tbl := New([]string{"group", "seq"}, [][]string{
		{"b", "1"},
		{"a", "2"},
		{"b", "3"},
		{"a", "4"},
	})

	sorted := Sort(tbl, []SortSpec{{Column: "group", Direction: Asc}})

	require.Len(t, sorted.Rows, 4)
	// Ties keep their original relative order.
	assert.Equal(t, []string{"2", "4", "1", "3"}, sortedColumn(sorted, "seq"))
}

func TestSort_TieBreakChain(t *testing.T) {
	tbl := New([]string{"group", "amount"}, [][]string{
		{"a", "10"},
		{"b", "1"},
		{"a", "2"},
	})

	sorted := Sort(tbl, []SortSpec{
		{Column: "group", Direction: Asc},
		{Column: "amount", Direction: Desc},
	})

	assert.Equal(t, []string{"10", "2", "1"}, sortedColumn(sorted, "amount"))
}

func TestSort_UnknownColumnSkipped(t *testing.T) {
	tbl := New([]string{"a"}, [][]string{{"2"}, {"1"}})

	sorted := Sort(tbl, []SortSpec{{Column: "missing"}})

	// No usable spec: original order preserved.
	assert.Equal(t, []string{"2", "1"}, sortedColumn(sorted, "a"))
}

func TestSort_CapsSpecChain(t *testing.T) {
	tbl := New([]string{"a", "b", "c", "d"}, [][]string{
		{"1", "1", "1", "2"},
		{"1", "1", "1", "1"},
	})

	// The fourth spec is beyond MaxSortColumns and must be ignored.
	sorted := Sort(tbl, []SortSpec{
		{Column: "a"}, {Column: "b"}, {Column: "c"}, {Column: "d"},
	})

	assert.Equal(t, []string{"2", "1"}, sortedColumn(sorted, "d"))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	tbl := New([]string{"a"}, [][]string{{"2"}, {"1"}})

	_ = Sort(tbl, []SortSpec{{Column: "a"}})

	assert.Equal(t, []string{"2", "1"}, sortedColumn(tbl, "a"))
}
