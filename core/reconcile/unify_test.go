package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetmerge/core/table"
)

func reconciled(t *testing.T, left, right *table.Table, keys ...string) *Buckets {
	t.Helper()
	b, err := Reconcile(left, right, mustKeys(t, left, keys...), mustKeys(t, right, keys...), table.KeyOptions{})
	require.NoError(t, err)
	return b
}

func TestUnify_FoldsKeyColumns(t *testing.T) {
	left := table.New([]string{"id", "amount"}, [][]string{
		{"A", "10"},
		{"B", "5"},
	})
	right := table.New([]string{"id", "amount"}, [][]string{
		{"A", "20"},
		{"C", "7"},
	})
	b := reconciled(t, left, right, "id")

	result, err := Unify(b, []string{"id"}, nil)
	require.NoError(t, err)

	// Key first, then L__/R__ headers in bucket order, with L__id/R__id gone.
	assert.Equal(t, []string{"id", "L__amount", "R__amount"}, result.Headers)

	// matched, left-only, right-only.
	require.Len(t, result.Rows, 3)
	assert.Equal(t, []string{"A", "10", "20"}, result.RowValues()[0])
	assert.Equal(t, []string{"B", "5", ""}, result.RowValues()[1])
	assert.Equal(t, []string{"C", "", "7"}, result.RowValues()[2])
}

func TestUnify_RightOnlyKeyFromRightSide(t *testing.T) {
	left := table.New([]string{"id"}, [][]string{})
	right := table.New([]string{"id"}, [][]string{{"R1"}})
	b := reconciled(t, left, right, "id")

	result, err := Unify(b, []string{"id"}, nil)
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, "R1", result.Rows[0][0].Raw)
}

func TestUnify_DiffColumn(t *testing.T) {
	left := table.New([]string{"id", "amount"}, [][]string{{"A", "10"}})
	right := table.New([]string{"id", "amount"}, [][]string{{"A", "20"}})
	b := reconciled(t, left, right, "id")

	result, err := Unify(b, []string{"id"}, []DiffSpec{
		{LeftColumn: "amount", RightColumn: "amount", Label: "amount_diff"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "L__amount", "R__amount", "amount_diff"}, result.Headers)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "-10", result.Rows[0][3].Raw)
	assert.Equal(t, table.KindNumber, result.Rows[0][3].Kind)
}

func TestUnify_DiffUnparsableDefaultsToZero(t *testing.T) {
	left := table.New([]string{"id", "amount"}, [][]string{{"A", "n/a"}})
	right := table.New([]string{"id", "amount"}, [][]string{{"A", "20"}})
	b := reconciled(t, left, right, "id")

	result, err := Unify(b, []string{"id"}, []DiffSpec{
		{LeftColumn: "amount", RightColumn: "amount", Label: "d"},
	})
	require.NoError(t, err)

	assert.Equal(t, "-20", result.Rows[0][3].Raw)
}

func TestUnify_DiffOnOneSidedRows(t *testing.T) {
	left := table.New([]string{"id", "amount"}, [][]string{{"B", "5"}})
	right := table.New([]string{"id", "amount"}, [][]string{{"C", "7"}})
	b := reconciled(t, left, right, "id")

	result, err := Unify(b, []string{"id"}, []DiffSpec{
		{LeftColumn: "amount", RightColumn: "amount", Label: "d"},
	})
	require.NoError(t, err)

	// Missing side reads as zero.
	values := result.RowValues()
	assert.Equal(t, "5", values[0][3])
	assert.Equal(t, "-7", values[1][3])
}

func TestUnify_IncompleteDiffSpecIgnored(t *testing.T) {
	left := table.New([]string{"id", "amount"}, [][]string{{"A", "10"}})
	b := reconciled(t, left, left, "id")

	result, err := Unify(b, []string{"id"}, []DiffSpec{
		{LeftColumn: "amount", RightColumn: "", Label: "d"},
	})
	require.NoError(t, err)

	assert.NotContains(t, result.Headers, "d")
}

func TestUnify_DuplicateLabelRejected(t *testing.T) {
	left := table.New([]string{"id", "amount"}, [][]string{{"A", "10"}})
	b := reconciled(t, left, left, "id")

	t.Run("CollidesWithHeader", func(t *testing.T) {
		_, err := Unify(b, []string{"id"}, []DiffSpec{
			{LeftColumn: "amount", RightColumn: "amount", Label: "L__amount"},
		})
		assert.ErrorIs(t, err, ErrDuplicateLabel)
	})

	t.Run("CollidesWithOtherLabel", func(t *testing.T) {
		_, err := Unify(b, []string{"id"}, []DiffSpec{
			{LeftColumn: "amount", RightColumn: "amount", Label: "d"},
			{LeftColumn: "amount", RightColumn: "amount", Label: "d"},
		})
		assert.ErrorIs(t, err, ErrDuplicateLabel)
	})
}

func TestUnify_DuplicateRowsIncluded(t *testing.T) {
	left := table.New([]string{"id", "v"}, [][]string{
		{"X", "1"},
		{"X", "2"},
	})
	right := table.New([]string{"id", "v"}, [][]string{
		{"X", "3"},
	})
	b := reconciled(t, left, right, "id")

	result, err := Unify(b, []string{"id"}, nil)
	require.NoError(t, err)

	require.Len(t, result.Rows, 3)
	// The folded key is populated from whichever side the row came from.
	assert.Equal(t, "X", result.Rows[0][0].Raw)
	assert.Equal(t, "X", result.Rows[2][0].Raw)
}

func TestUnify_DisjointHeaderSets(t *testing.T) {
	left := table.New([]string{"id", "left_note"}, [][]string{{"A", "l"}})
	right := table.New([]string{"id", "right_note"}, [][]string{{"A", "r"}})
	b := reconciled(t, left, right, "id")

	result, err := Unify(b, []string{"id"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "L__left_note", "R__right_note"}, result.Headers)
	assert.Equal(t, []string{"A", "l", "r"}, result.RowValues()[0])
}
