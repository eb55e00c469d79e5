package xlsx

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetmerge/core/split"
	"sheetmerge/core/table"
)

func archiveNames(t *testing.T, data []byte) []string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names
}

func TestArchive_OneWorkbookPerPartition(t *testing.T) {
	tbl := table.New([]string{"region", "amount"}, [][]string{
		{"east", "1"},
		{"west", "2"},
		{"east", "3"},
	})
	parts, err := split.Split(tbl, []int{0}, table.KeyOptions{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Archive(&buf, parts))

	names := archiveNames(t, buf.Bytes())
	assert.Equal(t, []string{"east.xlsx", "west.xlsx"}, names)
}

func TestArchive_EntriesAreReadableWorkbooks(t *testing.T) {
	tbl := table.New([]string{"region", "amount"}, [][]string{
		{"east", "1"},
		{"east", "3"},
	})
	parts, err := split.Split(tbl, []int{0}, table.KeyOptions{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Archive(&buf, parts))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 1)

	entry, err := zr.File[0].Open()
	require.NoError(t, err)
	defer entry.Close()

	got, err := Read(entry, "")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"east", "1"}, {"east", "3"}}, got.RowValues())
}

func TestArchive_EmptyKeyNamedEMPTY(t *testing.T) {
	tbl := table.New([]string{"k", "v"}, [][]string{
		{"", "1"},
	})
	parts, err := split.Split(tbl, []int{0}, table.KeyOptions{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Archive(&buf, parts))

	assert.Equal(t, []string{"EMPTY.xlsx"}, archiveNames(t, buf.Bytes()))
}

func TestArchive_ClashingNamesSuffixed(t *testing.T) {
	tbl := table.New([]string{"k"}, [][]string{
		{"a/b"},
		{"a_b"},
	})
	parts, err := split.Split(tbl, []int{0}, table.KeyOptions{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Archive(&buf, parts))

	assert.Equal(t, []string{"a_b.xlsx", "a_b_2.xlsx"}, archiveNames(t, buf.Bytes()))
}
