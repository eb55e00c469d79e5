package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func row(values ...string) []Cell {
	cells := make([]Cell, len(values))
	for i, v := range values {
		cells[i] = NewCell(v)
	}
	return cells
}

func TestBuildKey(t *testing.T) {
	t.Run("JoinsWithDefaultDelimiter", func(t *testing.T) {
		key := BuildKey(row("east", "SKU-1", "10"), []int{0, 1}, KeyOptions{})
		assert.Equal(t, "east|SKU-1", key)
	})

	t.Run("CustomDelimiter", func(t *testing.T) {
		key := BuildKey(row("east", "SKU-1"), []int{0, 1}, KeyOptions{Delimiter: "::"})
		assert.Equal(t, "east::SKU-1", key)
	})

	t.Run("PositionalOrderMatters", func(t *testing.T) {
		r := row("A", "B")
		ab := BuildKey(r, []int{0, 1}, KeyOptions{})
		ba := BuildKey(r, []int{1, 0}, KeyOptions{})
		assert.NotEqual(t, ab, ba)
	})

	t.Run("OutOfRangeSegmentEmpty", func(t *testing.T) {
		key := BuildKey(row("x"), []int{0, 5}, KeyOptions{})
		assert.Equal(t, "x|", key)
	})

	t.Run("TrimAppliesToWholeKey", func(t *testing.T) {
		// Interior whitespace around the delimiter survives trimming.
		key := BuildKey(row("  east", "SKU-1  "), []int{0, 1}, KeyOptions{Trim: true})
		assert.Equal(t, "east|SKU-1", key)

		key = BuildKey(row("east  ", "  SKU-1"), []int{0, 1}, KeyOptions{Trim: true})
		assert.Equal(t, "east  |  SKU-1", key)
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		upper := BuildKey(row("EAST", "Sku-1"), []int{0, 1}, KeyOptions{CaseInsensitive: true})
		lower := BuildKey(row("east", "sku-1"), []int{0, 1}, KeyOptions{CaseInsensitive: true})
		assert.Equal(t, lower, upper)
	})

	t.Run("NormalizationOff", func(t *testing.T) {
		key := BuildKey(row(" EAST "), []int{0}, KeyOptions{})
		assert.Equal(t, " EAST ", key)
	})
}

func TestDefaultSplitOptions(t *testing.T) {
	opts := DefaultSplitOptions()
	assert.True(t, opts.Trim)
	assert.False(t, opts.CaseInsensitive)
}
