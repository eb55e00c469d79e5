package table

import (
	"errors"
	"strings"
)

// DefaultDelimiter joins composite key segments. It is configurable through
// KeyOptions because ordinary data could, in principle, contain it.
const DefaultDelimiter = "|"

// ErrNoKeyColumns is returned when an operation is invoked without any key
// columns. This is a caller bug, rejected up front rather than silently
// keying every row to the empty string.
var ErrNoKeyColumns = errors.New("no key columns selected")

// ErrUnknownColumn is returned when a named column does not exist.
var ErrUnknownColumn = errors.New("unknown column")

// KeyOptions controls composite key normalization. Normalization applies to
// the whole joined key string, never per segment, and never mutates the
// underlying cells.
type KeyOptions struct {
	// Trim removes leading/trailing whitespace from the joined key.
	Trim bool
	// CaseInsensitive lowercases the joined key.
	CaseInsensitive bool
	// Delimiter joins key segments; empty means DefaultDelimiter.
	Delimiter string
}

// DefaultSplitOptions is the normalization policy split callers use unless
// they say otherwise: trimmed, case-sensitive.
func DefaultSplitOptions() KeyOptions {
	return KeyOptions{Trim: true}
}

func (o KeyOptions) delimiter() string {
	if o.Delimiter == "" {
		return DefaultDelimiter
	}
	return o.Delimiter
}

// BuildKey derives the composite key string for a row. Segments are taken
// positionally from keyCols (out-of-range indices contribute an empty
// segment), joined with the delimiter, then normalized per opts. Swapping
// two key columns changes the key even when the same values are present.
func BuildKey(row []Cell, keyCols []int, opts KeyOptions) string {
	segments := make([]string, len(keyCols))
	for i, idx := range keyCols {
		if idx >= 0 && idx < len(row) {
			segments[i] = row[idx].Raw
		}
	}
	key := strings.Join(segments, opts.delimiter())
	if opts.Trim {
		key = strings.TrimSpace(key)
	}
	if opts.CaseInsensitive {
		key = strings.ToLower(key)
	}
	return key
}
