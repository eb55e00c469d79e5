package table

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// MaxSortColumns caps the tie-break chain; entries beyond it are ignored.
const MaxSortColumns = 3

// SortSpec names one column of a multi-column sort.
type SortSpec struct {
	Column    string
	Direction Direction
}

// Sort returns a new table with rows ordered by up to MaxSortColumns specs,
// evaluated as a tie-break chain. Specs naming unknown columns are skipped.
// Two Number cells compare numerically, two Date cells chronologically,
// anything else falls back to locale-aware string comparison. The sort is
// stable and the input table is left untouched.
func Sort(t *Table, specs []SortSpec) *Table {
	if len(specs) > MaxSortColumns {
		specs = specs[:MaxSortColumns]
	}

	type activeSpec struct {
		idx  int
		desc bool
	}
	var active []activeSpec
	for _, spec := range specs {
		idx := t.ColumnIndex(spec.Column)
		if idx < 0 {
			continue
		}
		desc := strings.EqualFold(string(spec.Direction), string(Desc))
		active = append(active, activeSpec{idx: idx, desc: desc})
	}

	rows := make([][]Cell, len(t.Rows))
	copy(rows, t.Rows)

	if len(active) > 0 {
		// Collators are not goroutine-safe, so one is created per call.
		col := collate.New(language.Und)
		sort.SliceStable(rows, func(i, j int) bool {
			for _, a := range active {
				c := compareCells(col, rows[i][a.idx], rows[j][a.idx])
				if a.desc {
					c = -c
				}
				if c != 0 {
					return c < 0
				}
			}
			return false
		})
	}

	return &Table{
		Headers: append([]string(nil), t.Headers...),
		Rows:    rows,
	}
}

func compareCells(col *collate.Collator, a, b Cell) int {
	if a.Kind == KindNumber && b.Kind == KindNumber {
		switch {
		case a.Number < b.Number:
			return -1
		case a.Number > b.Number:
			return 1
		default:
			return 0
		}
	}
	if a.Kind == KindDate && b.Kind == KindDate {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	}
	return col.CompareString(a.Raw, b.Raw)
}
