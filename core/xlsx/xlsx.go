package xlsx

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"sheetmerge/core/table"
)

// Sheet pairs a worksheet name with the table it renders.
type Sheet struct {
	Name  string
	Table *table.Table
}

// Read loads one worksheet into a Table. The first row is the header list;
// every following row is data, padded to the header width. An empty sheet
// name selects the first worksheet.
func Read(r io.Reader, sheet string) (*table.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("no sheets found in workbook")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet is empty: %s", sheet)
	}

	return table.New(rows[0], rows[1:]), nil
}

// ReadFile loads one worksheet of an xlsx file into a Table.
func ReadFile(path, sheet string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, sheet)
}

// Workbook renders tables into a new xlsx file, one worksheet per sheet, in
// order. Header rows are bold; Number cells are written as real numbers so
// spreadsheet consumers see numeric columns, everything else keeps its
// original text.
func Workbook(sheets []Sheet) (*excelize.File, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets to write")
	}

	f := excelize.NewFile()
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	seen := make(map[string]bool, len(sheets))
	for i, sheet := range sheets {
		name := uniqueName(SanitizeSheetName(sheet.Name), seen)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetList()[0], name); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to name sheet %q: %w", name, err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to create sheet %q: %w", name, err)
			}
		}
		if err := writeSheet(f, name, sheet.Table, headerStyle); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// WriteTo renders tables into an xlsx workbook streamed to w.
func WriteTo(w io.Writer, sheets []Sheet) error {
	f, err := Workbook(sheets)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// WriteFile renders tables into an xlsx workbook on disk.
func WriteFile(path string, sheets []Sheet) error {
	f, err := Workbook(sheets)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, name string, t *table.Table, headerStyle int) error {
	header := make([]interface{}, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	if len(t.Headers) > 0 {
		end, err := excelize.CoordinatesToCellName(len(t.Headers), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(name, "A1", end, headerStyle); err != nil {
			return fmt.Errorf("failed to style header row: %w", err)
		}
	}

	for i, row := range t.Rows {
		values := make([]interface{}, len(row))
		for j, cell := range row {
			if cell.Kind == table.KindNumber {
				values[j] = cell.Number
			} else {
				values[j] = cell.Raw
			}
		}
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, axis, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	return nil
}

// invalidSheetChars are rejected by the xlsx format in worksheet names.
var invalidSheetChars = strings.NewReplacer(
	":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_",
)

// SanitizeSheetName makes a string usable as a worksheet name: illegal
// characters replaced, truncated to the 31-character limit, empty mapped to
// EMPTY (matching how empty partition keys are labeled).
func SanitizeSheetName(name string) string {
	name = strings.TrimSpace(invalidSheetChars.Replace(name))
	if name == "" {
		return "EMPTY"
	}
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}

// uniqueName suffixes a name until it is unused within the workbook.
func uniqueName(name string, seen map[string]bool) string {
	candidate := name
	for n := 2; seen[candidate]; n++ {
		suffix := fmt.Sprintf("_%d", n)
		base := name
		if len(base)+len(suffix) > 31 {
			base = base[:31-len(suffix)]
		}
		candidate = base + suffix
	}
	seen[candidate] = true
	return candidate
}
