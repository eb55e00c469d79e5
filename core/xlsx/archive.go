package xlsx

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"

	"sheetmerge/core/split"
)

// Archive packages partitions into a zip archive written to w, one
// single-sheet workbook per partition. File names derive from the literal
// key value (empty keys become EMPTY, clashes get a numeric suffix).
func Archive(w io.Writer, parts []split.Partition) error {
	zw := zip.NewWriter(w)
	seen := make(map[string]bool, len(parts))
	for _, part := range parts {
		name := uniqueName(sanitizeFileName(part.KeyValue), seen)
		entry, err := zw.Create(name + ".xlsx")
		if err != nil {
			return fmt.Errorf("failed to create archive entry %q: %w", name, err)
		}
		if err := WriteTo(entry, []Sheet{{Name: name, Table: part.Table}}); err != nil {
			return fmt.Errorf("failed to write partition %q: %w", part.KeyValue, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return nil
}

var invalidFileChars = strings.NewReplacer(
	"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_",
)

func sanitizeFileName(name string) string {
	name = strings.TrimSpace(invalidFileChars.Replace(name))
	if name == "" {
		return "EMPTY"
	}
	if len(name) > 64 {
		name = name[:64]
	}
	return name
}
