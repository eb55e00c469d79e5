package database

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"gorm.io/gorm"

	"sheetmerge/core/table"
)

// identPattern limits table names to plain identifiers since they are
// interpolated into the query.
var identPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// LoadTable reads an entire database table into the in-memory Table
// representation. Column names become headers; every value is rendered as
// text and re-typed by the table ingestion pass, same as spreadsheet input.
func LoadTable(ctx context.Context, db *gorm.DB, tableName string) (*table.Table, error) {
	if db == nil {
		return nil, fmt.Errorf("no database connection configured")
	}
	if !identPattern.MatchString(tableName) {
		return nil, fmt.Errorf("invalid table name %q", tableName)
	}

	rows, err := db.WithContext(ctx).Raw("SELECT * FROM " + quoteIdent(db, tableName)).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query table %s: %w", tableName, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns for table %s: %w", tableName, err)
	}

	var data [][]string
	for rows.Next() {
		raw := make([]sql.RawBytes, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row from table %s: %w", tableName, err)
		}
		values := make([]string, len(columns))
		for i, b := range raw {
			values[i] = string(b)
		}
		data = append(data, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate table %s: %w", tableName, err)
	}

	return table.New(columns, data), nil
}

func quoteIdent(db *gorm.DB, name string) string {
	if db.Dialector.Name() == "sqlite" {
		return `"` + name + `"`
	}
	return "`" + name + "`"
}
