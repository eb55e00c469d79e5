package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"sheetmerge/core/table"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestLoadTable(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "amount"}).
		AddRow("A", "10").
		AddRow("B", nil)
	mock.ExpectQuery("SELECT \\* FROM `sales`").WillReturnRows(rows)

	got, err := LoadTable(context.Background(), db, "sales")
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "amount"}, got.Headers)
	assert.Equal(t, [][]string{{"A", "10"}, {"B", ""}}, got.RowValues())
	// Values are re-typed like spreadsheet input.
	assert.Equal(t, table.KindNumber, got.Rows[0][1].Kind)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadTable_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM `missing`").WillReturnError(assert.AnError)

	_, err := LoadTable(context.Background(), db, "missing")
	assert.Error(t, err)
}

func TestLoadTable_InvalidIdentifier(t *testing.T) {
	db, _ := setupMockDB(t)

	_, err := LoadTable(context.Background(), db, "sales; DROP TABLE x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid table name")
}

func TestLoadTable_NilDB(t *testing.T) {
	_, err := LoadTable(context.Background(), nil, "sales")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no database connection")
}
