package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func TestGetTableColumns(t *testing.T) {
	db := newSQLite(t)

	err := db.Exec("CREATE TABLE test_rooms (id INTEGER PRIMARY KEY, hotel TEXT NOT NULL, price NUMERIC)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "test_rooms")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	byName := make(map[string]ColumnInfo)
	for _, col := range columns {
		byName[col.Field] = col
	}

	assert.Equal(t, "integer", byName["id"].Type)
	assert.Equal(t, "PRI", byName["id"].Key)
	assert.Equal(t, "text", byName["hotel"].Type)
	assert.Equal(t, "NO", byName["hotel"].Null)
	assert.Equal(t, "numeric", byName["price"].Type)

	// PRAGMA table_info returns an empty result for a missing table
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestGetTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("ID", "INT(11)", "NO", "PRI", nil, "auto_increment").
		AddRow("Hotel", "VARCHAR(255)", "NO", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `rooms`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "rooms")
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "int(11)", columns[0].Type)
	assert.Equal(t, "hotel", columns[1].Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMissingColumns(t *testing.T) {
	db := newSQLite(t)
	require.NoError(t, db.Exec("CREATE TABLE rooms (id INTEGER PRIMARY KEY, hotel TEXT, floor INTEGER)").Error)

	missing, err := MissingColumns(db, "rooms", []string{"hotel", "price", "floor", "available"})
	require.NoError(t, err)
	assert.Equal(t, []string{"available", "price"}, missing)

	missing, err = MissingColumns(db, "absent", []string{"hotel"})
	require.NoError(t, err)
	assert.Equal(t, []string{"hotel"}, missing)
}
