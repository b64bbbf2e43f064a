package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_worlds (id INTEGER PRIMARY KEY, world_id TEXT NOT NULL, description TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "test_worlds")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	byName := make(map[string]ColumnInfo)
	for _, col := range columns {
		byName[col.Field] = col
	}

	assert.Equal(t, "integer", byName["id"].Type)
	assert.Equal(t, "PRI", byName["id"].Key)
	assert.Equal(t, "text", byName["world_id"].Type)
	assert.Equal(t, "NO", byName["world_id"].Null)
	assert.Equal(t, "YES", byName["description"].Null)

	// PRAGMA table_info returns nothing for an unknown table.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE test_worlds (id INTEGER PRIMARY KEY, World_ID TEXT)").Error)

	missing, err := MissingColumns(db, "test_worlds", []string{"id", "world_id", "star", "visit"})
	require.NoError(t, err)
	assert.Equal(t, []string{"star", "visit"}, missing)

	missing, err = MissingColumns(db, "non_existent", []string{"id"})
	require.NoError(t, err)
	assert.Equal(t, []string{"id"}, missing)
}
