package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	// Setup In-Memory DB
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE dump (id INTEGER PRIMARY KEY, datetime DATETIME, description TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "dump")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	assert.Equal(t, "integer", colMap["id"])
	assert.Equal(t, "datetime", colMap["datetime"])
	assert.Equal(t, "text", colMap["description"])

	// PRAGMA table_info returns an empty result for a non-existent table
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	require.NoError(t, db.Exec("CREATE TABLE device (id INTEGER PRIMARY KEY, device_id TEXT)").Error)

	missing, err := MissingColumns(db, "device", []string{"id", "device_id", "device_status"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"device_status"}, missing)

	missing, err = MissingColumns(db, "device", []string{"ID", "Device_ID"})
	assert.NoError(t, err)
	assert.Empty(t, missing)
}
