// Package database handles database connections and schema inspection.
//
// It wraps GORM to open the dump store. SQLite is the default driver: the
// database lives in a single file under the application base directory. MySQL
// is supported for shared setups where several machines report into one store.
//
// # Connect
//
// Connect picks the dialector from Config.Driver, applies pool settings and
// pings the database before returning.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read the live table definition so the
// dumps feature can verify that an existing database file carries the
// expected columns.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//
//	missing, err := database.MissingColumns(db, "device", []string{"device_id"})
package database
