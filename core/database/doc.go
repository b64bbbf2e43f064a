// Package database handles database connections and schema inspection.
//
// It wraps GORM and opens either an embedded SQLite file (the default, "vrc.db")
// or a MySQL server, depending on Config.Driver.
//
// # Connect
//
// Connect builds the DSN, silences GORM's own logger, sizes the connection
// pool for the driver and pings the database before returning.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns through PRAGMA table_info (SQLite) or
// SHOW COLUMNS (MySQL). The favorite store uses it to report missing columns.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "favorite_world")
package database
