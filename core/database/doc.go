// Package database opens the gorm connection to the rooms table and inspects its schema.
//
// Two drivers are supported: mysql for deployments and sqlite for local runs and
// tests (Name ":memory:" keeps everything in process). Connect pings the database
// before returning.
//
// GetTableColumns and MissingColumns read the live table definition, which the
// integrity feature compares with the row model:
//
//	db, err := database.Connect(cfg.Database)
//	missing, err := database.MissingColumns(db, "rooms", []string{"hotel", "floor", "number"})
package database
