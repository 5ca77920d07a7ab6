// Package database provides database connectivity for lmskit.
//
// # Database Interface
//
// The Database interface defines core SurrealDB operations:
//
//	type Database interface {
//	    Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)
//	    QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)
//	    Execute(ctx context.Context, query string, vars map[string]interface{}) error
//	    Close() error
//	}
//
// # Connection Management
//
// Connect to SurrealDB:
//
//	db := database.NewSurrealDB(database.Config{
//	    Host:      "localhost",
//	    Port:      "8000",
//	    Namespace: "lms",
//	    Database:  "test",
//	    User:      "root",
//	    Password:  "root",
//	})
//	err := db.Connect(ctx)
//
// Open an embedded Badger store for tests:
//
//	bdb, err := database.OpenBadger(database.BadgerConfig{InMemory: true})
//
// Or a SQLite file, applying schema statements on open:
//
//	sdb, err := database.OpenSQLite(ctx, database.SQLiteConfig{Path: ":memory:"}, schema...)
package database
