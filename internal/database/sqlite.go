package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteConfig holds SQLite store settings
type SQLiteConfig struct {
	// Path is the database file, or ":memory:" for a private in-memory database.
	Path string `mapstructure:"path"`
}

// OpenSQLite opens a SQLite database and applies the given schema
// statements in order
func OpenSQLite(ctx context.Context, cfg SQLiteConfig, schema ...string) (*sqlx.DB, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite: path is required")
	}

	db, err := sqlx.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite: %v", ErrConnection, err)
	}
	// Every connection to ":memory:" is a separate database
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping sqlite: %v", ErrConnection, err)
	}
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%w: schema statement %d: %v", ErrQuery, i+1, err)
		}
	}
	return db, nil
}
