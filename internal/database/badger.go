package database

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// BadgerConfig holds embedded store settings
type BadgerConfig struct {
	// Path is the directory holding the database files. Ignored when InMemory is set.
	Path string `mapstructure:"path"`

	// InMemory keeps everything in RAM; nothing is written to disk.
	InMemory bool `mapstructure:"in_memory"`
}

// OpenBadger opens an embedded Badger database
func OpenBadger(cfg BadgerConfig) (*badger.DB, error) {
	var opts badger.Options
	switch {
	case cfg.InMemory:
		opts = badger.DefaultOptions("").WithInMemory(true)
	case cfg.Path != "":
		opts = badger.DefaultOptions(cfg.Path)
	default:
		return nil, errors.New("badger: path is required unless in_memory is set")
	}
	opts = opts.WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: open badger: %v", ErrConnection, err)
	}
	return db, nil
}
