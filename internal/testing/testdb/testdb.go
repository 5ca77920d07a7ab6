// Package testdb provides isolated entity stores for tests.
//
// New returns an in-memory Badger store that needs nothing external;
// NewSQLite does the same over an in-memory SQLite database.
// NewSurreal connects to a real SurrealDB instance, applies migrations in a
// unique namespace, and skips the test when no server is reachable.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    f := fixtures.New(tdb.Posts)
//	}
package testdb

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/jmoiron/sqlx"

	"github.com/forgo/lmskit/internal/config"
	"github.com/forgo/lmskit/internal/database"
	"github.com/forgo/lmskit/internal/repository"
)

// TestDB is an in-memory Badger store scoped to one test
type TestDB struct {
	DB    *badger.DB
	Posts repository.PostStore
}

// New opens an in-memory store that is closed when the test ends
func New(t testing.TB) *TestDB {
	t.Helper()

	db, err := database.OpenBadger(database.BadgerConfig{InMemory: true})
	if err != nil {
		t.Fatalf("testdb: failed to open badger: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return &TestDB{
		DB:    db,
		Posts: repository.NewBadgerPostRepository(db),
	}
}

// Reset drops every key, leaving an empty store
func (tdb *TestDB) Reset(t testing.TB) {
	t.Helper()
	if err := tdb.DB.DropAll(); err != nil {
		t.Fatalf("testdb: failed to reset: %v", err)
	}
}

// SQLiteTestDB is an in-memory SQLite store scoped to one test
type SQLiteTestDB struct {
	DB    *sqlx.DB
	Posts repository.PostStore
}

// NewSQLite opens an in-memory SQLite store with the posts schema applied
func NewSQLite(t testing.TB) *SQLiteTestDB {
	t.Helper()

	db, err := database.OpenSQLite(t.Context(), database.SQLiteConfig{Path: ":memory:"}, repository.SQLiteSchema...)
	if err != nil {
		t.Fatalf("testdb: failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return &SQLiteTestDB{
		DB:    db,
		Posts: repository.NewSQLitePostRepository(db),
	}
}

// SurrealTestDB is a SurrealDB namespace scoped to one test
type SurrealTestDB struct {
	DB        *database.SurrealDB
	Posts     repository.PostStore
	Namespace string
	t         testing.TB
}

var (
	// migrationOnce ensures migrations are only loaded once
	migrationOnce sync.Once
	migrations    []string
	migrationErr  error

	// counterMu protects the namespace counter
	counterMu sync.Mutex
	counter   int64
)

// uniqueNamespace generates a unique namespace for test isolation
func uniqueNamespace() string {
	counterMu.Lock()
	defer counterMu.Unlock()
	counter++
	return fmt.Sprintf("test_%d_%d", time.Now().UnixNano(), counter)
}

// loadMigrations reads all migration files in order
func loadMigrations() ([]string, error) {
	migrationOnce.Do(func() {
		var dir string
		for _, p := range []string{"migrations", "../migrations", "../../migrations", "../../../migrations"} {
			if _, err := os.Stat(p); err == nil {
				dir = p
				break
			}
		}
		if dir == "" {
			if root := os.Getenv("LMSKIT_ROOT"); root != "" {
				dir = filepath.Join(root, "migrations")
			}
		}
		if dir == "" {
			migrationErr = fmt.Errorf("could not find migrations directory")
			return
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			migrationErr = fmt.Errorf("reading migrations dir: %w", err)
			return
		}
		var files []string
		for _, e := range entries {
			if strings.HasSuffix(e.Name(), ".surql") {
				files = append(files, e.Name())
			}
		}
		sort.Strings(files)

		for _, name := range files {
			content, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				migrationErr = fmt.Errorf("reading %s: %w", name, err)
				return
			}
			migrations = append(migrations, string(content))
		}
	})
	return migrations, migrationErr
}

// NewSurreal connects to the SurrealDB described by the LMSKIT_TEST_DB_*
// environment, or skips the test if it cannot
func NewSurreal(t testing.TB) *SurrealTestDB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := config.TestDatabase()
	cfg.Namespace = uniqueNamespace()
	cfg.Database = "test"

	db := database.NewSurrealDB(cfg)
	if err := db.Connect(ctx); err != nil {
		t.Skipf("testdb: SurrealDB unavailable at %s: %v", db.Endpoint(), err)
	}

	migs, err := loadMigrations()
	if err != nil {
		_ = db.Close()
		t.Fatalf("testdb: failed to load migrations: %v", err)
	}
	for i, mig := range migs {
		if err := db.Execute(ctx, mig, nil); err != nil {
			_ = db.Close()
			t.Fatalf("testdb: migration %d failed: %v", i+1, err)
		}
	}

	tdb := &SurrealTestDB{
		DB:        db,
		Posts:     repository.NewPostRepository(db),
		Namespace: cfg.Namespace,
		t:         t,
	}
	t.Cleanup(tdb.Close)
	return tdb
}

// Close removes the test namespace and disconnects
func (tdb *SurrealTestDB) Close() {
	if tdb.DB == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Ignore errors on cleanup
	_ = tdb.DB.Execute(ctx, fmt.Sprintf("REMOVE NAMESPACE %s", tdb.Namespace), nil)
	_ = tdb.DB.Close()
	tdb.DB = nil
}

// MustQuery executes a query and returns results, failing the test on error
func (tdb *SurrealTestDB) MustQuery(query string, vars map[string]interface{}) []interface{} {
	tdb.t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	results, err := tdb.DB.Query(ctx, query, vars)
	if err != nil {
		tdb.t.Fatalf("testdb: query failed: %v\nQuery: %s", err, query)
	}
	return results
}
