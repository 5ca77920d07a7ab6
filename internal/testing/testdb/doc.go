// Package testdb provides test database utilities for lmskit.
//
// # In-Memory Store
//
// Every test can get its own Badger store with no setup:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t) // closed automatically via t.Cleanup
//	    f := fixtures.New(tdb.Posts)
//	}
//
// NewSQLite gives the same isolation over an in-memory SQLite database.
//
// # SurrealDB
//
// Tests that must run against SurrealDB use NewSurreal. Migrations from
// migrations/*.surql are applied in a unique namespace, which is removed
// when the test finishes:
//
//	tdb := testdb.NewSurreal(t) // skips when the server is unreachable
//
// Connection settings come from the environment:
//
//	LMSKIT_TEST_DB_HOST     - SurrealDB host (default: localhost)
//	LMSKIT_TEST_DB_PORT     - SurrealDB port (default: 8000)
//	LMSKIT_TEST_DB_USER     - SurrealDB username (default: root)
//	LMSKIT_TEST_DB_PASSWORD - SurrealDB password (default: root)
package testdb
