// Package repository implements the entity store behind lmskit fixtures.
//
// # Repository Pattern
//
// All repositories follow a consistent pattern:
//
//   - Constructor function (NewXxxRepository) accepts a storage handle
//   - Methods implement specific data operations (Create, GetByID, Update, Delete)
//   - Missing records are reported as (nil, nil) from GetByID
//
// # Backends
//
// PostStore has three implementations:
//
//   - PostRepository: SurrealDB, via database.Database and SurrealQL
//   - BadgerPostRepository: embedded Badger, JSON-encoded values
//   - SQLitePostRepository: SQLite through sqlx, schema in SQLiteSchema
//
// CachedPostStore wraps any of them with an LRU read cache.
//
// All of them validate posts with model.ValidatePost, so a rejected write comes
// back as a *model.WPError regardless of backend.
//
// # Query Patterns
//
// SurrealDB queries use:
//
//   - Parameterized queries with $variable syntax
//   - type::record() for safe ID handling
//   - time::now() for automatic timestamps
package repository
