// Package config manages lmskit configuration.
//
// Configuration comes from defaults, an optional YAML file and LMSKIT_*
// environment variables, in increasing order of precedence:
//
//	cfg, err := config.Load("")            // defaults + environment
//	cfg, err := config.Load("lmskit.yaml") // file + environment
//
// # Configuration Groups
//
//   - StoreConfig: entity store backend and its settings
//   - FixturesConfig: sequence start, seed count, per-call timeout
//   - LoggingConfig: slog level and handler format
//
// # Environment Variables
//
//	LMSKIT_ENV                      - development, production or test
//	LMSKIT_STORE_TYPE               - badger (default), sqlite or surrealdb
//	LMSKIT_STORE_CACHE_SIZE         - LRU cache entries, 0 disables (default: 0)
//	LMSKIT_STORE_BADGER_PATH        - on-disk Badger directory
//	LMSKIT_STORE_BADGER_IN_MEMORY   - keep Badger in RAM (default: true)
//	LMSKIT_STORE_SQLITE_PATH        - SQLite file or :memory: (default: lmskit.db)
//	LMSKIT_STORE_SURREALDB_HOST     - SurrealDB host (default: localhost)
//	LMSKIT_STORE_SURREALDB_PORT     - SurrealDB port (default: 8000)
//	LMSKIT_FIXTURES_SEQUENCE_START  - first sequence number (default: 1)
//	LMSKIT_FIXTURES_COUNT           - fixtures created by cmd/seed (default: 10)
//	LMSKIT_LOGGING_LEVEL            - debug, info, warn, error
//	LMSKIT_LOGGING_FORMAT           - json or text
//
// # Validation
//
// Struct-tag rules are checked with go-playground/validator; backend
// rules are checked after decoding the backend settings. All failures are
// joined into one error.
package config
