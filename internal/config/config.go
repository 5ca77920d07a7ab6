package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/forgo/lmskit/internal/database"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "LMSKIT"

// Store backends
const (
	StoreBadger    = "badger"
	StoreSQLite    = "sqlite"
	StoreSurrealDB = "surrealdb"
)

// Config holds all lmskit configuration
type Config struct {
	Env      string         `mapstructure:"env" validate:"oneof=development production test"`
	Store    StoreConfig    `mapstructure:"store"`
	Fixtures FixturesConfig `mapstructure:"fixtures"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// StoreConfig selects the entity store backend. Backend-specific settings
// stay loosely typed until decoded with BadgerConfig, SQLiteConfig or
// SurrealConfig. CacheSize > 0 puts an LRU cache in front of the backend.
type StoreConfig struct {
	Type      string                 `mapstructure:"type" validate:"required,oneof=badger sqlite surrealdb"`
	CacheSize int                    `mapstructure:"cache_size" validate:"gte=0"`
	Badger    map[string]interface{} `mapstructure:"badger"`
	SQLite    map[string]interface{} `mapstructure:"sqlite"`
	SurrealDB map[string]interface{} `mapstructure:"surrealdb"`
}

// FixturesConfig controls generated fixture data
type FixturesConfig struct {
	SequenceStart int           `mapstructure:"sequence_start" validate:"gte=0"`
	Count         int           `mapstructure:"count" validate:"gte=1,lte=10000"`
	Timeout       time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// LoggingConfig holds slog settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json text"`
}

var validate = newValidator()

// newValidator reports fields by their mapstructure key so messages can
// name the environment variable
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Load reads configuration from an optional YAML file and LMSKIT_*
// environment variables, which take precedence. Nested keys map to
// underscores: store.surrealdb.host is LMSKIT_STORE_SURREALDB_HOST.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")

	v.SetDefault("store.type", StoreBadger)
	v.SetDefault("store.cache_size", 0)
	v.SetDefault("store.badger.path", "")
	v.SetDefault("store.badger.in_memory", true)
	v.SetDefault("store.sqlite.path", "lmskit.db")
	v.SetDefault("store.surrealdb.host", "localhost")
	v.SetDefault("store.surrealdb.port", "8000")
	v.SetDefault("store.surrealdb.user", "root")
	v.SetDefault("store.surrealdb.password", "root")
	v.SetDefault("store.surrealdb.namespace", "lms")
	v.SetDefault("store.surrealdb.database", "fixtures")

	v.SetDefault("fixtures.sequence_start", 1)
	v.SetDefault("fixtures.count", 10)
	v.SetDefault("fixtures.timeout", 10*time.Second)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// Validate checks struct-tag rules and cross-field rules.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			errs = append(errs, fmt.Errorf("%s: validation failed on '%s' tag (value: %v)",
				envName(fe.Namespace()), fe.Tag(), fe.Value()))
		}
	}

	switch c.Store.Type {
	case StoreBadger:
		bc, err := c.BadgerConfig()
		if err != nil {
			errs = append(errs, err)
		} else if !bc.InMemory && bc.Path == "" {
			errs = append(errs, errors.New("LMSKIT_STORE_BADGER_PATH is required unless LMSKIT_STORE_BADGER_IN_MEMORY is true"))
		}
	case StoreSQLite:
		lc, err := c.SQLiteConfig()
		if err != nil {
			errs = append(errs, err)
		} else if lc.Path == "" {
			errs = append(errs, errors.New("LMSKIT_STORE_SQLITE_PATH is required"))
		}
	case StoreSurrealDB:
		sc, err := c.SurrealConfig()
		if err != nil {
			errs = append(errs, err)
			break
		}
		if sc.Host == "" {
			errs = append(errs, errors.New("LMSKIT_STORE_SURREALDB_HOST is required"))
		}
		if sc.Port == "" {
			errs = append(errs, errors.New("LMSKIT_STORE_SURREALDB_PORT is required"))
		}
		if sc.Namespace == "" {
			errs = append(errs, errors.New("LMSKIT_STORE_SURREALDB_NAMESPACE is required"))
		}
		if sc.Database == "" {
			errs = append(errs, errors.New("LMSKIT_STORE_SURREALDB_DATABASE is required"))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// BadgerConfig decodes the badger store settings
func (c *Config) BadgerConfig() (database.BadgerConfig, error) {
	var out database.BadgerConfig
	if err := mapstructure.WeakDecode(c.Store.Badger, &out); err != nil {
		return out, fmt.Errorf("invalid badger config: %w", err)
	}
	return out, nil
}

// SQLiteConfig decodes the SQLite store settings
func (c *Config) SQLiteConfig() (database.SQLiteConfig, error) {
	var out database.SQLiteConfig
	if err := mapstructure.WeakDecode(c.Store.SQLite, &out); err != nil {
		return out, fmt.Errorf("invalid sqlite config: %w", err)
	}
	return out, nil
}

// SurrealConfig decodes the SurrealDB store settings
func (c *Config) SurrealConfig() (database.Config, error) {
	var out database.Config
	if err := mapstructure.WeakDecode(c.Store.SurrealDB, &out); err != nil {
		return out, fmt.Errorf("invalid surrealdb config: %w", err)
	}
	return out, nil
}

// SlogLevel maps the configured level name to a slog level
func (c *Config) SlogLevel() slog.Level {
	switch c.Logging.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// TestDatabase returns SurrealDB settings for tests from LMSKIT_TEST_DB_*
// variables. Namespace and database are left for the caller to choose.
func TestDatabase() database.Config {
	return database.Config{
		Host:     getEnv("LMSKIT_TEST_DB_HOST", "localhost"),
		Port:     getEnv("LMSKIT_TEST_DB_PORT", "8000"),
		User:     getEnv("LMSKIT_TEST_DB_USER", "root"),
		Password: getEnv("LMSKIT_TEST_DB_PASSWORD", "root"),
	}
}

// envName turns a validator namespace such as "Config.store.type" into the
// environment variable that sets it
func envName(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return EnvPrefix + "_" + strings.ToUpper(strings.Join(parts, "_"))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
