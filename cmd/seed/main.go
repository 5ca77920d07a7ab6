package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/forgo/lmskit/internal/config"
	"github.com/forgo/lmskit/internal/database"
	"github.com/forgo/lmskit/internal/repository"
	"github.com/forgo/lmskit/internal/testing/fixtures"
)

var errProduction = errors.New("refusing to seed a production store")

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	count := flag.Int("count", 0, "Number of memberships to create (default: fixtures.count)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logging
	slog.SetDefault(newLogger(os.Stdout, cfg))

	if *count > 0 {
		cfg.Fixtures.Count = *count
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ids, err := run(ctx, cfg)
	if err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("seed complete", slog.Int("created", len(ids)))
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Logging.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// run creates cfg.Fixtures.Count memberships and returns their IDs
func run(ctx context.Context, cfg *config.Config) ([]string, error) {
	if cfg.IsProduction() {
		return nil, errProduction
	}

	backend, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer closeStore()

	store := backend
	if cfg.Store.CacheSize > 0 {
		cached, err := repository.NewCachedPostStore(backend, cfg.Store.CacheSize)
		if err != nil {
			return nil, err
		}
		store = cached
	}

	f := fixtures.NewMembershipFactory(store,
		fixtures.WithSequenceStart(cfg.Fixtures.SequenceStart),
		fixtures.WithTimeout(cfg.Fixtures.Timeout),
	)

	ids := make([]string, 0, cfg.Fixtures.Count)
	for i := 0; i < cfg.Fixtures.Count; i++ {
		id, err := createOne(ctx, f, cfg)
		if err != nil {
			return ids, fmt.Errorf("membership %d: %w", i+1, err)
		}
		slog.Info("created membership", slog.String("id", id))
		ids = append(ids, id)
	}
	return ids, nil
}

func createOne(ctx context.Context, f *fixtures.MembershipFactory, cfg *config.Config) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Fixtures.Timeout)
	defer cancel()
	return f.CreateContext(ctx)
}

// openStore opens the configured backend. The returned func releases it.
func openStore(ctx context.Context, cfg *config.Config) (repository.PostStore, func(), error) {
	switch cfg.Store.Type {
	case config.StoreSurrealDB:
		dbCfg, err := cfg.SurrealConfig()
		if err != nil {
			return nil, nil, err
		}
		db := database.NewSurrealDB(dbCfg)
		if err := db.Connect(ctx); err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		slog.Info("connected to database",
			slog.String("endpoint", db.Endpoint()),
			slog.String("namespace", db.Namespace()),
		)
		return repository.NewPostRepository(db), func() { _ = db.Close() }, nil

	case config.StoreSQLite:
		lc, err := cfg.SQLiteConfig()
		if err != nil {
			return nil, nil, err
		}
		db, err := database.OpenSQLite(ctx, lc, repository.SQLiteSchema...)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("opened sqlite store", slog.String("path", lc.Path))
		return repository.NewSQLitePostRepository(db), func() { _ = db.Close() }, nil

	case config.StoreBadger:
		bc, err := cfg.BadgerConfig()
		if err != nil {
			return nil, nil, err
		}
		db, err := database.OpenBadger(bc)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("opened badger store",
			slog.String("path", bc.Path),
			slog.Bool("in_memory", bc.InMemory),
		)
		return repository.NewBadgerPostRepository(db), func() { _ = db.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unsupported store type %q", cfg.Store.Type)
}
