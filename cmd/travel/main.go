package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/neexbeast/travel-companion/internal/account"
	"github.com/neexbeast/travel-companion/internal/cli"
	"github.com/neexbeast/travel-companion/internal/config"
	"github.com/neexbeast/travel-companion/internal/destination"
	"github.com/neexbeast/travel-companion/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading configuration", "err", err)
		os.Exit(1)
	}

	log := newLogger(cfg.Log)

	if err := run(cfg, log); err != nil {
		log.Error("travel companion exited with error", "err", err)
		os.Exit(1)
	}
}

// newLogger writes to stderr so log lines never interleave with the menus on
// stdout.
func newLogger(cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog, err := catalogProvider(cfg, log).Load(ctx)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	log.Info("catalog loaded", "destinations", catalog.Len())

	store, closeStore, err := openStore(ctx, cfg.Store, log)
	if err != nil {
		return err
	}
	defer closeStore()

	accounts := account.Open(ctx, store, log)
	session := cli.NewSession(os.Stdin, os.Stdout, accounts, catalog, cfg.TopN, log)

	if err := session.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("interrupted, exiting")
			return nil
		}
		return fmt.Errorf("running session: %w", err)
	}
	return nil
}

func catalogProvider(cfg *config.Config, log *slog.Logger) destination.Provider {
	if cfg.CatalogFile != "" {
		return destination.NewFileProvider(cfg.CatalogFile, log)
	}
	return destination.NewBuiltinProvider(log)
}

// openStore connects the configured users backend. The returned func releases
// its connections.
func openStore(ctx context.Context, cfg config.StoreConfig, log *slog.Logger) (account.Store, func(), error) {
	switch cfg.Backend {
	case config.StorePostgres:
		pool, err := storage.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		if err := storage.RunMigrations(ctx, pool, storage.Migrations, storage.MigrationsDir); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("running migrations: %w", err)
		}
		log.Info("migrations applied")
		return storage.NewPostgresStore(pool, log), pool.Close, nil

	case config.StoreRedis:
		client, err := storage.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return storage.NewRedisStore(client, cfg.RedisKey, log), func() { _ = client.Close() }, nil

	default:
		log.Info("using users file", "path", cfg.UsersFile)
		return storage.NewFileStore(cfg.UsersFile, log), func() {}, nil
	}
}
