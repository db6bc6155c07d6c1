package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	contentprogress "campaignhub/contexts/campaign-editorial/content-progress-service"
	"campaignhub/contexts/campaign-editorial/content-progress-service/adapters/memory"
	postgresadapter "campaignhub/contexts/campaign-editorial/content-progress-service/adapters/postgres"
	redisadapter "campaignhub/contexts/campaign-editorial/content-progress-service/adapters/redis"
	"campaignhub/contexts/campaign-editorial/content-progress-service/adapters/seed"
	"campaignhub/contexts/campaign-editorial/content-progress-service/adapters/snapshot"
	"campaignhub/contexts/campaign-editorial/content-progress-service/adapters/sqlite"
	"campaignhub/contexts/campaign-editorial/content-progress-service/adapters/system"
	"campaignhub/contexts/campaign-editorial/content-progress-service/ports"
	"campaignhub/internal/platform/config"
	"campaignhub/internal/platform/db"
	"campaignhub/internal/platform/httpserver"
	"campaignhub/internal/platform/logging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server  *httpserver.Server
	cfg     config.Config
	closers []io.Closer
	logger  *slog.Logger
}

// storage is everything a backend contributes to the module.
type storage struct {
	kv      ports.KeyValueStore
	history ports.HistoryRepository
	clock   ports.Clock
	ids     ports.IDGenerator
	closers []io.Closer
}

func BuildAPI(ctx context.Context) (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	root, logCloser := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	app, err := BuildAPIWithConfig(ctx, cfg, root)
	if err != nil {
		_ = logCloser.Close()
		return nil, err
	}
	app.closers = append(app.closers, logCloser)
	return app, nil
}

// BuildAPIWithConfig wires the API against an already-loaded config.
func BuildAPIWithConfig(ctx context.Context, cfg config.Config, root *slog.Logger) (*APIApp, error) {
	if root == nil {
		root = slog.Default()
	}
	logger := root.With("service", cfg.ServiceName, "process", "api")

	store, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	repo, err := snapshot.Open(ctx, snapshot.NewStore(store.kv, logger), logger)
	if err != nil {
		closeAll(store.closers)
		return nil, err
	}

	module := contentprogress.NewModule(contentprogress.Dependencies{
		Campaigns:   repo,
		History:     store.history,
		Clock:       store.clock,
		IDGenerator: store.ids,
		Logger:      logger,
	})

	seeder := seed.Seeder{
		Campaigns:   repo,
		Clock:       store.clock,
		IDGenerator: store.ids,
		Latency:     cfg.SeedLatency,
		Logger:      logger,
	}
	if _, err := seeder.Run(ctx, cfg.SeedFile); err != nil {
		closeAll(store.closers)
		return nil, fmt.Errorf("seed campaigns: %w", err)
	}

	server := httpserver.New(module, logger, normalizeAddr(cfg.HTTPPort))
	logger.Info("api app built",
		"event", "bootstrap_api_built",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"storage_backend", cfg.StorageBackend,
	)
	return &APIApp{
		server:  server,
		cfg:     cfg,
		closers: store.closers,
		logger:  logger,
	}, nil
}

func openStorage(ctx context.Context, cfg config.Config, logger *slog.Logger) (storage, error) {
	switch cfg.StorageBackend {
	case config.StorageMemory, "":
		store := memory.NewStore()
		return storage{kv: store, history: store, clock: store, ids: store}, nil

	case config.StorageSQLite:
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return storage{}, err
		}
		return storage{
			kv:      store,
			history: store,
			clock:   system.Clock{},
			ids:     system.UUIDGenerator{},
			closers: []io.Closer{store},
		}, nil

	case config.StorageRedis:
		client := redisadapter.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return storage{}, fmt.Errorf("ping redis: %w", err)
		}
		store := redisadapter.NewStore(client, cfg.ServiceName)
		return storage{
			kv:      store,
			history: store,
			clock:   system.Clock{},
			ids:     system.UUIDGenerator{},
			closers: []io.Closer{client},
		}, nil

	case config.StoragePostgres:
		if strings.TrimSpace(cfg.PostgresDSN) == "" {
			return storage{}, errors.New("POSTGRES_DSN is required")
		}
		pg, err := db.Open(ctx, db.Options{
			DSN:          cfg.PostgresDSN,
			MaxOpenConns: cfg.PostgresConns,
		})
		if err != nil {
			return storage{}, err
		}
		repo := postgresadapter.NewRepository(pg.DB, logger)
		if err := repo.Migrate(ctx); err != nil {
			_ = pg.Close()
			return storage{}, fmt.Errorf("migrate postgres: %w", err)
		}
		return storage{
			kv:      repo,
			history: repo,
			clock:   system.Clock{},
			ids:     system.UUIDGenerator{},
			closers: []io.Closer{pg},
		}, nil

	default:
		return storage{}, fmt.Errorf("unsupported storage backend %q", cfg.StorageBackend)
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests within
// the configured shutdown timeout.
func (a *APIApp) Run(ctx context.Context) error {
	a.logger.Info("api app started",
		"event", "bootstrap_api_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return <-errCh
}

func (a *APIApp) Close() error {
	return closeAll(a.closers)
}

func closeAll(closers []io.Closer) error {
	var errs []error
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
