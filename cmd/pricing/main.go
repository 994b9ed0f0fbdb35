package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aevon-lab/catalog-pricing/internal/cache"
	"github.com/aevon-lab/catalog-pricing/internal/catalog"
	corecfg "github.com/aevon-lab/catalog-pricing/internal/core/config"
	"github.com/aevon-lab/catalog-pricing/internal/core/logging"
	"github.com/aevon-lab/catalog-pricing/internal/core/storage"
	"github.com/aevon-lab/catalog-pricing/internal/core/storage/memory"
	"github.com/aevon-lab/catalog-pricing/internal/core/storage/postgres"
	"github.com/aevon-lab/catalog-pricing/internal/core/validation"
	"github.com/aevon-lab/catalog-pricing/internal/migrations"
	"github.com/aevon-lab/catalog-pricing/internal/pricing"
	"github.com/aevon-lab/catalog-pricing/internal/seed"
	"github.com/aevon-lab/catalog-pricing/internal/server"
	"github.com/aevon-lab/catalog-pricing/internal/warmup"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

const serviceName = "catalog-pricing"

func main() {
	configPath := flag.String("config", "pricing.yaml", "Path to configuration file")
	flag.Parse()

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize Logger
	logger, err := logging.New(serviceName, cfg.Server.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(cfg, logger); err != nil {
		logger.Error("service stopped with error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}

func run(cfg *corecfg.Config, logger *zap.Logger) error {
	logger.Info("loaded config",
		zap.String("storage", cfg.Storage.Type),
		zap.String("cache_backend", cfg.Cache.Backend),
		zap.Bool("warmup", cfg.Warmup.Enabled))

	// 3. Initialize Storage
	store, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	// 4. Initialize Cache
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	backend := openCacheBackend(cfg, logger)
	defer backend.Close()
	layer := cache.NewLayer(backend, cfg.Cache.LayerConfig(), logger, cache.NewMetrics(registry))

	// 5. Initialize Pricing (queries) and Catalog (commands)
	queries := pricing.NewService(pricing.NewEngine(store, logger), layer)
	invalidator := pricing.NewInvalidator(layer, logger)
	catalogSvc := catalog.NewService(store, invalidator, logger, cfg.Server.MaxBodySizeKB)

	// 6. Initialize Server
	validation.Init()
	srv := server.New(server.Options{
		Addr:          fmtAddr(cfg.Server.Host, cfg.Server.Port),
		Mode:          cfg.Server.Mode,
		ShutdownGrace: cfg.Server.ShutdownGraceDuration(),
		Registry:      registry,
	}, store, logger)
	pricing.NewHandler(queries, logger).RegisterRoutes(srv.Engine)
	catalogSvc.RegisterRoutes(srv.Engine)

	// 7. Start Services
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Warmup.Enabled {
		scheduler := warmup.NewScheduler(cfg.Warmup.IntervalDuration(), queries, logger)
		go func() {
			if err := scheduler.Start(ctx); err != nil {
				logger.Error("warm-up scheduler stopped with error", zap.Error(err))
			}
		}()
	} else {
		logger.Info("cache warm-up scheduler disabled by config")
	}

	// HTTP server blocks until ctx is cancelled.
	return srv.Run(ctx)
}

func openStore(cfg *corecfg.Config, logger *zap.Logger) (storage.Store, error) {
	switch cfg.Storage.Type {
	case "memory":
		fixture, err := seed.Load(cfg.Seed.Path)
		if err != nil {
			return nil, err
		}
		store := memory.New()
		if err := seed.Apply(context.Background(), store, fixture); err != nil {
			return nil, fmt.Errorf("failed to seed memory store: %w", err)
		}
		logger.Info("memory store seeded",
			zap.Int("categories", len(fixture.Categories)),
			zap.Int("brands", len(fixture.Brands)))
		return store, nil
	default:
		db, err := postgres.Open(cfg.Database.DSN, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := migrations.RunMigrations(db, cfg.Database.AutoMigrate, logger); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
		return postgres.NewStore(db, logger), nil
	}
}

// openCacheBackend never fails: an unreachable Redis is logged and the layer
// degrades to misses until it comes back.
func openCacheBackend(cfg *corecfg.Config, logger *zap.Logger) cache.Backend {
	if cfg.Cache.Backend == "memory" {
		return cache.NewMemoryBackend(cfg.Cache.MemoryCapacity)
	}

	opts := cfg.Cache.RedisOptions()
	backend := cache.NewRedisBackend(cache.NewRedisClient(opts), opts.KeyPrefix)
	ctx, cancel := context.WithTimeout(context.Background(), opts.DialTimeout)
	defer cancel()
	if err := backend.Ping(ctx); err != nil {
		logger.Warn("redis unreachable at start-up, serving without cache", zap.String("addr", opts.Addr), zap.Error(err))
	}
	return backend
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
