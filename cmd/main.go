package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"traffic-exchange/internal/adapter/http"
	"traffic-exchange/internal/adapter/memory"
	"traffic-exchange/internal/adapter/postgres"
	rediscache "traffic-exchange/internal/adapter/redis"
	"traffic-exchange/internal/adapter/usecase"
	"traffic-exchange/internal/config"
	"traffic-exchange/internal/core/port"
	"traffic-exchange/internal/db"
	"traffic-exchange/internal/telemetry"
)

// store is everything the use cases need from a storage driver.
type store interface {
	port.LedgerStore
	port.QueryRepository
	port.FraudRepository
}

// main is the entry point of the traffic exchange. It loads configuration,
// opens the selected store (running migrations and the demo seed when
// asked to), connects to Redis when configured, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts down the
// server and flushes pending spans.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tracing, err := telemetry.Setup(ctx, cfg.Otel, cfg.Env)
	if err != nil {
		logger.Error("telemetry setup error", slog.Any("error", err))
		return
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := tracing.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	var (
		st    store
		ready func(ctx context.Context) error
	)
	switch cfg.StoreDriver {
	case config.StoreMemory:
		st = memory.New()
		logger.Warn("using in-memory store, state is lost on restart")
	default:
		// Optionally run migrations if configured. We use the Psql sub-config.
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()

		st = postgres.NewStore(pool)
		ready = pool.Ping
	}

	// the memory store starts empty, so it is always seeded
	if cfg.Psql.Seed || cfg.StoreDriver == config.StoreMemory {
		if err = db.Seed(ctx, st); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo data seeded")
	}

	var (
		rdb   *redis.Client
		cache port.ReportCache
	)
	if cfg.Redis.Enabled() {
		rdb, err = db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		defer rdb.Close()
		cache = rediscache.NewReportCache(rdb, cfg.Fraud.CacheTTL)
		ready = withRedis(ready, rdb)
	}

	handler := httpadapter.NewHandler(httpadapter.Deps{
		Ledger:    usecase.NewLedgerUseCase(st, logger),
		Campaigns: usecase.NewCampaignUseCase(st, st, logger),
		Profiles: usecase.NewProfileUseCase(st, st, usecase.ProfileOptions{
			SignupBonus: cfg.Ledger.SignupBonus,
		}, logger),
		Fraud: usecase.NewFraudUseCase(st, cache, usecase.FraudOptions{
			Window:   cfg.Fraud.Window,
			RowLimit: cfg.Fraud.RowLimit,
		}, logger),
		Verifier: httpadapter.NewTokenVerifier(cfg.Auth),
		Limiter:  httpadapter.NewRateLimiter(rdb, cfg.RateLimit, logger),
		Ready:    ready,
		Logger:   logger,
	})
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("store", cfg.StoreDriver),
			slog.Bool("redis", rdb != nil),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

func withRedis(next func(ctx context.Context) error, rdb *redis.Client) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if next != nil {
			if err := next(ctx); err != nil {
				return err
			}
		}
		return rdb.Ping(ctx).Err()
	}
}
