package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/heartmarshall/mockapi-backend/internal/adapter/postgres"
	redisadapter "github.com/heartmarshall/mockapi-backend/internal/adapter/redis"
	"github.com/heartmarshall/mockapi-backend/internal/config"
	"github.com/heartmarshall/mockapi-backend/internal/observability"
	"github.com/heartmarshall/mockapi-backend/internal/transport/middleware"
	"github.com/heartmarshall/mockapi-backend/internal/transport/rest"
	"github.com/heartmarshall/mockapi-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL (and Redis when configured), builds the HTTP surface and serves
// it until ctx is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics = observability.NewMetrics(registry)
	}

	services := NewServices(logger, cfg, pool, metrics)
	health := rest.NewHealthHandler(pool, BuildVersion())

	limiter, closeLimiter, err := newLimiter(ctx, cfg.Redis, health, logger)
	if err != nil {
		return err
	}
	defer closeLimiter()

	handler := rest.NewRouter(rest.RouterDeps{
		Config:   *cfg,
		Logger:   logger,
		Health:   health,
		Auth:     rest.NewAuthHandler(services.Auth, cfg.Auth, logger),
		Projects: rest.NewProjectHandler(services.Projects, logger),
		Data:     rest.NewDataHandler(services.Records, logger),
		Session:  middleware.Session(services.Auth, cfg.Auth.CookieName),
		Limiter:  limiter,
		Metrics:  metrics,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// newLimiter picks the rate limiter store. With a Redis address the budget is
// shared across instances and Redis joins the health probes; otherwise
// buckets live in process memory.
func newLimiter(
	ctx context.Context,
	cfg config.RedisConfig,
	health *rest.HealthHandler,
	logger *slog.Logger,
) (middleware.Limiter, func(), error) {
	if !cfg.UseRedis() {
		l := middleware.NewRateLimiter(time.Minute)
		return l, l.Stop, nil
	}

	client, err := redisadapter.NewClient(ctx, cfg.Addr, cfg.Password, cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to redis: %w", err)
	}

	l := redisadapter.NewLimiter(client, "ratelimit")
	health.WithComponent("redis", l)
	logger.Info("rate limiter backed by redis", slog.String("addr", cfg.Addr))

	return l, func() {
		if err := client.Close(); err != nil {
			logger.Warn("close redis client", slog.String("error", err.Error()))
		}
	}, nil
}
