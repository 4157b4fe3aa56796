package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/scout9/scout9-web/internal/config"
	"github.com/scout9/scout9-web/internal/guard"
	"github.com/scout9/scout9-web/internal/handlers"
	"github.com/scout9/scout9-web/internal/logic"
	"github.com/scout9/scout9-web/internal/scoutapi"
	"github.com/scout9/scout9-web/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	os.Exit(exitCode(logger, run(cfg, logger)))
}

// exitCode logs a failed run and flushes the logger. os.Exit skips deferred
// calls, so the flush has to happen here.
func exitCode(logger *zap.Logger, err error) int {
	defer logger.Sync()
	if err != nil {
		logger.Error("portal stopped", zap.Error(err))
		return 1
	}
	return 0
}

func run(cfg *config.Config, logger *zap.Logger) error {
	sugar := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	api := scoutapi.New(scoutapi.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.APITimeout,
		Logger:  logger,
	})

	submissions, closeGuard, err := newSubmissions(ctx, cfg, sugar)
	if err != nil {
		return err
	}
	defer closeGuard()

	pool := worker.NewPool(worker.PoolConfig{
		WorkerCount: cfg.GenerateWorkers,
		QueueSize:   cfg.GenerateQueueSize,
		Logger:      logger,
	})
	pool.Start()
	defer pool.Stop()

	h := handlers.New(handlers.Config{
		Reports:             logic.NewReportService(api, logger),
		Upstream:            api,
		Queue:               pool,
		Guard:               submissions,
		Supersede:           logic.NewSupersede(),
		Logger:              logger,
		AllowedOrigins:      cfg.AllowedOrigins,
		RequestTimeout:      cfg.RequestTimeout,
		GenerateLockTTL:     cfg.GenerateLockTTL,
		DefaultMatchCount:   cfg.DefaultMatchCount,
		DefaultMatchupGames: cfg.DefaultMatchupGames,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		// Report generation can take minutes
		WriteTimeout: cfg.RequestTimeout + 30*time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sugar.Infow("portal listening", "addr", srv.Addr, "backend", api.BaseURL(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sugar.Infow("shutting down", "timeout", cfg.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// newSubmissions picks the lock store: redis when REDIS_URL is set, process
// memory otherwise.
func newSubmissions(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger) (guard.Submissions, func(), error) {
	if cfg.RedisURL == "" {
		logger.Infow("submission locks in memory")
		return guard.NewMemory(), func() {}, nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		// Not fatal: Acquire errors degrade to unguarded generation
		logger.Warnw("redis unreachable at startup", "error", err)
	} else {
		logger.Infow("submission locks in redis", "addr", opt.Addr)
	}
	return guard.NewRedis(rdb), func() { rdb.Close() }, nil
}
