// cmd/agent-server/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"agent-demos/internal/agents"
	"agent-demos/internal/common/camunda"
	"agent-demos/internal/common/config"
	"agent-demos/internal/common/database"
	"agent-demos/internal/common/logger"
	"agent-demos/internal/common/observability"
	"agent-demos/internal/common/stats"
	"agent-demos/internal/server"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting agent server...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs, err := observability.New(cfg.App.Name)
	if err != nil {
		zapLog.Warn("observability init failed, continuing without OTel metrics", zap.Error(err))
	}
	defer obs.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Usage counters ---
	var counter stats.Counter = stats.NewMemoryCounter()
	checks := map[string]server.ReadinessCheck{}

	if cfg.Redis.Enabled {
		var rdb *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			rdb, err = database.NewRedis(ctx, cfg.Redis)
			return err
		}, 10, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer rdb.Close()

		counter = stats.NewRedisCounter(rdb.GetClient(), cfg.Redis.Key)
		checks["redis"] = rdb.Ping
		zapLog.Info("Redis connected successfully", zap.String("key", cfg.Redis.Key))
	}

	// --- Agents ---
	set, err := agents.Build(cfg, agents.Deps{Logger: log, Observability: obs})
	if err != nil {
		zapLog.Fatal("agent setup failed", zap.Error(err))
	}

	// --- Zeebe job workers ---
	if cfg.Camunda.Enabled {
		client, err := camunda.NewClient(ctx, cfg.Camunda)
		if err != nil {
			zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
		}
		defer client.Close()
		zapLog.Info("Zeebe client connected successfully", zap.String("broker", cfg.Camunda.BrokerAddress))

		workers := camunda.NewWorkers(client.GetClient(), cfg.Camunda, log)
		defer workers.Close()

		for _, def := range set.Enabled() {
			runner, err := set.Lookup(def.ID)
			if err != nil {
				zapLog.Fatal("agent lookup failed", zap.String("agent", def.ID), zap.Error(err))
			}
			handler := camunda.NewAgentJobHandler(runner, config.GetDuration(cfg.Camunda.Timeout), log)
			if err := workers.Register(def.TaskType, def.Schema.PropertyOrder, handler.Handle); err != nil {
				zapLog.Fatal("worker registration failed", zap.String("taskType", def.TaskType), zap.Error(err))
			}
		}
		checks["zeebe"] = client.HealthCheck
		zapLog.Info("All agent workers registered", zap.Int("count", len(workers.TaskTypes())))
	}

	// --- HTTP server ---
	srv := server.New(server.Options{
		Server:  cfg.Server,
		Metrics: cfg.Metrics,
		App:     cfg.App,
		Agents:  set,
		Counter: counter,
		Logger:  log,
		Checks:  checks,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// --- Graceful Shutdown ---
	select {
	case <-ctx.Done():
		zapLog.Info("Shutdown signal received, draining requests...")
	case err := <-errCh:
		if err != nil {
			zapLog.Error("http server stopped", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("http shutdown failed", zap.Error(err))
	}

	zapLog.Info("Agent server stopped")
}
