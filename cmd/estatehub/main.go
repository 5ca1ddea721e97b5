package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"estatehub/internal/catalog"
	"estatehub/internal/collections"
	"estatehub/internal/common/config"
	"estatehub/internal/common/database"
	"estatehub/internal/common/logger"
	"estatehub/internal/storage"
	"estatehub/internal/tour"
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

	zapLog.Info("starting estatehub",
		zap.String("environment", cfg.App.Environment),
		zap.String("storage", cfg.Storage.Backend),
		zap.String("catalog", cfg.Catalog.Source),
	)

	ctx := context.Background()

	// --- Durable client-state storage ---
	var kv storage.KV
	switch cfg.Storage.Backend {
	case "redis":
		var redisClient *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			redisClient, err = database.NewRedis(cfg.Storage.Redis)
			if err != nil {
				return err
			}
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return redisClient.Ping(pingCtx)
		}, 5, 2*time.Second, zapLog, "redis connection")
		if err != nil {
			zapLog.Fatal("redis unavailable", zap.Error(err))
		}
		defer redisClient.Close()
		kv = storage.NewRedis(redisClient)
	default:
		kv = storage.NewMemory()
	}

	// --- Property catalog ---
	var source catalog.Source
	switch cfg.Catalog.Source {
	case "postgres":
		pg, err := database.NewPostgres(cfg.Catalog.Postgres)
		if err != nil {
			zapLog.Fatal("postgres init failed", zap.Error(err))
		}
		defer pg.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = pg.Ping(pingCtx)
		cancel()
		if err != nil {
			zapLog.Fatal("postgres unreachable", zap.Error(err))
		}
		source = catalog.NewPostgresSource(pg)
	default:
		source = catalog.NewStaticSource(catalog.SampleProperties())
	}

	props, err := source.Properties(ctx)
	if err != nil {
		zapLog.Fatal("catalog load failed", zap.Error(err))
	}
	zapLog.Info("catalog loaded", zap.Int("properties", len(props)))

	// --- Client-state stores and tour engine ---
	favorites := collections.NewFavorites(ctx, kv, log)
	comparison := collections.NewComparisonWithCapacity(ctx, kv, log, cfg.Comparison.Capacity)
	geom := tour.Geometry{
		PanelWidth:  cfg.Tour.PanelWidth,
		PanelHeight: cfg.Tour.PanelHeight,
		Margin:      cfg.Tour.Margin,
	}
	engine := tour.NewEngineWithGeometry(ctx, tour.NewRegistry(tour.BuiltinTours()...), kv, log, geom)

	zapLog.Info("client state restored",
		zap.Int("favorites", favorites.Len()),
		zap.Int("comparison", comparison.Len()),
		zap.Bool("showWelcome", engine.ShowWelcome()),
	)

	// --- Metrics and health endpoints ---
	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			fmt.Fprintln(w, "ok")
		})

		server := &http.Server{Addr: cfg.Metrics.Address, Handler: mux}
		go func() {
			zapLog.Info("metrics server listening", zap.String("address", cfg.Metrics.Address))
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				zapLog.Error("metrics server failed", zap.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		}()
	}

	// --- Wait for shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	zapLog.Info("shutting down", zap.String("signal", sig.String()))
}
