package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/remvana/nestmap/internal/config"
	"github.com/remvana/nestmap/internal/domain/activity"
	"github.com/remvana/nestmap/internal/domain/itinerary"
	"github.com/remvana/nestmap/internal/domain/template"
	"github.com/remvana/nestmap/internal/domain/trip"
	"github.com/remvana/nestmap/internal/metrics"
	"github.com/remvana/nestmap/internal/notify"
	"github.com/remvana/nestmap/internal/sqlite"
	"github.com/remvana/nestmap/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	tripRepo := sqlite.NewTripRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)
	templateRepo := sqlite.NewTemplateRepository(db)
	apiKeys := sqlite.NewAPIKeyRepository(db)

	collector := metrics.NewCollector()

	var events itinerary.EventPublisher = notify.Noop{}
	if cfg.NATS.URL != "" {
		publisher, err := notify.NewNATSPublisher(cfg.NATS.URL, cfg.NATS.SubjectPrefix, collector, logger)
		if err != nil {
			logger.Error("failed to connect to nats", "url", cfg.NATS.URL, "error", err)
			os.Exit(1)
		}
		defer publisher.Close()
		events = publisher
	}

	tripSvc := trip.NewService(tripRepo, logger)
	activitySvc := activity.NewService(activityRepo, tripRepo, logger)
	itinerarySvc := itinerary.NewService(tripRepo, activityRepo, itinerary.DefaultProfile(), events, collector, logger)
	templateSvc := template.NewService(templateRepo, tripRepo, activityRepo, logger)

	var authMiddleware func(http.Handler) http.Handler
	if cfg.Auth.Enabled {
		authMiddleware = transport.AuthMiddleware(apiKeys)
	} else {
		logger.Warn("authentication disabled, all requests run as the default tenant")
		authMiddleware = transport.StaticTenant("default")
	}

	router := transport.NewServer(transport.Services{
		Trips:      tripSvc,
		Activities: activitySvc,
		Itinerary:  itinerarySvc,
		Templates:  templateSvc,
	}, authMiddleware, transport.Options{
		Logger:         logger,
		Observer:       collector,
		MetricsHandler: collector.Handler(),
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
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
