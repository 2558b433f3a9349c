// The admin gateway for the driver fleet platform. It fronts the external
// driver record store and the realtime presence service, owns admin
// sessions and the local transition audit trail, and publishes driver
// lifecycle events.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Amaspm/driver-management/internal/audit"
	"github.com/Amaspm/driver-management/internal/config"
	"github.com/Amaspm/driver-management/internal/db"
	"github.com/Amaspm/driver-management/internal/events"
	"github.com/Amaspm/driver-management/internal/presence"
	"github.com/Amaspm/driver-management/internal/recordstore"
	rediscli "github.com/Amaspm/driver-management/internal/redis"
	"github.com/Amaspm/driver-management/internal/router"
	"github.com/Amaspm/driver-management/internal/security"
	"github.com/Amaspm/driver-management/internal/session"
)

func main() {
	config.LoadDotEnvUp(3)

	var logger *zap.Logger
	var err error
	if os.Getenv("APP_ENV") == "local" {
		logger, err = zap.NewDevelopment()
		gin.SetMode(gin.DebugMode)
	} else {
		logger, err = zap.NewProduction()
		gin.SetMode(gin.ReleaseMode)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPostgres(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatal("postgres connect failed", zap.Error(err))
	}
	defer pool.Close()
	if err := audit.Migrate(ctx, pool); err != nil {
		logger.Fatal("audit migrations failed", zap.Error(err))
	}

	rdb, err := rediscli.New(cfg.Redis)
	if err != nil {
		logger.Fatal("redis connect failed", zap.Error(err))
	}
	defer rediscli.Close(rdb)

	records := recordstore.New(cfg.RecordStore.BaseURL, cfg.RecordStore.Timeout, logger)

	poller := presence.NewPoller(
		presence.NewClient(cfg.Presence.BaseURL, cfg.Presence.Timeout),
		cfg.Presence.Interval,
		logger,
	)
	go poller.Run(ctx)

	publisher := events.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
	defer publisher.Close()
	if publisher == nil {
		logger.Info("kafka brokers not configured, driver events disabled")
	}

	engine := router.New(router.Dependencies{
		Config:   cfg,
		Logger:   logger,
		Redis:    rdb,
		Records:  records,
		Presence: poller,
		Sessions: session.NewStore(rdb, cfg.Security.SessionTTL),
		Tokens:   security.NewTokenManager(cfg.Security.JWTSecret, cfg.Security.SessionTTL),
		Audit:    audit.NewStore(pool),
		Events:   publisher,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("gateway listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	logger.Info("bye")
}
