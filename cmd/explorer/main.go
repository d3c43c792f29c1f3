// Command explorer runs the blockchain explorer API server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/lumenscan/explorer-backend/internal/auth"
	"github.com/lumenscan/explorer-backend/internal/cache"
	"github.com/lumenscan/explorer-backend/internal/config"
	"github.com/lumenscan/explorer-backend/internal/logging"
	"github.com/lumenscan/explorer-backend/internal/mockdata"
	"github.com/lumenscan/explorer-backend/internal/server"
	"github.com/lumenscan/explorer-backend/internal/storage"
	"github.com/lumenscan/explorer-backend/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := logging.New(cfg.App.Env, cfg.App.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store storage.Store
	if cfg.Database.DSN != "" {
		pg, err := postgres.Open(ctx, cfg.Database.DSN)
		if err != nil {
			return err
		}
		defer pg.Close()
		if err := pg.EnsureSchema(ctx); err != nil {
			return err
		}
		store = pg
		logger.Info("using postgres store")
	} else {
		store = storage.NewMemory()
		logger.Info("using in-memory store")
	}

	var readCache *cache.Cache
	if cfg.Redis.Addr != "" {
		c, err := cache.New(ctx, cfg.Redis.Addr, cfg.Redis.DB, cfg.Redis.CacheTTL)
		if err != nil {
			return err
		}
		defer c.Close()
		readCache = c
		logger.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	srv := server.New(server.Options{
		Source:      mockdata.NewSource(),
		Store:       store,
		Tokens:      auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		Cache:       readCache,
		Logger:      logger,
		CORSOrigins: cfg.App.CORSOrigins,
		RateRPS:     cfg.RateLimit.RequestsPerSecond,
		RateBurst:   cfg.RateLimit.Burst,
	})

	httpServer := &http.Server{
		Addr:         cfg.App.ListenAddr,
		Handler:      srv.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.ListenAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
