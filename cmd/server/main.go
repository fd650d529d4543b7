package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/light-bringer/wardrobe-catalog/internal/config"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/clock"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/logger"
	"github.com/light-bringer/wardrobe-catalog/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run() error {
	// 1. Load configuration: defaults, ./config/config.yaml, WARDROBE_* env
	cfg, err := config.Load("./config", ".")
	if err != nil {
		return err
	}

	// 2. Logger
	zlog, restore, err := logger.Init(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer restore()
	defer func() { _ = zlog.Sync() }()

	zlog.Info("starting wardrobe catalog",
		zap.String("addr", cfg.HTTP.Addr()),
		zap.Int64("retention_units", cfg.Retention.Units),
		zap.String("sweep_schedule", cfg.Sweep.Schedule),
	)

	// 3. Wire dependencies
	serviceOpts, err := services.NewServiceOptions(cfg, zlog, clock.NewRealClock())
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	serviceOpts.Start()

	httpServer := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           serviceOpts.Handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// 4. Serve in background
	errCh := make(chan error, 1)
	go func() {
		zlog.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// 5. Graceful shutdown handling
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
	}

	zlog.Info("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zlog.Error("HTTP server shutdown error", zap.Error(err))
	}

	return nil
}
