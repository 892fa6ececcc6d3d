package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/xiaot623/wallboard/internal/config"
	"github.com/xiaot623/wallboard/internal/logging"
	"github.com/xiaot623/wallboard/internal/repository"
	"github.com/xiaot623/wallboard/internal/service"
	transporthttp "github.com/xiaot623/wallboard/internal/transport/http"
)

func newServeCommand() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the wallboard HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if port > 0 {
				cfg.HTTPPort = port
			}
			return serve(cfg)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (default $HTTP_PORT or 3001)")
	return cmd
}

func serve(cfg *config.Config) error {
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	logger.Info("starting wallboard",
		"port", cfg.HTTPPort,
		"store", cfg.StoreDriver,
		"seed", cfg.SeedAgents,
	)

	// Initialize store
	db, err := store.Open(cfg.StoreDriver, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer db.Close()

	registry := service.New(db)
	if cfg.SeedAgents {
		if err := registry.Seed(context.Background(), service.DefaultAgents()); err != nil {
			return fmt.Errorf("failed to seed agents: %w", err)
		}
	}

	server := transporthttp.NewServer(registry, cfg, logger)

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	logger.Info("wallboard API started", "port", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	}

	logger.Info("shutting down wallboard")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server gracefully", "err", err)
	}

	logger.Info("wallboard stopped")
	return nil
}
