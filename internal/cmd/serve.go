package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"silktouch/internal/app"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("port", "", "listen address, overrides app.port (e.g. :5000)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.App.Port = port
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	infra, err := app.Bootstrap(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer infra.Close(log)

	server := app.New(cfg, infra.Deps, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("addr", cfg.App.Port), zap.String("env", cfg.App.Env))
		errCh <- server.Listen(cfg.App.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	if err := server.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.Warn("Error during Fiber shutdown", zap.Error(err))
	}
	log.Info("Server gracefully stopped")
	return nil
}
