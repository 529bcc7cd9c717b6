// Package cmd holds the silktouch command line.
package cmd

import (
	"fmt"
	"os"

	"silktouch/internal/config"
	"silktouch/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "silktouch",
	Short: "Silk Touch store backend",
	Long: `Silk Touch is the backend of an online clothing store: catalog, carts,
orders, a shopping assistant chatbot and admin analytics.

Configuration comes from config.yaml, a .env file and environment variables
such as DATABASE_DSN, JWT_SECRET or GENERATIVE_PROVIDER.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads configuration and builds the logger every command uses.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, logger.New(cfg.Log), nil
}
