package cmd

import (
	"fmt"

	"silktouch/internal/database"
	"silktouch/internal/seed"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace users and products with the demo data set",
	Long: `Wipe all users, products and reviews, then load three demo accounts
(admin@silktouch.com / admin123, sarah@example.com / user123,
mohammed@example.com / user123) and a 20 item catalog.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db, err := database.Open(cfg.Database, log)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return err
	}

	summary, err := seed.Run(cmd.Context(), db, log)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d users and %d products\n", summary.Users, summary.Products)
	return nil
}
