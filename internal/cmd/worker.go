package cmd

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"silktouch/internal/events"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Consume order events from RabbitMQ or Kafka",
	RunE:  runWorker,
}

func init() {
	rootCmd.AddCommand(workerCmd)
}

func runWorker(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	sub, err := events.NewSubscriber(cfg.Events, log)
	if err != nil {
		return err
	}
	defer sub.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("Order event worker started", zap.String("driver", cfg.Events.Driver))
	err = sub.Consume(ctx, logOrderEvent(log))
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("Order event worker stopped")
	return nil
}

func logOrderEvent(log *zap.Logger) events.Handler {
	return func(ctx context.Context, event events.OrderEvent) error {
		log.Info("Order event received",
			zap.String("type", event.Type),
			zap.String("order_id", event.OrderID),
			zap.String("user_id", event.UserID),
			zap.String("status", event.Status),
			zap.Float64("total", event.TotalAmount),
			zap.Int("items", event.ItemCount),
			zap.Time("occurred_at", event.OccurredAt),
		)
		return nil
	}
}
