// Package events publishes and consumes order lifecycle events.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"silktouch/internal/config"
	"silktouch/internal/models"
	"silktouch/pkg/kafka"
	"silktouch/pkg/rabbitmq"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	TypeOrderCreated       = "order.created"
	TypeOrderStatusChanged = "order.status_changed"
)

// OrderEvent is the payload published after an order is committed.
type OrderEvent struct {
	Type        string    `json:"type"`
	OrderID     string    `json:"orderId"`
	UserID      string    `json:"userId"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"totalAmount"`
	ItemCount   int       `json:"itemCount"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// NewOrderEvent snapshots an order into an event of the given type.
func NewOrderEvent(eventType string, order *models.Order) OrderEvent {
	count := 0
	for _, item := range order.Items {
		count += item.Quantity
	}
	return OrderEvent{
		Type:        eventType,
		OrderID:     order.ID,
		UserID:      order.UserID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		ItemCount:   count,
		OccurredAt:  time.Now().UTC(),
	}
}

// Publisher sends order events to a broker.
type Publisher interface {
	Publish(ctx context.Context, event OrderEvent) error
	Close() error
}

// Handler processes one consumed event.
type Handler func(ctx context.Context, event OrderEvent) error

// Subscriber consumes order events until ctx is done.
type Subscriber interface {
	Consume(ctx context.Context, handler Handler) error
	Close() error
}

// Noop discards every event.
type Noop struct{}

func (Noop) Publish(context.Context, OrderEvent) error { return nil }
func (Noop) Close() error                              { return nil }

// NewPublisher builds the publisher selected by events.driver.
func NewPublisher(cfg config.EventsConfig, log *zap.Logger) (Publisher, error) {
	switch cfg.Driver {
	case "", "none":
		return Noop{}, nil
	case "rabbitmq":
		client, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, log)
		if err != nil {
			return nil, err
		}
		return &RabbitMQ{client: client}, nil
	case "kafka":
		producer := kafka.NewProducer(cfg.KafkaBrokerList(), cfg.KafkaTopic, 256, log)
		producer.Start()
		return &Kafka{producer: producer}, nil
	default:
		return nil, fmt.Errorf("unsupported events driver: %s", cfg.Driver)
	}
}

// NewSubscriber builds the consumer for the worker command.
func NewSubscriber(cfg config.EventsConfig, log *zap.Logger) (Subscriber, error) {
	switch cfg.Driver {
	case "rabbitmq":
		client, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, log)
		if err != nil {
			return nil, err
		}
		return &RabbitMQ{client: client}, nil
	case "kafka":
		return &KafkaSubscriber{
			consumer: kafka.NewConsumer(cfg.KafkaBrokerList(), cfg.KafkaGroupID, cfg.KafkaTopic, 4, log),
		}, nil
	default:
		return nil, fmt.Errorf("events driver %q cannot be consumed", cfg.Driver)
	}
}

// Decode parses an event payload.
func Decode(body []byte) (OrderEvent, error) {
	var event OrderEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return event, fmt.Errorf("decode order event: %w", err)
	}
	return event, nil
}

// RabbitMQ publishes and consumes events on a durable queue.
type RabbitMQ struct {
	client *rabbitmq.Client
}

func (r *RabbitMQ) Publish(ctx context.Context, event OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}
	return r.client.Publish(event.Type, body)
}

func (r *RabbitMQ) Consume(ctx context.Context, handler Handler) error {
	return r.client.Consume(ctx, func(ctx context.Context, body []byte) error {
		event, err := Decode(body)
		if err != nil {
			return err
		}
		return handler(ctx, event)
	})
}

func (r *RabbitMQ) Close() error {
	return r.client.Close()
}

// Kafka publishes events keyed by order id so one order's events stay ordered.
type Kafka struct {
	producer *kafka.Producer
}

func (k *Kafka) Publish(ctx context.Context, event OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}
	return k.producer.Publish([]byte(event.OrderID), body, kafkago.Header{Key: "type", Value: []byte(event.Type)})
}

func (k *Kafka) Close() error {
	return k.producer.Close()
}

type KafkaSubscriber struct {
	consumer *kafka.Consumer
}

func (k *KafkaSubscriber) Consume(ctx context.Context, handler Handler) error {
	return k.consumer.Start(ctx, func(ctx context.Context, m kafkago.Message) error {
		event, err := Decode(m.Value)
		if err != nil {
			return err
		}
		return handler(ctx, event)
	})
}

func (k *KafkaSubscriber) Close() error { return nil }
