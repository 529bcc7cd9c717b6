package app

import (
	"context"
	"errors"
	"fmt"

	"silktouch/internal/config"
	"silktouch/internal/database"
	"silktouch/internal/events"
	"silktouch/internal/generative"
	"silktouch/internal/locker"
	"silktouch/internal/storage"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Infra owns every external connection the API opens.
type Infra struct {
	Deps
	redis *redis.Client
}

// Bootstrap opens the database, runs migrations and connects the optional
// Redis, event broker, object storage and generative provider.
func Bootstrap(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Infra, error) {
	db, err := database.Open(cfg.Database, log)
	if err != nil {
		return nil, err
	}
	infra := &Infra{Deps: Deps{DB: db}}

	if err := database.Migrate(db); err != nil {
		infra.Close(log)
		return nil, err
	}

	store, err := storage.New(ctx, cfg.Storage, log)
	if err != nil {
		infra.Close(log)
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	infra.Storage = store

	if cfg.Redis.Addr != "" {
		infra.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		locks, err := locker.NewRedis(ctx, infra.redis, cfg.Redis.LockTTL, log)
		if err != nil {
			infra.Close(log)
			return nil, err
		}
		infra.Locks = locks
		log.Info("Using Redis locks", zap.String("addr", cfg.Redis.Addr))
	} else {
		infra.Locks = locker.NewMemory()
	}

	publisher, err := events.NewPublisher(cfg.Events, log)
	if err != nil {
		// Orders still work without events.
		log.Warn("Order events disabled", zap.String("driver", cfg.Events.Driver), zap.Error(err))
		publisher = events.Noop{}
	}
	infra.Publisher = publisher

	infra.Assistant = generative.NewTracked(cfg.Generative)
	st := infra.Assistant.Status()
	if st.InitError != "" {
		log.Warn("Generative assistant unavailable, using fallback responses",
			zap.String("provider", st.Provider), zap.String("error", st.InitError))
	} else if st.Available {
		log.Info("Generative assistant ready", zap.String("provider", st.Provider), zap.String("model", st.Model))
	}

	return infra, nil
}

// Close releases every connection. It is safe on a partially built Infra.
func (i *Infra) Close(log *zap.Logger) {
	var errs []error
	if i.Publisher != nil {
		errs = append(errs, i.Publisher.Close())
	}
	if i.redis != nil {
		errs = append(errs, i.redis.Close())
	}
	if i.DB != nil {
		errs = append(errs, database.Close(i.DB))
	}
	if err := errors.Join(errs...); err != nil {
		log.Warn("Error during shutdown", zap.Error(err))
	}
}
