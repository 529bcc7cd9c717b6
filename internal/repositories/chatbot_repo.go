package repositories

import (
	"context"
	"fmt"
	"time"

	"silktouch/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InteractionRepository appends and aggregates chatbot interactions.
type InteractionRepository interface {
	Create(ctx context.Context, interaction *models.ChatbotInteraction) error
	Count(ctx context.Context) (int64, error)
	IntentCounts(ctx context.Context) ([]models.IntentCount, error)
	Recent(ctx context.Context, limit int) ([]models.ChatbotInteraction, error)
}

type GORMInteractionRepository struct {
	db *gorm.DB
}

func NewGORMInteractionRepository(db *gorm.DB) *GORMInteractionRepository {
	return &GORMInteractionRepository{db: db}
}

func (r *GORMInteractionRepository) Create(ctx context.Context, interaction *models.ChatbotInteraction) error {
	if interaction.ID == "" {
		interaction.ID = uuid.New().String()
	}
	if interaction.Timestamp.IsZero() {
		interaction.Timestamp = time.Now()
	}
	if err := r.db.WithContext(ctx).Omit("User").Create(interaction).Error; err != nil {
		return fmt.Errorf("failed to save chatbot interaction: %w", err)
	}
	return nil
}

func (r *GORMInteractionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ChatbotInteraction{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count interactions: %w", err)
	}
	return count, nil
}

// IntentCounts groups interactions by intent, most frequent first.
func (r *GORMInteractionRepository) IntentCounts(ctx context.Context) ([]models.IntentCount, error) {
	counts := []models.IntentCount{}
	err := r.db.WithContext(ctx).Model(&models.ChatbotInteraction{}).
		Select("intent, COUNT(*) AS count").
		Group("intent").
		Order("count DESC").
		Order("intent").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count intents: %w", err)
	}
	return counts, nil
}

// Recent returns the latest interactions with the user resolved when present.
func (r *GORMInteractionRepository) Recent(ctx context.Context, limit int) ([]models.ChatbotInteraction, error) {
	interactions := []models.ChatbotInteraction{}
	err := r.db.WithContext(ctx).Preload("User").Order("timestamp DESC").Limit(limit).Find(&interactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent interactions: %w", err)
	}
	return interactions, nil
}
