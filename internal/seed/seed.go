// Package seed loads the demo accounts and starter catalog.
package seed

import (
	"context"
	"fmt"

	"silktouch/internal/models"
	"silktouch/internal/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Summary reports what a seed run inserted.
type Summary struct {
	Users      int
	Products   int
	ByCategory map[string]int
}

// Run replaces every user, product and review with the demo data set.
func Run(ctx context.Context, db *gorm.DB, log *zap.Logger) (*Summary, error) {
	if err := reset(ctx, db); err != nil {
		return nil, err
	}

	users := repositories.NewGORMUserRepository(db)
	for _, du := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(du.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %s: %w", du.user.Email, err)
		}
		u := du.user
		u.Password = string(hash)
		if err := users.Create(ctx, &u); err != nil {
			return nil, fmt.Errorf("failed to seed user %s: %w", u.Email, err)
		}
		log.Info("Seeded user", zap.String("email", u.Email), zap.String("role", u.Role))
	}

	products := repositories.NewGORMProductRepository(db)
	summary := &Summary{Users: len(demoUsers), ByCategory: map[string]int{}}
	for _, p := range demoProducts() {
		if err := products.Create(ctx, &p); err != nil {
			return nil, fmt.Errorf("failed to seed product %s: %w", p.Name, err)
		}
		summary.Products++
		summary.ByCategory[p.Category]++
		log.Debug("Seeded product", zap.String("name", p.Name), zap.Float64("price", p.Price), zap.Bool("featured", p.Featured))
	}

	log.Info("Seeding completed",
		zap.Int("users", summary.Users),
		zap.Int("products", summary.Products),
		zap.Int("men", summary.ByCategory[models.CategoryMen]),
		zap.Int("women", summary.ByCategory[models.CategoryWomen]),
		zap.Int("kids", summary.ByCategory[models.CategoryKids]),
	)
	return summary, nil
}

func reset(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range []any{&models.Review{}, &models.Product{}, &models.User{}} {
			if err := all.Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear %T: %w", model, err)
			}
		}
		return nil
	})
}
