package services

import (
	"context"
	"strings"

	"silktouch/internal/apperror"
	"silktouch/internal/models"
	"silktouch/internal/repositories"
)

// ProfileInput lists the only fields a user may change on their profile.
// Omitted fields are left as they are.
type ProfileInput struct {
	Name    *string         `json:"name" validate:"omitempty,max=100"`
	Phone   *string         `json:"phone" validate:"omitempty,max=30"`
	Address *models.Address `json:"address"`
}

type ProfileService struct {
	users repositories.UserRepository
}

func NewProfileService(users repositories.UserRepository) *ProfileService {
	return &ProfileService{users: users}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, storeError(err, "User not found")
	}
	return user, nil
}

func (s *ProfileService) Update(ctx context.Context, userID string, in ProfileInput) (*models.User, error) {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, apperror.Validation("Validation failed", map[string]string{"name": "must not be empty"})
		}
		in.Name = &name
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	user, err := s.users.UpdateProfile(ctx, userID, repositories.ProfileUpdate{
		Name:    in.Name,
		Phone:   in.Phone,
		Address: in.Address,
	})
	if err != nil {
		return nil, storeError(err, "User not found")
	}
	return user, nil
}
