package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/nutriai/backend/internal/models"
)

// UserService resolves externally supplied user ids to user records
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a new UserService instance
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetOrCreate resolves a user id, creating the record on first reference.
// Existing users get their last-active timestamp refreshed.
func (s *UserService) GetOrCreate(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	switch {
	case err == nil:
		user.LastActive = time.Now().UTC()
		if err := s.db.WithContext(ctx).Model(&user).Update("last_active", user.LastActive).Error; err != nil {
			return nil, fmt.Errorf("failed to update user activity: %w", err)
		}
		return &user, nil
	case err == gorm.ErrRecordNotFound:
		now := time.Now().UTC()
		user = models.User{ID: id, CreatedAt: now, LastActive: now}
		if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		return &user, nil
	default:
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
}
