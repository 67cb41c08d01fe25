package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/nutriai/backend/internal/models"
)

// AnalyticsService appends usage events. Analytics is best-effort: a failed
// write is logged and swallowed, never propagated to the operation that
// triggered it.
type AnalyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService creates a new AnalyticsService instance
func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// Track records a user action with an arbitrary payload
func (s *AnalyticsService) Track(ctx context.Context, userID, action string, data map[string]interface{}) {
	var payload string
	if data != nil {
		encoded, err := json.Marshal(data)
		if err != nil {
			log.Printf("Analytics tracking error: failed to encode payload for %s: %v", action, err)
			return
		}
		payload = string(encoded)
	}

	event := models.UserAnalytics{
		UserID:    userID,
		Action:    action,
		Data:      payload,
		Timestamp: time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&event).Error; err != nil {
		log.Printf("Analytics tracking error: %v", err)
	}
}
