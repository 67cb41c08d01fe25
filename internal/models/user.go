package models

import (
	"time"
)

// User is created lazily the first time an external id shows up in a request
// and is never deleted. LastActive is refreshed on every resolution.
type User struct {
	ID                 string    `gorm:"size:50;primaryKey" json:"id"`
	CreatedAt          time.Time `json:"created_at"`
	LastActive         time.Time `json:"last_active"`
	DietaryPreferences string    `gorm:"type:text" json:"dietary_preferences"`
	Location           string    `gorm:"size:100" json:"location"`
}
