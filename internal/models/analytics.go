package models

import (
	"time"
)

// UserAnalytics is an append-only usage event. The user reference is not
// enforced to exist and rows are never mutated or deleted.
type UserAnalytics struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"size:50;not null;index" json:"user_id"`
	Action    string    `gorm:"size:100;not null" json:"action"`
	Data      string    `gorm:"type:text" json:"data"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
}

// TableName pins the table name; the default pluralization is ambiguous for
// a word that is already plural.
func (UserAnalytics) TableName() string {
	return "user_analytics"
}
