package models

import "time"

// ProcessedEventModel records webhook events that have already been
// applied, so replayed deliveries are no-ops across restarts.
type ProcessedEventModel struct {
	EventID     string    `gorm:"type:varchar(255);primary_key"`
	EventType   string    `gorm:"type:varchar(100);not null;default:''"`
	ProcessedAt time.Time `gorm:"not null"`
	ExpiresAt   time.Time `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (ProcessedEventModel) TableName() string {
	return "processed_events"
}
