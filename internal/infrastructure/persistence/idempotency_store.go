package persistence

import (
	"context"
	"time"

	"github.com/alvarosc2000/BriefNest-Local/internal/domain/shared"
	"github.com/alvarosc2000/BriefNest-Local/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormIdempotencyStore implements IdempotencyStore on the primary database.
// Processed event IDs survive restarts, which keeps webhook replays
// idempotent without requiring a separate Redis deployment.
type GormIdempotencyStore struct {
	db *gorm.DB
}

// NewGormIdempotencyStore creates a new database-backed idempotency store
func NewGormIdempotencyStore(db *gorm.DB) *GormIdempotencyStore {
	return &GormIdempotencyStore{db: db}
}

// MarkProcessed records the event ID atomically via an insert that ignores
// conflicts. Returns true if the event was newly marked, false if a live
// record already existed.
func (s *GormIdempotencyStore) MarkProcessed(ctx context.Context, eventID string, ttl time.Duration) (bool, error) {
	now := time.Now()
	record := models.ProcessedEventModel{
		EventID:     eventID,
		ProcessedAt: now,
		ExpiresAt:   now.Add(ttl),
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&record)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	// The ID exists; treat an expired record as reusable
	reclaim := s.db.WithContext(ctx).
		Model(&models.ProcessedEventModel{}).
		Where("event_id = ? AND expires_at <= ?", eventID, now).
		Updates(map[string]interface{}{
			"processed_at": now,
			"expires_at":   now.Add(ttl),
		})
	if reclaim.Error != nil {
		return false, reclaim.Error
	}
	return reclaim.RowsAffected > 0, nil
}

// IsProcessed checks if an event has already been processed and is still live
func (s *GormIdempotencyStore) IsProcessed(ctx context.Context, eventID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.ProcessedEventModel{}).
		Where("event_id = ? AND expires_at > ?", eventID, time.Now()).
		Count(&count).Error
	return count > 0, err
}

// Release deletes the record for the event ID so a redelivery can
// claim it again
func (s *GormIdempotencyStore) Release(ctx context.Context, eventID string) error {
	return s.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Delete(&models.ProcessedEventModel{}).Error
}

// PurgeExpired removes records past their TTL
func (s *GormIdempotencyStore) PurgeExpired(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now()).
		Delete(&models.ProcessedEventModel{})
	return result.RowsAffected, result.Error
}

// Close is a no-op; the store shares the application's database handle
func (s *GormIdempotencyStore) Close() error {
	return nil
}

// Ensure GormIdempotencyStore implements IdempotencyStore
var _ shared.IdempotencyStore = (*GormIdempotencyStore)(nil)
