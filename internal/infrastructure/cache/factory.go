package cache

import (
	"fmt"

	"github.com/alvarosc2000/BriefNest-Local/internal/domain/shared"
	"github.com/alvarosc2000/BriefNest-Local/internal/infrastructure/config"
	"github.com/alvarosc2000/BriefNest-Local/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

// IdempotencyStoreFactory creates the webhook idempotency store based on
// configuration. Redis is used when enabled, otherwise the database-backed
// implementation is used.
type IdempotencyStoreFactory struct {
	redisConfig config.RedisConfig
	db          *persistence.Database
	logger      *zap.Logger
}

// NewIdempotencyStoreFactory creates a new factory
func NewIdempotencyStoreFactory(cfg config.RedisConfig, db *persistence.Database, logger *zap.Logger) *IdempotencyStoreFactory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IdempotencyStoreFactory{
		redisConfig: cfg,
		db:          db,
		logger:      logger,
	}
}

// CreateRedisStore creates a Redis-based idempotency store
func (f *IdempotencyStoreFactory) CreateRedisStore() (shared.IdempotencyStore, error) {
	store, err := NewRedisIdempotencyStore(RedisConfig{
		Host:     f.redisConfig.Host,
		Port:     f.redisConfig.Port,
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis idempotency store: %w", err)
	}
	return store, nil
}

// CreateDatabaseStore creates a database-backed idempotency store
func (f *IdempotencyStoreFactory) CreateDatabaseStore() shared.IdempotencyStore {
	return persistence.NewGormIdempotencyStore(f.db.DB)
}

// CreateStore creates the idempotency store selected by configuration.
// When Redis is enabled but unreachable the factory returns an error
// instead of silently downgrading to the database store.
func (f *IdempotencyStoreFactory) CreateStore() (shared.IdempotencyStore, error) {
	if f.redisConfig.Enabled {
		store, err := f.CreateRedisStore()
		if err != nil {
			return nil, err
		}
		f.logger.Info("using Redis idempotency store")
		return store, nil
	}

	f.logger.Info("using database idempotency store")
	return f.CreateDatabaseStore(), nil
}
