package session

import (
	"context"
	"fmt"
	"time"
)

// PromotionStore keeps the applied promotion code for each cart
// session. At most one code is stored per session; applying a new one
// replaces the prior. Entries expire after a TTL so abandoned sessions
// do not accumulate.
type PromotionStore interface {
	// Apply stores the code for the session, replacing any prior code
	Apply(ctx context.Context, sessionID, code string) error

	// Get returns the applied code and whether one is present
	Get(ctx context.Context, sessionID string) (string, bool, error)

	// Clear removes the session's applied code
	Clear(ctx context.Context, sessionID string) error

	// Close releases any resources held by the store
	Close() error
}

// StoreType identifies the backing implementation
type StoreType string

const (
	StoreTypeMemory StoreType = "memory"
	StoreTypeRedis  StoreType = "redis"
)

// Config holds promotion store configuration
type Config struct {
	Type  StoreType
	TTL   time.Duration
	Redis RedisConfig
}

// NewPromotionStore creates a store for the configured type.
// Memory suits single-instance deployments; redis shares promotion
// state across instances.
func NewPromotionStore(cfg Config) (PromotionStore, error) {
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}

	switch cfg.Type {
	case StoreTypeMemory, "":
		return NewInMemoryPromotionStore(ttl), nil
	case StoreTypeRedis:
		return NewRedisPromotionStore(cfg.Redis, ttl)
	default:
		return nil, fmt.Errorf("unknown promotion store type: %s", cfg.Type)
	}
}
