package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds redis connection settings
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisPromotionStore shares applied promotion codes across server
// instances through redis. Expiry is delegated to redis key TTLs.
type RedisPromotionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPromotionStore connects to redis and verifies the connection
func NewRedisPromotionStore(cfg RedisConfig, ttl time.Duration) (*RedisPromotionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisPromotionStore{client: client, ttl: ttl}, nil
}

func (s *RedisPromotionStore) Apply(ctx context.Context, sessionID, code string) error {
	if err := s.client.Set(ctx, s.key(sessionID), code, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store promotion code: %w", err)
	}
	return nil
}

func (s *RedisPromotionStore) Get(ctx context.Context, sessionID string) (string, bool, error) {
	code, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read promotion code: %w", err)
	}
	return code, true, nil
}

func (s *RedisPromotionStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear promotion code: %w", err)
	}
	return nil
}

func (s *RedisPromotionStore) Close() error {
	return s.client.Close()
}

func (s *RedisPromotionStore) key(sessionID string) string {
	return "promo:session:" + sessionID
}
