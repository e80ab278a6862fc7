package repository

import (
	"context"
	"errors"
	"time"

	"linkpulse/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// Redis key prefixes
	LinkKeyPrefix = "link:"
	RepairSetKey  = "rollup:repair"
)

// ErrCacheMiss is returned when a key is absent from the cache
var ErrCacheMiss = errors.New("cache miss")

// RedisRepository handles Redis operations
type RedisRepository struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return &RedisRepository{
		client: rdb,
		cfg:    cfg,
	}
}

// GetClient returns the Redis client
func (r *RedisRepository) GetClient() *redis.Client {
	return r.client
}

// Get returns the cached value of key or ErrCacheMiss
func (r *RedisRepository) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	return val, err
}

// Set stores value under key. A zero ttl keeps the key forever.
func (r *RedisRepository) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes key. Deleting an absent key is not an error.
func (r *RedisRepository) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// MarkForRepair remembers a rollup member whose recompute failed
func (r *RedisRepository) MarkForRepair(ctx context.Context, member string) error {
	return r.client.SAdd(ctx, RepairSetKey, member).Err()
}

// PopRepairs removes and returns up to count pending rollup members
func (r *RedisRepository) PopRepairs(ctx context.Context, count int64) ([]string, error) {
	members, err := r.client.SPopN(ctx, RepairSetKey, count).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return members, err
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

// LinkCacheKey builds the resolution cache key of a short code
func LinkCacheKey(shortCode string) string {
	return LinkKeyPrefix + shortCode
}
