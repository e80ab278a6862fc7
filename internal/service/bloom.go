package service

import (
	"context"
	"sync/atomic"
	"time"

	"linkpulse/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	bloomFilterKey   = "links:bloom"
	bloomFallbackKey = "links:bloom:fb:"
)

// RedisClient defines the interface for Redis client operations
type RedisClient interface {
	Do(ctx context.Context, args ...interface{}) *redis.Cmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// BloomService pre-screens short code candidates before the store is asked.
// It uses the RedisBloom module when the server has it and plain keys otherwise.
// A negative answer is definite, a positive one must be confirmed by the store.
type BloomService struct {
	client    RedisClient
	capacity  int64
	errorRate float64
	module    atomic.Bool
}

// NewBloomService creates a new Bloom Service
func NewBloomService(client RedisClient, cfg *config.BloomConfig) *BloomService {
	return &BloomService{
		client:    client,
		capacity:  cfg.Capacity,
		errorRate: cfg.ErrorRate,
	}
}

// Init reserves the filter when RedisBloom is available and records which
// mode the service runs in
func (bs *BloomService) Init(ctx context.Context) {
	exists, err := bs.client.Exists(ctx, bloomFilterKey).Result()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to check Bloom Filter existence")
		return
	}

	if exists > 0 {
		bs.module.Store(true)
		log.Info().Msg("Bloom Filter already exists")
		return
	}

	if err := bs.client.Do(ctx, "BF.RESERVE", bloomFilterKey, bs.errorRate, bs.capacity).Err(); err != nil {
		log.Warn().Err(err).Msg("RedisBloom not available, using plain keys for code screening")
		return
	}

	bs.module.Store(true)
	log.Info().
		Int64("capacity", bs.capacity).
		Float64("error_rate", bs.errorRate).
		Msg("Bloom Filter created")
}

// Add records a short code as taken
func (bs *BloomService) Add(ctx context.Context, shortCode string) error {
	if bs.module.Load() {
		return bs.client.Do(ctx, "BF.ADD", bloomFilterKey, shortCode).Err()
	}
	return bs.client.Set(ctx, bs.fallbackKey(shortCode), 1, 0).Err()
}

// Exists reports whether a short code might be taken
func (bs *BloomService) Exists(ctx context.Context, shortCode string) (bool, error) {
	if bs.module.Load() {
		result, err := bs.client.Do(ctx, "BF.EXISTS", bloomFilterKey, shortCode).Int()
		if err != nil {
			return false, err
		}
		return result == 1, nil
	}

	exists, err := bs.client.Exists(ctx, bs.fallbackKey(shortCode)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (bs *BloomService) fallbackKey(shortCode string) string {
	return bloomFallbackKey + shortCode
}
