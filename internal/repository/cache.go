package repository

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

// LocalCache is an in-process cache used in front of Redis
type LocalCache struct {
	store *gocache.Cache
}

// NewLocalCache creates a local cache whose entries live at most ttl
func NewLocalCache(ttl time.Duration) *LocalCache {
	return &LocalCache{store: gocache.New(ttl, 2*ttl)}
}

// Get returns the cached value of key or ErrCacheMiss
func (c *LocalCache) Get(_ context.Context, key string) (string, error) {
	v, ok := c.store.Get(key)
	if !ok {
		return "", ErrCacheMiss
	}
	return v.(string), nil
}

// Set stores value under key. A zero ttl uses the cache default.
func (c *LocalCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	c.store.Set(key, value, ttl)
	return nil
}

// Delete removes key
func (c *LocalCache) Delete(_ context.Context, key string) error {
	c.store.Delete(key)
	return nil
}

// TieredCache reads through a local cache before falling back to a shared one.
// Local entries never outlive localTTL so a deleted link stops resolving on
// every instance within that window.
type TieredCache struct {
	local    *LocalCache
	shared   CacheInterface
	localTTL time.Duration
}

// NewTieredCache stacks a local cache of the given ttl on top of shared
func NewTieredCache(shared CacheInterface, localTTL time.Duration) *TieredCache {
	return &TieredCache{
		local:    NewLocalCache(localTTL),
		shared:   shared,
		localTTL: localTTL,
	}
}

// Get checks the local tier first and back-fills it on a shared hit
func (c *TieredCache) Get(ctx context.Context, key string) (string, error) {
	if v, err := c.local.Get(ctx, key); err == nil {
		return v, nil
	}

	v, err := c.shared.Get(ctx, key)
	if err != nil {
		return "", err
	}
	_ = c.local.Set(ctx, key, v, c.localTTL)
	return v, nil
}

// Set writes both tiers
func (c *TieredCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	localTTL := c.localTTL
	if ttl > 0 && ttl < localTTL {
		localTTL = ttl
	}
	_ = c.local.Set(ctx, key, value, localTTL)
	return c.shared.Set(ctx, key, value, ttl)
}

// Delete evicts key from both tiers
func (c *TieredCache) Delete(ctx context.Context, key string) error {
	_ = c.local.Delete(ctx, key)
	if err := c.shared.Delete(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Failed to evict shared cache entry")
		return err
	}
	return nil
}
