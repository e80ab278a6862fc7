package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"linkpulse/internal/config"
	"linkpulse/internal/metrics"
	"linkpulse/internal/model"
	"linkpulse/internal/repository"
	"linkpulse/pkg/util"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// Resolver turns short codes into destinations and emits one click event
// per successful redirect
type Resolver struct {
	links        repository.LinkRepositoryInterface
	cache        repository.CacheInterface
	dispatcher   EventDispatcherInterface
	cacheTTL     time.Duration
	readTimeout  time.Duration
	storeTimeout time.Duration
	now          func() time.Time
}

// NewResolver creates a new Resolver
func NewResolver(
	links repository.LinkRepositoryInterface,
	cache repository.CacheInterface,
	dispatcher EventDispatcherInterface,
	cfg *config.CacheConfig,
) *Resolver {
	r := &Resolver{
		links:        links,
		cache:        cache,
		dispatcher:   dispatcher,
		cacheTTL:     cfg.TTL,
		readTimeout:  cfg.ReadTimeout,
		storeTimeout: cfg.StoreTimeout,
		now:          time.Now,
	}
	if r.cacheTTL <= 0 {
		r.cacheTTL = time.Hour
	}
	if r.readTimeout <= 0 {
		r.readTimeout = 200 * time.Millisecond
	}
	if r.storeTimeout <= 0 {
		r.storeTimeout = 2 * time.Second
	}
	return r
}

// Resolve applies the link policy in order (existence, expiry, click cap,
// password) and publishes a click event on success. Publishing never fails
// the redirect.
func (r *Resolver) Resolve(ctx context.Context, req *model.ResolveRequest) (*model.Resolution, error) {
	res, err := r.resolve(ctx, req)
	metrics.Resolutions.WithLabelValues(resultLabel(err)).Inc()
	return res, err
}

func (r *Resolver) resolve(ctx context.Context, req *model.ResolveRequest) (*model.Resolution, error) {
	link, err := r.lookup(ctx, req.ShortCode)
	if err != nil {
		return nil, err
	}

	policy := link.Policy()
	now := r.now()

	if policy.IsExpired(now) {
		return nil, ErrGone
	}

	if policy.MaxClicks != nil {
		count, err := r.clickCount(ctx, link.ID)
		if err != nil {
			return nil, err
		}
		if policy.IsCapped(count) {
			return nil, ErrGone
		}
	}

	if policy.HasPassword() {
		if req.Password == "" {
			return nil, ErrUnauthorized
		}
		if err := bcrypt.CompareHashAndPassword([]byte(policy.PasswordHash), []byte(req.Password)); err != nil {
			return nil, ErrUnauthorized
		}
	}

	event := &model.ClickEvent{
		EventID:    util.GenerateUUID(),
		ShortCode:  req.ShortCode,
		LinkID:     link.ID,
		SourceIP:   req.SourceIP,
		UserAgent:  req.UserAgent,
		Referrer:   req.Referrer,
		RequestURL: req.RequestURL,
		EnqueuedAt: now.UTC(),
	}
	r.dispatcher.Dispatch(event)

	return &model.Resolution{
		DestinationURL: link.DestinationURL,
		LinkID:         link.ID,
		EventID:        event.EventID,
	}, nil
}

// lookup reads the link snapshot cache-aside. Any cache failure counts as a miss.
func (r *Resolver) lookup(ctx context.Context, shortCode string) (*model.CachedLink, error) {
	key := repository.LinkCacheKey(shortCode)

	if cached, ok := r.readCache(ctx, key); ok {
		return cached, nil
	}

	storeCtx, cancel := context.WithTimeout(ctx, r.storeTimeout)
	defer cancel()

	link, err := r.links.FindByShortCode(storeCtx, shortCode)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to read link store")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	snapshot := link.Snapshot()
	r.writeCache(ctx, key, snapshot)
	return snapshot, nil
}

func (r *Resolver) readCache(ctx context.Context, key string) (*model.CachedLink, bool) {
	cacheCtx, cancel := context.WithTimeout(ctx, r.readTimeout)
	defer cancel()

	raw, err := r.cache.Get(cacheCtx, key)
	if err != nil {
		if errors.Is(err, repository.ErrCacheMiss) {
			metrics.CacheLookups.WithLabelValues("miss").Inc()
		} else {
			metrics.CacheLookups.WithLabelValues("error").Inc()
			log.Warn().Err(err).Str("key", key).Msg("Cache read failed, falling back to store")
		}
		return nil, false
	}

	var cached model.CachedLink
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		metrics.CacheLookups.WithLabelValues("error").Inc()
		log.Warn().Err(err).Str("key", key).Msg("Discarding unreadable cache entry")
		_ = r.cache.Delete(cacheCtx, key)
		return nil, false
	}

	metrics.CacheLookups.WithLabelValues("hit").Inc()
	return &cached, true
}

func (r *Resolver) writeCache(ctx context.Context, key string, snapshot *model.CachedLink) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return
	}

	cacheCtx, cancel := context.WithTimeout(ctx, r.readTimeout)
	defer cancel()

	if err := r.cache.Set(cacheCtx, key, string(data), r.cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Failed to populate cache")
	}
}

// clickCount always reads the live counter from the link store
func (r *Resolver) clickCount(ctx context.Context, linkID int64) (int64, error) {
	storeCtx, cancel := context.WithTimeout(ctx, r.storeTimeout)
	defer cancel()

	count, err := r.links.GetClickCount(storeCtx, linkID)
	if errors.Is(err, repository.ErrNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		log.Error().Err(err).Int64("link_id", linkID).Msg("Failed to read click count")
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return count, nil
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, ErrNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, ErrGone):
		return metrics.ResultGone
	case errors.Is(err, ErrUnauthorized):
		return metrics.ResultUnauthorized
	default:
		return metrics.ResultUnavailable
	}
}
