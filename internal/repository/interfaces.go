package repository

import (
	"context"
	"time"

	"linkpulse/internal/model"
)

// LinkRepositoryInterface defines the link store operations
type LinkRepositoryInterface interface {
	SaveLink(ctx context.Context, l *model.Link) error
	FindByShortCode(ctx context.Context, shortCode string) (*model.Link, error)
	CheckExistsByCode(ctx context.Context, shortCode string) (bool, error)
	GetClickCount(ctx context.Context, linkID int64) (int64, error)
	IncrementClickCount(ctx context.Context, linkID int64) error
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	DeleteLink(ctx context.Context, shortCode string) error
}

// ClickRepositoryInterface defines the click and rollup store operations
type ClickRepositoryInterface interface {
	InsertClick(ctx context.Context, click *model.Click) (bool, error)
	RecordClick(ctx context.Context, click *model.Click) (bool, error)
	CountClicks(ctx context.Context, linkID int64, from, to time.Time, excludeBots bool) (int64, error)
	ListClicks(ctx context.Context, linkID int64, from, to time.Time, excludeBots bool) ([]model.Click, error)
	GetRecentClicks(ctx context.Context, linkID int64, limit int) ([]model.Click, error)
	UpsertHourlyRollup(ctx context.Context, r *model.HourlyRollup) error
	UpsertDailyRollup(ctx context.Context, r *model.DailyRollup) error
	GetHourlyRollups(ctx context.Context, linkID int64, from, to time.Time) ([]model.HourlyRollup, error)
	GetDailyRollups(ctx context.Context, linkID int64, from, to time.Time) ([]model.DailyRollup, error)
}

// CacheInterface is a plain TTL key-value contract
type CacheInterface interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

var (
	_ LinkRepositoryInterface  = (*SQLRepository)(nil)
	_ ClickRepositoryInterface = (*SQLRepository)(nil)
	_ CacheInterface           = (*RedisRepository)(nil)
	_ CacheInterface           = (*LocalCache)(nil)
	_ CacheInterface           = (*TieredCache)(nil)
)
