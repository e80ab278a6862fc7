package service

import (
	"context"
	"time"

	"linkpulse/internal/model"
	"linkpulse/internal/mq"
)

// BloomServiceInterface defines the interface for Bloom Filter operations (for testing)
type BloomServiceInterface interface {
	Add(ctx context.Context, shortCode string) error
	Exists(ctx context.Context, shortCode string) (bool, error)
}

// RepairTrackerInterface remembers rollup buckets that must be recomputed
type RepairTrackerInterface interface {
	MarkForRepair(ctx context.Context, member string) error
	PopRepairs(ctx context.Context, count int64) ([]string, error)
}

// EventDispatcherInterface hands click events to the queue without blocking
type EventDispatcherInterface interface {
	Dispatch(event *model.ClickEvent) bool
}

// DeadLetterQueueInterface exposes the failed click events of the queue
type DeadLetterQueueInterface interface {
	DeadLetters(ctx context.Context, limit int) ([]mq.DeadLetter, error)
	RequeueDeadLetter(ctx context.Context, handle string) error
}

// ResolverInterface defines the redirect resolution operation
type ResolverInterface interface {
	Resolve(ctx context.Context, req *model.ResolveRequest) (*model.Resolution, error)
}

// ShortLinkServiceInterface defines the link management operations
type ShortLinkServiceInterface interface {
	Create(ctx context.Context, req *model.CreateLinkRequest) (*model.CreateLinkResponse, error)
	Delete(ctx context.Context, shortCode, ownerID string) error
}

// AggregatorInterface defines the rollup recompute operations
type AggregatorInterface interface {
	Aggregate(ctx context.Context, linkID int64, ts time.Time) error
	Rebuild(ctx context.Context, linkID int64, day time.Time) error
}

// AnalyticsServiceInterface defines the interface for analytics operations
type AnalyticsServiceInterface interface {
	GetAnalytics(ctx context.Context, linkID int64, query model.AnalyticsQuery) (*model.AnalyticsResponse, error)
	GetAnalyticsByCode(ctx context.Context, shortCode string, query model.AnalyticsQuery) (*model.AnalyticsResponse, error)
	RebuildDay(ctx context.Context, shortCode string, day time.Time) error
}

var (
	_ BloomServiceInterface     = (*BloomService)(nil)
	_ EventDispatcherInterface  = (*Dispatcher)(nil)
	_ ResolverInterface         = (*Resolver)(nil)
	_ ShortLinkServiceInterface = (*ShortLinkService)(nil)
	_ AggregatorInterface       = (*Aggregator)(nil)
	_ AnalyticsServiceInterface = (*AnalyticsService)(nil)
	_ DeadLetterQueueInterface  = (*mq.RedisQueue)(nil)
)
