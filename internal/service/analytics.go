package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"linkpulse/internal/model"
	"linkpulse/internal/repository"

	"github.com/rs/zerolog/log"
)

// AnalyticsService handles analytics operations
type AnalyticsService struct {
	links      repository.LinkRepositoryInterface
	clicks     repository.ClickRepositoryInterface
	aggregator AggregatorInterface
}

// NewAnalyticsService creates a new Analytics Service
func NewAnalyticsService(
	links repository.LinkRepositoryInterface,
	clicks repository.ClickRepositoryInterface,
	aggregator AggregatorInterface,
) *AnalyticsService {
	return &AnalyticsService{
		links:      links,
		clicks:     clicks,
		aggregator: aggregator,
	}
}

// GetAnalytics returns the rollups and the latest clicks of a link. A bucket
// without rollup simply had no non-bot clicks.
func (as *AnalyticsService) GetAnalytics(ctx context.Context, linkID int64, query model.AnalyticsQuery) (*model.AnalyticsResponse, error) {
	total, err := as.links.GetClickCount(ctx, linkID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get click count: %w", err)
	}

	daily, err := as.clicks.GetDailyRollups(ctx, linkID, query.From, query.To)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily rollups: %w", err)
	}

	hourly, err := as.clicks.GetHourlyRollups(ctx, linkID, query.From, query.To)
	if err != nil {
		return nil, fmt.Errorf("failed to get hourly rollups: %w", err)
	}

	recent, err := as.clicks.GetRecentClicks(ctx, linkID, model.RecentClicksLimit)
	if err != nil {
		log.Error().Err(err).Int64("link_id", linkID).Msg("Failed to get recent clicks")
		recent = nil
	}

	resp := &model.AnalyticsResponse{
		TotalClicks:   total,
		DailyRollups:  daily,
		HourlyRollups: hourly,
		RecentClicks:  recent,
	}
	if resp.DailyRollups == nil {
		resp.DailyRollups = []model.DailyRollup{}
	}
	if resp.HourlyRollups == nil {
		resp.HourlyRollups = []model.HourlyRollup{}
	}
	if resp.RecentClicks == nil {
		resp.RecentClicks = []model.Click{}
	}
	return resp, nil
}

// GetAnalyticsByCode resolves the short code and returns its analytics
func (as *AnalyticsService) GetAnalyticsByCode(ctx context.Context, shortCode string, query model.AnalyticsQuery) (*model.AnalyticsResponse, error) {
	link, err := as.findLink(ctx, shortCode)
	if err != nil {
		return nil, err
	}

	resp, err := as.GetAnalytics(ctx, link.ID, query)
	if err != nil {
		return nil, err
	}
	resp.ShortCode = link.ShortCode
	return resp, nil
}

// RebuildDay recomputes every rollup of the link for the UTC day
func (as *AnalyticsService) RebuildDay(ctx context.Context, shortCode string, day time.Time) error {
	link, err := as.findLink(ctx, shortCode)
	if err != nil {
		return err
	}
	return as.aggregator.Rebuild(ctx, link.ID, day)
}

func (as *AnalyticsService) findLink(ctx context.Context, shortCode string) (*model.Link, error) {
	link, err := as.links.FindByShortCode(ctx, shortCode)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return link, nil
}
