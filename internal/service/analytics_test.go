package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"linkpulse/internal/mocks"
	"linkpulse/internal/model"
	"linkpulse/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type analyticsFixture struct {
	links      *mocks.MockLinkRepositoryInterface
	clicks     *mocks.MockClickRepositoryInterface
	aggregator *mocks.MockAggregatorInterface
	svc        *AnalyticsService
}

func newAnalyticsFixture(t *testing.T) *analyticsFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &analyticsFixture{
		links:      mocks.NewMockLinkRepositoryInterface(ctrl),
		clicks:     mocks.NewMockClickRepositoryInterface(ctrl),
		aggregator: mocks.NewMockAggregatorInterface(ctrl),
	}
	f.svc = NewAnalyticsService(f.links, f.clicks, f.aggregator)
	return f
}

func TestAnalyticsService_GetAnalytics(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()
	query := model.AnalyticsQuery{
		From: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	daily := []model.DailyRollup{{LinkID: 7, Date: "2024-03-10", TotalClicks: 3}}
	hourly := []model.HourlyRollup{{LinkID: 7, Hour: time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC), TotalClicks: 3}}
	recent := []model.Click{{LinkID: 7, EventID: "e1"}}

	f.links.EXPECT().GetClickCount(gomock.Any(), int64(7)).Return(int64(4), nil)
	f.clicks.EXPECT().GetDailyRollups(gomock.Any(), int64(7), query.From, query.To).Return(daily, nil)
	f.clicks.EXPECT().GetHourlyRollups(gomock.Any(), int64(7), query.From, query.To).Return(hourly, nil)
	f.clicks.EXPECT().GetRecentClicks(gomock.Any(), int64(7), 100).Return(recent, nil)

	resp, err := f.svc.GetAnalytics(ctx, 7, query)
	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.TotalClicks)
	assert.Equal(t, daily, resp.DailyRollups)
	assert.Equal(t, hourly, resp.HourlyRollups)
	assert.Equal(t, recent, resp.RecentClicks)
}

func TestAnalyticsService_GetAnalytics_NoClicks(t *testing.T) {
	f := newAnalyticsFixture(t)

	f.links.EXPECT().GetClickCount(gomock.Any(), int64(7)).Return(int64(0), nil)
	f.clicks.EXPECT().GetDailyRollups(gomock.Any(), int64(7), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.clicks.EXPECT().GetHourlyRollups(gomock.Any(), int64(7), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.clicks.EXPECT().GetRecentClicks(gomock.Any(), int64(7), 100).Return(nil, nil)

	resp, err := f.svc.GetAnalytics(context.Background(), 7, model.AnalyticsQuery{})
	require.NoError(t, err)
	assert.Zero(t, resp.TotalClicks)
	assert.NotNil(t, resp.DailyRollups)
	assert.NotNil(t, resp.HourlyRollups)
	assert.NotNil(t, resp.RecentClicks)
}

func TestAnalyticsService_GetAnalytics_Errors(t *testing.T) {
	t.Run("unknown link", func(t *testing.T) {
		f := newAnalyticsFixture(t)
		f.links.EXPECT().GetClickCount(gomock.Any(), int64(7)).Return(int64(0), repository.ErrNotFound)

		_, err := f.svc.GetAnalytics(context.Background(), 7, model.AnalyticsQuery{})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rollup read fails", func(t *testing.T) {
		f := newAnalyticsFixture(t)
		f.links.EXPECT().GetClickCount(gomock.Any(), int64(7)).Return(int64(1), nil)
		f.clicks.EXPECT().GetDailyRollups(gomock.Any(), int64(7), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := f.svc.GetAnalytics(context.Background(), 7, model.AnalyticsQuery{})
		assert.Error(t, err)
	})

	t.Run("recent clicks failure is tolerated", func(t *testing.T) {
		f := newAnalyticsFixture(t)
		f.links.EXPECT().GetClickCount(gomock.Any(), int64(7)).Return(int64(1), nil)
		f.clicks.EXPECT().GetDailyRollups(gomock.Any(), int64(7), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.clicks.EXPECT().GetHourlyRollups(gomock.Any(), int64(7), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.clicks.EXPECT().GetRecentClicks(gomock.Any(), int64(7), 100).Return(nil, errors.New("timeout"))

		resp, err := f.svc.GetAnalytics(context.Background(), 7, model.AnalyticsQuery{})
		require.NoError(t, err)
		assert.Empty(t, resp.RecentClicks)
	})
}

func TestAnalyticsService_GetAnalyticsByCode(t *testing.T) {
	f := newAnalyticsFixture(t)

	f.links.EXPECT().FindByShortCode(gomock.Any(), "abc1234").Return(&model.Link{ID: 7, ShortCode: "abc1234"}, nil)
	f.links.EXPECT().GetClickCount(gomock.Any(), int64(7)).Return(int64(2), nil)
	f.clicks.EXPECT().GetDailyRollups(gomock.Any(), int64(7), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.clicks.EXPECT().GetHourlyRollups(gomock.Any(), int64(7), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.clicks.EXPECT().GetRecentClicks(gomock.Any(), int64(7), 100).Return(nil, nil)

	resp, err := f.svc.GetAnalyticsByCode(context.Background(), "abc1234", model.AnalyticsQuery{})
	require.NoError(t, err)
	assert.Equal(t, "abc1234", resp.ShortCode)
	assert.Equal(t, int64(2), resp.TotalClicks)
}

func TestAnalyticsService_GetAnalyticsByCode_NotFound(t *testing.T) {
	f := newAnalyticsFixture(t)
	f.links.EXPECT().FindByShortCode(gomock.Any(), "nope").Return(nil, repository.ErrNotFound)

	_, err := f.svc.GetAnalyticsByCode(context.Background(), "nope", model.AnalyticsQuery{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnalyticsService_RebuildDay(t *testing.T) {
	f := newAnalyticsFixture(t)
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	f.links.EXPECT().FindByShortCode(gomock.Any(), "abc1234").Return(&model.Link{ID: 7, ShortCode: "abc1234"}, nil)
	f.aggregator.EXPECT().Rebuild(gomock.Any(), int64(7), day).Return(nil)

	assert.NoError(t, f.svc.RebuildDay(context.Background(), "abc1234", day))
}
