package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"linkpulse/internal/config"
	"linkpulse/internal/metrics"
	"linkpulse/internal/model"
	"linkpulse/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// lockStripes is the number of per-link recompute locks
const lockStripes = 64

// Aggregator recomputes hourly and daily rollups from the stored clicks.
// Every recompute reads the full bucket, so running it twice or out of
// order yields the same rollup. Recomputes of one link are serialized so a
// slower recompute cannot overwrite a fresher one.
type Aggregator struct {
	clicks      repository.ClickRepositoryInterface
	repairs     RepairTrackerInterface
	maxAttempts int
	baseBackoff time.Duration
	locks       [lockStripes]sync.Mutex
}

// NewAggregator creates a new Aggregator. repairs may be nil, in which case
// exhausted buckets are only logged.
func NewAggregator(
	clicks repository.ClickRepositoryInterface,
	repairs RepairTrackerInterface,
	cfg *config.AggregationConfig,
) *Aggregator {
	a := &Aggregator{
		clicks:      clicks,
		repairs:     repairs,
		maxAttempts: cfg.MaxAttempts,
		baseBackoff: cfg.BaseBackoff,
	}
	if a.maxAttempts < 1 {
		a.maxAttempts = 3
	}
	if a.baseBackoff <= 0 {
		a.baseBackoff = 200 * time.Millisecond
	}
	return a
}

// Aggregate recomputes the hour and the day containing ts. The two buckets
// are retried independently; a bucket that keeps failing is marked for repair.
func (a *Aggregator) Aggregate(ctx context.Context, linkID int64, ts time.Time) error {
	unlock := a.lock(linkID)
	defer unlock()

	hour := model.HourBucket(ts)
	day := model.DayBucket(ts)

	var errs []error
	if err := a.withRetry(ctx, func() error { return a.recomputeHour(ctx, linkID, hour) }); err != nil {
		errs = append(errs, fmt.Errorf("hourly rollup %s: %w", hour.Format(time.RFC3339), err))
	}
	if err := a.withRetry(ctx, func() error { return a.recomputeDay(ctx, linkID, day) }); err != nil {
		errs = append(errs, fmt.Errorf("daily rollup %s: %w", day.Format(model.DateLayout), err))
	}

	if len(errs) == 0 {
		return nil
	}
	err := errors.Join(errs...)
	if trackErr := a.markForRepair(ctx, linkID, day, err); trackErr != nil {
		return errors.Join(err, trackErr)
	}
	return err
}

// Rebuild recomputes all 24 hourly buckets and the daily bucket of day
func (a *Aggregator) Rebuild(ctx context.Context, linkID int64, day time.Time) error {
	unlock := a.lock(linkID)
	defer unlock()

	start := model.DayBucket(day)

	var errs []error
	for h := 0; h < 24; h++ {
		hour := start.Add(time.Duration(h) * time.Hour)
		if err := a.withRetry(ctx, func() error { return a.recomputeHour(ctx, linkID, hour) }); err != nil {
			errs = append(errs, fmt.Errorf("hourly rollup %s: %w", hour.Format(time.RFC3339), err))
		}
	}
	if err := a.withRetry(ctx, func() error { return a.recomputeDay(ctx, linkID, start) }); err != nil {
		errs = append(errs, fmt.Errorf("daily rollup %s: %w", start.Format(model.DateLayout), err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	log.Info().Int64("link_id", linkID).Str("date", start.Format(model.DateLayout)).Msg("Rollups rebuilt")
	return nil
}

// RepairPending rebuilds up to batch buckets marked for repair. Buckets that
// fail again are put back.
func (a *Aggregator) RepairPending(ctx context.Context, batch int64) (int, error) {
	if a.repairs == nil {
		return 0, nil
	}

	members, err := a.repairs.PopRepairs(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("failed to read repair set: %w", err)
	}

	repaired := 0
	for _, member := range members {
		linkID, day, err := parseRepairMember(member)
		if err != nil {
			log.Error().Err(err).Str("member", member).Msg("Dropping malformed repair entry")
			continue
		}
		if err := a.Rebuild(ctx, linkID, day); err != nil {
			log.Warn().Err(err).Str("member", member).Msg("Rollup repair failed, will retry")
			if markErr := a.repairs.MarkForRepair(ctx, member); markErr != nil {
				log.Error().Err(markErr).Str("member", member).Msg("Failed to re-mark rollup for repair")
			}
			continue
		}
		repaired++
	}
	return repaired, nil
}

func (a *Aggregator) lock(linkID int64) func() {
	m := &a.locks[uint64(linkID)%lockStripes]
	m.Lock()
	return m.Unlock
}

func (a *Aggregator) recomputeHour(ctx context.Context, linkID int64, hour time.Time) error {
	count, err := a.clicks.CountClicks(ctx, linkID, hour, hour.Add(time.Hour), true)
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	return a.clicks.UpsertHourlyRollup(ctx, &model.HourlyRollup{
		LinkID:      linkID,
		Hour:        hour,
		TotalClicks: count,
	})
}

func (a *Aggregator) recomputeDay(ctx context.Context, linkID int64, day time.Time) error {
	clicks, err := a.clicks.ListClicks(ctx, linkID, day, day.AddDate(0, 0, 1), true)
	if err != nil {
		return err
	}
	if len(clicks) == 0 {
		return nil
	}
	return a.clicks.UpsertDailyRollup(ctx, SummarizeDay(linkID, day, clicks))
}

// SummarizeDay builds the daily rollup of clicks, which must be ordered by
// timestamp. Top list ties keep the first-seen value first.
func SummarizeDay(linkID int64, day time.Time, clicks []model.Click) *model.DailyRollup {
	byHour := make([]int64, 24)
	for _, c := range clicks {
		byHour[c.Timestamp.UTC().Hour()]++
	}

	hashedIPs := lo.Map(clicks, func(c model.Click, _ int) string { return c.HashedIP })

	return &model.DailyRollup{
		LinkID:       linkID,
		Date:         model.DayBucket(day).Format(model.DateLayout),
		TotalClicks:  int64(len(clicks)),
		UniqueClicks: int64(len(lo.Uniq(lo.Compact(hashedIPs)))),
		TopCountries: topN(lo.Map(clicks, func(c model.Click, _ int) string { return c.Geo.Country }), model.TopListSize),
		TopBrowsers:  topN(lo.Map(clicks, func(c model.Click, _ int) string { return c.Device.Browser }), model.TopListSize),
		TopDevices:   topN(lo.Map(clicks, func(c model.Click, _ int) string { return c.Device.Type }), model.TopListSize),
		ClicksByHour: byHour,
	}
}

func topN(values []string, n int) []model.CountStat {
	values = lo.Compact(values)
	counts := lo.CountValues(values)

	stats := lo.Map(lo.Uniq(values), func(name string, _ int) model.CountStat {
		return model.CountStat{Name: name, Count: int64(counts[name])}
	})
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Count > stats[j].Count })

	if len(stats) > n {
		stats = stats[:n]
	}
	return stats
}

func (a *Aggregator) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if attempt == a.maxAttempts {
			break
		}

		backoff := a.baseBackoff * time.Duration(1<<(attempt-1))
		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(backoff):
		}
	}
	return fmt.Errorf("after %d attempts: %w", a.maxAttempts, err)
}

// markForRepair records the day of linkID for the repair loop. It returns an
// ErrRepairUntracked error when the day could not be recorded.
func (a *Aggregator) markForRepair(ctx context.Context, linkID int64, day time.Time, cause error) error {
	metrics.AggregationFailures.Inc()

	member := repairMember(linkID, day)
	if a.repairs == nil {
		log.Error().
			Err(cause).
			Str("member", member).
			Msg("Rollups inconsistent with clicks, no repair tracker configured")
		return fmt.Errorf("%w: no tracker", ErrRepairUntracked)
	}
	if err := a.repairs.MarkForRepair(context.WithoutCancel(ctx), member); err != nil {
		log.Error().
			Err(cause).
			AnErr("track_error", err).
			Str("member", member).
			Msg("Rollups inconsistent with clicks, repair tracker unavailable")
		return fmt.Errorf("%w: %v", ErrRepairUntracked, err)
	}

	log.Warn().
		Err(cause).
		Str("member", member).
		Msg("Rollups inconsistent with clicks, marked for repair")
	return nil
}

func repairMember(linkID int64, day time.Time) string {
	return strconv.FormatInt(linkID, 10) + ":" + model.DayBucket(day).Format(model.DateLayout)
}

func parseRepairMember(member string) (int64, time.Time, error) {
	idPart, datePart, ok := strings.Cut(member, ":")
	if !ok {
		return 0, time.Time{}, fmt.Errorf("missing separator in %q", member)
	}
	linkID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("invalid link id: %w", err)
	}
	day, err := time.Parse(model.DateLayout, datePart)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("invalid date: %w", err)
	}
	return linkID, day, nil
}
