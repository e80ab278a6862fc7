package worker

import (
	"context"
	"errors"
	"fmt"

	"linkpulse/internal/enrich"
	"linkpulse/internal/model"
	"linkpulse/internal/repository"
	"linkpulse/internal/service"

	"github.com/rs/zerolog/log"
)

// Processor turns one raw click event into a stored click and refreshes the
// rollups it belongs to
type Processor struct {
	links      repository.LinkRepositoryInterface
	clicks     repository.ClickRepositoryInterface
	enricher   *enrich.Enricher
	aggregator service.AggregatorInterface
}

// NewProcessor creates a new Processor
func NewProcessor(
	links repository.LinkRepositoryInterface,
	clicks repository.ClickRepositoryInterface,
	enricher *enrich.Enricher,
	aggregator service.AggregatorInterface,
) *Processor {
	return &Processor{
		links:      links,
		clicks:     clicks,
		enricher:   enricher,
		aggregator: aggregator,
	}
}

// Process enriches and records event. It returns the stored click, or nil when
// the click was dropped by the link's bot policy. Errors wrapping
// service.ErrLinkGone are final; any other error may succeed on retry.
func (p *Processor) Process(ctx context.Context, event *model.ClickEvent) (*model.Click, error) {
	link, err := p.links.FindByShortCode(ctx, event.ShortCode)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", service.ErrLinkGone, event.ShortCode)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load link: %w", err)
	}
	// the code was deleted and handed to a new link after the redirect
	if event.LinkID != 0 && link.ID != event.LinkID {
		return nil, fmt.Errorf("%w: %s now names link %d", service.ErrLinkGone, event.ShortCode, link.ID)
	}

	click := p.enricher.Enrich(event, link)
	if click.IsBot && !link.Settings.AllowBots {
		log.Debug().
			Str("event_id", event.EventID).
			Str("short_code", event.ShortCode).
			Msg("Bot click dropped by link policy")
		return nil, nil
	}

	inserted, err := p.clicks.RecordClick(ctx, click)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", service.ErrLinkGone, event.ShortCode)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to record click: %w", err)
	}
	if !inserted {
		log.Debug().Str("event_id", event.EventID).Msg("Click already recorded")
	}

	// a redelivered event still recomputes its buckets
	if err := p.aggregator.Aggregate(ctx, link.ID, click.Timestamp); err != nil {
		logEvent := log.Warn()
		msg := "Failed to aggregate click, rollups marked for repair"
		if errors.Is(err, service.ErrRepairUntracked) {
			logEvent = log.Error()
			msg = "Failed to aggregate click, rollups need a manual rebuild"
		}
		logEvent.
			Err(err).
			Int64("link_id", link.ID).
			Str("event_id", event.EventID).
			Msg(msg)
	}

	return click, nil
}
