package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"linkpulse/internal/config"
	"linkpulse/internal/metrics"
	"linkpulse/internal/mq"
	"linkpulse/internal/model"
	"linkpulse/internal/service"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	repairBatch     = 100
	dequeueErrPause = time.Second
)

// Repairer rebuilds rollup buckets that were marked inconsistent
type Repairer interface {
	RepairPending(ctx context.Context, batch int64) (int, error)
}

// Pool runs a fixed number of consumers over a queue. Each consumer owns one
// event at a time and settles it with Ack or Nack once processed.
type Pool struct {
	queue          mq.Queue
	processor      *Processor
	repairer       Repairer
	concurrency    int
	limiter        *rate.Limiter
	processTimeout time.Duration
	repairInterval time.Duration
}

// NewPool creates a worker pool. queue may be nil when events are pushed
// through Handle instead; repairer may be nil to disable background repairs.
func NewPool(queue mq.Queue, processor *Processor, repairer Repairer, cfg *config.WorkerConfig) *Pool {
	p := &Pool{
		queue:          queue,
		processor:      processor,
		repairer:       repairer,
		concurrency:    cfg.Concurrency,
		limiter:        rate.NewLimiter(rate.Inf, 0),
		processTimeout: cfg.ProcessTimeout,
		repairInterval: cfg.RepairInterval,
	}
	if p.concurrency < 1 {
		p.concurrency = 10
	}
	if cfg.MaxPerSecond > 0 {
		burst := int(cfg.MaxPerSecond)
		if burst < 1 {
			burst = 1
		}
		p.limiter = rate.NewLimiter(rate.Limit(cfg.MaxPerSecond), burst)
	}
	if p.processTimeout <= 0 {
		p.processTimeout = 30 * time.Second
	}
	return p
}

// Run consumes the queue until ctx is done. Events already admitted are
// processed to completion; the rest stay in the queue.
func (p *Pool) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	if p.queue != nil {
		for i := 0; i < p.concurrency; i++ {
			id := i
			g.Go(func() error {
				p.consume(gctx, id)
				return nil
			})
		}
	}

	if p.repairer != nil && p.repairInterval > 0 {
		g.Go(func() error {
			p.repairLoop(gctx)
			return nil
		})
	}

	log.Info().Int("concurrency", p.concurrency).Msg("Worker pool started")
	err := g.Wait()
	log.Info().Msg("Worker pool stopped")
	return err
}

func (p *Pool) consume(ctx context.Context, id int) {
	for {
		d, err := p.queue.Dequeue(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Error().Err(err).Int("worker", id).Msg("Failed to dequeue click event")
			select {
			case <-ctx.Done():
				return
			case <-time.After(dequeueErrPause):
			}
			continue
		}

		if err := p.limiter.Wait(ctx); err != nil {
			p.release(d)
			return
		}

		p.settle(context.WithoutCancel(ctx), d)
	}
}

// settle processes one delivery and acknowledges or rejects it
func (p *Pool) settle(ctx context.Context, d *mq.Delivery) {
	err := p.process(ctx, d.Event)
	if err == nil {
		if err := p.queue.Ack(ctx, d.Handle); err != nil {
			log.Error().Err(err).Str("handle", d.Handle).Msg("Failed to ack click event")
		}
		return
	}

	dead, nackErr := p.queue.Nack(ctx, d.Handle, err)
	if nackErr != nil {
		log.Error().Err(nackErr).Str("handle", d.Handle).Msg("Failed to nack click event")
		return
	}
	if dead {
		metrics.EventsProcessed.WithLabelValues("dead").Inc()
		return
	}
	log.Warn().
		Err(err).
		Str("handle", d.Handle).
		Int("attempt", d.Attempts+1).
		Msg("Click event processing failed, retry scheduled")
}

// release hands an un-admitted delivery back to the queue
func (p *Pool) release(d *mq.Delivery) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := p.queue.Release(ctx, d.Handle); err != nil {
		log.Error().Err(err).Str("handle", d.Handle).Msg("Failed to release click event")
	}
}

// Handle admits a pushed event under the pool's rate limit and processes it.
// It returns an error only when the event should be delivered again; events
// of deleted links are discarded.
func (p *Pool) Handle(ctx context.Context, event *model.ClickEvent) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("click event not admitted: %w", err)
	}
	return p.process(ctx, event)
}

func (p *Pool) process(ctx context.Context, event *model.ClickEvent) error {
	metrics.InFlight.Inc()
	defer metrics.InFlight.Dec()

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, p.processTimeout)
	defer cancel()

	click, err := p.processor.Process(ctx, event)
	metrics.ProcessingDuration.Observe(time.Since(start).Seconds())

	switch {
	case errors.Is(err, service.ErrLinkGone):
		metrics.EventsProcessed.WithLabelValues("gone").Inc()
		log.Warn().Err(err).Str("event_id", event.EventID).Msg("Discarding click event of a deleted link")
		return nil
	case err != nil:
		metrics.EventsProcessed.WithLabelValues("retry").Inc()
		return err
	case click == nil:
		metrics.EventsProcessed.WithLabelValues("dropped").Inc()
		return nil
	default:
		metrics.EventsProcessed.WithLabelValues("ok").Inc()
		return nil
	}
}

func (p *Pool) repairLoop(ctx context.Context) {
	ticker := time.NewTicker(p.repairInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := p.repairer.RepairPending(ctx, repairBatch)
			if err != nil {
				log.Error().Err(err).Msg("Rollup repair pass failed")
				continue
			}
			if n > 0 {
				log.Info().Int("repaired", n).Msg("Rollup repair pass done")
			}
		}
	}
}
