package mq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"linkpulse/internal/config"
	"linkpulse/internal/model"
	"linkpulse/pkg/util"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ErrJobNotFound is returned when a handle does not name a known job
var ErrJobNotFound = errors.New("job not found")

const (
	fieldPayload   = "payload"
	fieldAttempts  = "attempts"
	fieldLastError = "last_error"
	fieldFailedAt  = "failed_at"

	promoteBatch = 100
)

// promoteScript moves a due handle from the delayed set to the wait list.
// Only the caller that removes the handle pushes it.
var promoteScript = redis.NewScript(`
if redis.call('ZREM', KEYS[1], ARGV[1]) == 1 then
	redis.call('LPUSH', KEYS[2], ARGV[1])
	return 1
end
return 0
`)

// RedisQueue is a reliable queue on Redis lists.
//
// Layout for queue name q:
//
//	q:job:<handle>  hash with payload, attempts, last_error, failed_at
//	q:wait          ready handles, LPUSH in and consumed from the right
//	q:processing    handles owned by a consumer
//	q:delayed       zset of handles scored by their retry time in ms
//	q:dead          handles that exhausted their attempts
type RedisQueue struct {
	client       *redis.Client
	name         string
	maxAttempts  int
	baseBackoff  time.Duration
	pollInterval time.Duration
	now          func() time.Time
}

// NewRedisQueue creates a queue on the given client
func NewRedisQueue(client *redis.Client, cfg *config.QueueConfig) *RedisQueue {
	q := &RedisQueue{
		client:       client,
		name:         cfg.Name,
		maxAttempts:  cfg.MaxAttempts,
		baseBackoff:  cfg.BaseBackoff,
		pollInterval: cfg.PollInterval,
		now:          time.Now,
	}
	if q.name == "" {
		q.name = "clicks"
	}
	if q.maxAttempts < 1 {
		q.maxAttempts = 3
	}
	if q.baseBackoff <= 0 {
		q.baseBackoff = time.Second
	}
	if q.pollInterval <= 0 {
		q.pollInterval = 250 * time.Millisecond
	}
	return q
}

// Enqueue stores the event and makes it ready for consumption
func (q *RedisQueue) Enqueue(ctx context.Context, event *model.ClickEvent) (string, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("failed to marshal event: %w", err)
	}

	handle := util.GenerateUUID()
	_, err = q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, q.jobKey(handle), fieldPayload, payload, fieldAttempts, 0)
		pipe.LPush(ctx, q.waitKey(), handle)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to enqueue event: %w", err)
	}

	log.Debug().
		Str("handle", handle).
		Str("event_id", event.EventID).
		Str("short_code", event.ShortCode).
		Msg("Click event enqueued")

	return handle, nil
}

// Dequeue waits until a job is ready and moves it to processing.
// It returns ctx.Err() once ctx is done.
func (q *RedisQueue) Dequeue(ctx context.Context) (*Delivery, error) {
	for {
		if err := q.promoteDue(ctx); err != nil && ctx.Err() == nil {
			log.Warn().Err(err).Str("queue", q.name).Msg("Failed to promote delayed jobs")
		}

		handle, err := q.client.LMove(ctx, q.waitKey(), q.processingKey(), "RIGHT", "LEFT").Result()
		switch {
		case err == nil:
			d, err := q.load(ctx, handle)
			var decodeErr *DecodeError
			switch {
			case errors.Is(err, ErrJobNotFound):
				// orphan handle, its job hash is gone
				q.client.LRem(ctx, q.processingKey(), 1, handle)
				continue
			case errors.As(err, &decodeErr):
				if err := q.bury(context.WithoutCancel(ctx), handle, decodeErr); err != nil {
					return nil, err
				}
				continue
			case err != nil:
				return nil, err
			}
			return d, nil
		case errors.Is(err, redis.Nil):
		default:
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("failed to dequeue: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(q.pollInterval):
		}
	}
}

// Ack marks the job as done and forgets it
func (q *RedisQueue) Ack(ctx context.Context, handle string) error {
	_, err := q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LRem(ctx, q.processingKey(), 1, handle)
		pipe.Del(ctx, q.jobKey(handle))
		return nil
	})
	return err
}

// Nack records a failed attempt. The job is retried after
// baseBackoff * 2^(attempts-1) or dead-lettered once maxAttempts is reached,
// in which case Nack reports true.
func (q *RedisQueue) Nack(ctx context.Context, handle string, cause error) (bool, error) {
	attempts, err := q.client.HIncrBy(ctx, q.jobKey(handle), fieldAttempts, 1).Result()
	if err != nil {
		return false, fmt.Errorf("failed to count attempt: %w", err)
	}

	reason := ""
	if cause != nil {
		reason = cause.Error()
	}

	if attempts >= int64(q.maxAttempts) {
		_, err = q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, q.jobKey(handle),
				fieldLastError, reason,
				fieldFailedAt, q.now().UTC().Format(time.RFC3339Nano))
			pipe.LRem(ctx, q.processingKey(), 1, handle)
			pipe.LPush(ctx, q.deadKey(), handle)
			return nil
		})
		if err != nil {
			return false, fmt.Errorf("failed to dead-letter job: %w", err)
		}
		log.Error().
			Str("handle", handle).
			Int64("attempts", attempts).
			Str("cause", reason).
			Msg("Click event dead-lettered")
		return true, nil
	}

	readyAt := q.now().Add(q.Backoff(int(attempts)))
	_, err = q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, q.jobKey(handle), fieldLastError, reason)
		pipe.LRem(ctx, q.processingKey(), 1, handle)
		pipe.ZAdd(ctx, q.delayedKey(), redis.Z{Score: float64(readyAt.UnixMilli()), Member: handle})
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to schedule retry: %w", err)
	}
	return false, nil
}

// Backoff returns the delay before the retry following the given attempt
func (q *RedisQueue) Backoff(attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	return q.baseBackoff * time.Duration(1<<(attempts-1))
}

// Release hands an un-acked job back without consuming an attempt
func (q *RedisQueue) Release(ctx context.Context, handle string) error {
	_, err := q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LRem(ctx, q.processingKey(), 1, handle)
		pipe.RPush(ctx, q.waitKey(), handle)
		return nil
	})
	return err
}

// RecoverInFlight moves every job left in processing back to the head of
// the wait list. Call it before any consumer of the queue starts.
func (q *RedisQueue) RecoverInFlight(ctx context.Context) (int, error) {
	recovered := 0
	for {
		_, err := q.client.LMove(ctx, q.processingKey(), q.waitKey(), "RIGHT", "RIGHT").Result()
		if errors.Is(err, redis.Nil) {
			break
		}
		if err != nil {
			return recovered, fmt.Errorf("failed to recover in-flight jobs: %w", err)
		}
		recovered++
	}
	if recovered > 0 {
		log.Warn().Int("count", recovered).Str("queue", q.name).Msg("Recovered in-flight click events")
	}
	return recovered, nil
}

// DeadLetters lists up to limit dead-lettered jobs, most recent first
func (q *RedisQueue) DeadLetters(ctx context.Context, limit int) ([]DeadLetter, error) {
	if limit <= 0 {
		limit = 100
	}
	handles, err := q.client.LRange(ctx, q.deadKey(), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	letters := make([]DeadLetter, 0, len(handles))
	for _, handle := range handles {
		fields, err := q.client.HGetAll(ctx, q.jobKey(handle)).Result()
		if err != nil {
			return nil, err
		}
		if len(fields) == 0 {
			continue
		}
		letters = append(letters, decodeDeadLetter(handle, fields))
	}
	return letters, nil
}

// RequeueDeadLetter gives a dead-lettered job a fresh set of attempts
func (q *RedisQueue) RequeueDeadLetter(ctx context.Context, handle string) error {
	removed, err := q.client.LRem(ctx, q.deadKey(), 1, handle).Result()
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrJobNotFound
	}

	_, err = q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, q.jobKey(handle), fieldAttempts, 0)
		pipe.HDel(ctx, q.jobKey(handle), fieldLastError, fieldFailedAt)
		pipe.LPush(ctx, q.waitKey(), handle)
		return nil
	})
	return err
}

// promoteDue moves delayed jobs whose retry time has passed to the wait list
func (q *RedisQueue) promoteDue(ctx context.Context) error {
	due, err := q.client.ZRangeByScore(ctx, q.delayedKey(), &redis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(q.now().UnixMilli(), 10),
		Count: promoteBatch,
	}).Result()
	if err != nil {
		return err
	}

	keys := []string{q.delayedKey(), q.waitKey()}
	for _, handle := range due {
		if err := promoteScript.Run(ctx, q.client, keys, handle).Err(); err != nil {
			return err
		}
	}
	return nil
}

// bury dead-letters a job that can never be decoded
func (q *RedisQueue) bury(ctx context.Context, handle string, cause error) error {
	_, err := q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, q.jobKey(handle),
			fieldLastError, cause.Error(),
			fieldFailedAt, q.now().UTC().Format(time.RFC3339Nano))
		pipe.LRem(ctx, q.processingKey(), 1, handle)
		pipe.LPush(ctx, q.deadKey(), handle)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to dead-letter undecodable job %s: %w", handle, err)
	}
	log.Error().
		Err(cause).
		Str("handle", handle).
		Str("queue", q.name).
		Msg("Undecodable click event dead-lettered")
	return nil
}

func (q *RedisQueue) load(ctx context.Context, handle string) (*Delivery, error) {
	fields, err := q.client.HGetAll(ctx, q.jobKey(handle)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ErrJobNotFound
	}

	var event model.ClickEvent
	if err := json.Unmarshal([]byte(fields[fieldPayload]), &event); err != nil {
		return nil, &DecodeError{Handle: handle, Err: err}
	}
	attempts, _ := strconv.Atoi(fields[fieldAttempts])

	return &Delivery{Handle: handle, Event: &event, Attempts: attempts}, nil
}

// decodeDeadLetter leaves Event nil when the payload is unreadable
func decodeDeadLetter(handle string, fields map[string]string) DeadLetter {
	attempts, _ := strconv.Atoi(fields[fieldAttempts])
	failedAt, _ := time.Parse(time.RFC3339Nano, fields[fieldFailedAt])
	letter := DeadLetter{
		Handle:    handle,
		Attempts:  attempts,
		LastError: fields[fieldLastError],
		FailedAt:  failedAt,
	}

	var event model.ClickEvent
	if err := json.Unmarshal([]byte(fields[fieldPayload]), &event); err == nil {
		letter.Event = &event
	}
	return letter
}

func (q *RedisQueue) jobKey(handle string) string {
	return q.name + ":job:" + handle
}

func (q *RedisQueue) waitKey() string {
	return q.name + ":wait"
}

func (q *RedisQueue) processingKey() string {
	return q.name + ":processing"
}

func (q *RedisQueue) delayedKey() string {
	return q.name + ":delayed"
}

func (q *RedisQueue) deadKey() string {
	return q.name + ":dead"
}
