package mq

import (
	"context"

	"linkpulse/internal/model"
)

// Publisher accepts click events for asynchronous processing
type Publisher interface {
	Enqueue(ctx context.Context, event *model.ClickEvent) (string, error)
}

// Queue is a durable at-least-once click event channel
type Queue interface {
	Publisher
	Dequeue(ctx context.Context) (*Delivery, error)
	Ack(ctx context.Context, handle string) error
	Nack(ctx context.Context, handle string, cause error) (bool, error)
	Release(ctx context.Context, handle string) error
	RecoverInFlight(ctx context.Context) (int, error)
	DeadLetters(ctx context.Context, limit int) ([]DeadLetter, error)
	RequeueDeadLetter(ctx context.Context, handle string) error
}

// ConsumerInterface defines the interface for push-based consumption
type ConsumerInterface interface {
	Subscribe() error
	Close() error
}

var (
	_ Queue             = (*RedisQueue)(nil)
	_ Publisher         = (*Producer)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
