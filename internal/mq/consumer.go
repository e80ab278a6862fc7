package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"linkpulse/internal/config"
	"linkpulse/internal/model"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/rs/zerolog/log"
)

// ClickHandler processes one click event. A returned error asks the broker
// to redeliver the message later.
type ClickHandler func(ctx context.Context, event *model.ClickEvent) error

// Consumer handles click event consumption from RocketMQ. The broker
// redelivers a failed message up to maxAttempts times in total and then
// routes it to the %DLQ% topic of the group.
type Consumer struct {
	client      rocketmq.PushConsumer
	topic       string
	group       string
	handler     ClickHandler
	maxAttempts int
	started     bool
}

// NewConsumer creates a new RocketMQ consumer that runs handler on at most
// concurrency goroutines
func NewConsumer(cfg *config.RocketMQConfig, maxAttempts, concurrency int, handler ClickHandler) (*Consumer, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if concurrency < 1 {
		concurrency = 1
	}

	c, err := rocketmq.NewPushConsumer(
		consumer.WithNameServer([]string{cfg.NameServer}),
		consumer.WithConsumerModel(consumer.Clustering),
		consumer.WithGroupName(cfg.Group),
		consumer.WithConsumeMessageBatchMaxSize(1),
		consumer.WithMaxReconsumeTimes(int32(maxAttempts-1)),
		consumer.WithConsumeGoroutineNums(concurrency),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create RocketMQ consumer: %w", err)
	}

	return &Consumer{
		client:      c,
		topic:       cfg.Topic,
		group:       cfg.Group,
		handler:     handler,
		maxAttempts: maxAttempts,
	}, nil
}

// Subscribe subscribes to the topic and starts consuming messages
func (c *Consumer) Subscribe() error {
	if c.started {
		return nil
	}

	selector := consumer.MessageSelector{Type: consumer.TAG, Expression: ClickEventTag}
	if err := c.client.Subscribe(c.topic, selector, c.consume); err != nil {
		return fmt.Errorf("failed to subscribe to topic: %w", err)
	}

	if err := c.client.Start(); err != nil {
		return fmt.Errorf("failed to start consumer: %w", err)
	}

	c.started = true
	log.Info().Str("topic", c.topic).Str("group", c.group).Msg("RocketMQ consumer started")

	return nil
}

func (c *Consumer) consume(ctx context.Context, msgs ...*primitive.MessageExt) (consumer.ConsumeResult, error) {
	for _, msg := range msgs {
		var event model.ClickEvent
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			// a malformed body never becomes readable, drop it
			log.Error().Err(err).Str("msg_id", msg.MsgId).Msg("Failed to unmarshal click event")
			continue
		}

		log.Debug().
			Str("msg_id", msg.MsgId).
			Str("event_id", event.EventID).
			Int32("reconsume_times", msg.ReconsumeTimes).
			Msg("Processing click event")

		if c.handler == nil {
			continue
		}
		if err := c.handler(ctx, &event); err != nil {
			attempt := int(msg.ReconsumeTimes) + 1
			logEvent := log.Warn()
			if attempt >= c.maxAttempts {
				logEvent = log.Error()
			}
			logEvent.Err(err).
				Str("msg_id", msg.MsgId).
				Str("event_id", event.EventID).
				Int("attempt", attempt).
				Msg("Click handler failed")
			return consumer.ConsumeRetryLater, err
		}
	}
	return consumer.ConsumeSuccess, nil
}

// Close closes the consumer
func (c *Consumer) Close() error {
	if c != nil && c.client != nil {
		return c.client.Shutdown()
	}
	return nil
}
