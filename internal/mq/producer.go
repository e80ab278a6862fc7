package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"linkpulse/internal/config"
	"linkpulse/internal/model"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/rs/zerolog/log"
)

// ClickEventTag tags click event messages on the topic
const ClickEventTag = "click_event"

// Producer publishes click events to RocketMQ
type Producer struct {
	client rocketmq.Producer
	topic  string
}

// NewProducer creates a new RocketMQ producer
func NewProducer(cfg *config.RocketMQConfig) (*Producer, error) {
	p, err := rocketmq.NewProducer(
		producer.WithNameServer([]string{cfg.NameServer}),
		producer.WithRetry(3),
		producer.WithGroupName(cfg.Group+"_producer"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create RocketMQ producer: %w", err)
	}

	if err := p.Start(); err != nil {
		return nil, fmt.Errorf("failed to start RocketMQ producer: %w", err)
	}

	log.Info().Str("topic", cfg.Topic).Msg("RocketMQ producer started")

	return &Producer{
		client: p,
		topic:  cfg.Topic,
	}, nil
}

// Enqueue sends a click event and returns the broker message id
func (p *Producer) Enqueue(ctx context.Context, event *model.ClickEvent) (string, error) {
	m, err := newClickMessage(p.topic, event)
	if err != nil {
		return "", err
	}

	result, err := p.client.SendSync(ctx, m)
	if err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}
	if result.Status != primitive.SendOK {
		return "", fmt.Errorf("broker did not store click event %s: %s", event.EventID, sendStatusName(result.Status))
	}

	log.Debug().
		Str("msg_id", result.MsgID).
		Str("event_id", event.EventID).
		Str("short_code", event.ShortCode).
		Msg("Click event sent to RocketMQ")

	return result.MsgID, nil
}

// Close closes the producer
func (p *Producer) Close() error {
	if p != nil && p.client != nil {
		return p.client.Shutdown()
	}
	return nil
}

func newClickMessage(topic string, event *model.ClickEvent) (*primitive.Message, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	m := primitive.NewMessage(topic, body)
	m.WithTag(ClickEventTag)
	m.WithKeys([]string{event.EventID, event.ShortCode})
	return m, nil
}

func sendStatusName(status primitive.SendStatus) string {
	switch status {
	case primitive.SendOK:
		return "ok"
	case primitive.SendFlushDiskTimeout:
		return "flush disk timeout"
	case primitive.SendFlushSlaveTimeout:
		return "flush slave timeout"
	case primitive.SendSlaveNotAvailable:
		return "slave not available"
	default:
		return "unknown status"
	}
}
