package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"clickgate/internal/config"
	"clickgate/internal/model"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/rs/zerolog/log"
)

// Producer publishes click events to RocketMQ
type Producer struct {
	client rocketmq.Producer
	topic  string
}

// NewProducer creates and starts a RocketMQ producer
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

// SendClick publishes one click event. A nil Producer drops it.
func (p *Producer) SendClick(ctx context.Context, msg *model.ClickMessage) error {
	if p == nil {
		return nil
	}

	m, err := newClickMessage(p.topic, msg)
	if err != nil {
		return err
	}

	result, err := p.client.SendSync(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	log.Debug().
		Str("msg_id", result.MsgID).
		Str("event_id", msg.EventID).
		Str("short_code", msg.ShortCode).
		Bool("retry", msg.Retry).
		Msg("Click event sent to RocketMQ")

	return nil
}

// Close closes the producer
func (p *Producer) Close() error {
	if p != nil && p.client != nil {
		return p.client.Shutdown()
	}
	return nil
}

func newClickMessage(topic string, msg *model.ClickMessage) (*primitive.Message, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	m := primitive.NewMessage(topic, body)
	if msg.Retry {
		m.WithTag(TagClickRetry)
	} else {
		m.WithTag(TagClick)
	}
	m.WithKeys([]string{msg.EventID, msg.ShortCode})
	return m, nil
}
