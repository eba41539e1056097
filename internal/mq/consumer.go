package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"clickgate/internal/config"
	"clickgate/internal/model"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/rs/zerolog/log"
)

// ClickHandler processes one click event
type ClickHandler func(ctx context.Context, msg *model.ClickMessage) error

// Consumer feeds click events from RocketMQ to a ClickHandler
type Consumer struct {
	client  rocketmq.PushConsumer
	topic   string
	group   string
	handler ClickHandler
	started bool
}

// NewConsumer creates a new RocketMQ consumer
func NewConsumer(cfg *config.RocketMQConfig, handler ClickHandler) (*Consumer, error) {
	c, err := rocketmq.NewPushConsumer(
		consumer.WithNameServer([]string{cfg.NameServer}),
		consumer.WithConsumerModel(consumer.Clustering),
		consumer.WithGroupName(cfg.Group),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create RocketMQ consumer: %w", err)
	}

	return &Consumer{
		client:  c,
		topic:   cfg.Topic,
		group:   cfg.Group,
		handler: handler,
	}, nil
}

// Subscribe subscribes to both click tags and starts consuming
func (c *Consumer) Subscribe() error {
	if c.started {
		return nil
	}

	selector := consumer.MessageSelector{
		Type:       consumer.TAG,
		Expression: TagClick + " || " + TagClickRetry,
	}
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

// consume hands every message of the batch to the handler. Malformed bodies
// are dropped; a handler error asks the broker to redeliver the batch.
func (c *Consumer) consume(ctx context.Context, msgs ...*primitive.MessageExt) (consumer.ConsumeResult, error) {
	for _, msg := range msgs {
		var click model.ClickMessage
		if err := json.Unmarshal(msg.Body, &click); err != nil {
			log.Error().Err(err).Str("msg_id", msg.MsgId).Msg("Dropping malformed click event")
			continue
		}

		log.Debug().
			Str("msg_id", msg.MsgId).
			Str("event_id", click.EventID).
			Str("short_code", click.ShortCode).
			Msg("Processing click event")

		if c.handler == nil {
			continue
		}
		if err := c.handler(ctx, &click); err != nil {
			log.Error().Err(err).Str("msg_id", msg.MsgId).Str("event_id", click.EventID).Msg("Handler failed")
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
