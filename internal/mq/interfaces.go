package mq

import (
	"context"

	"clickgate/internal/model"
)

// ProducerInterface defines the interface for message production
type ProducerInterface interface {
	SendClick(ctx context.Context, msg *model.ClickMessage) error
	Close() error
}

// ConsumerInterface defines the interface for message consumption
type ConsumerInterface interface {
	Subscribe() error
	Close() error
}
