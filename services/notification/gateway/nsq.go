package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/urbanthreads/internal/pkg/models"
	"github.com/piresc/urbanthreads/internal/pkg/retry"
)

// PublishRetry bounds how long a request waits on a flaky nsqd
var PublishRetry = retry.Config{
	MaxRetries: 2,
	BaseDelay:  50 * time.Millisecond,
	MaxDelay:   250 * time.Millisecond,
	Multiplier: 2,
	Jitter:     true,
}

// JSONPublisher is implemented by the shared NSQ producer
type JSONPublisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// NSQGateway publishes notifications to an NSQ topic for cmd/notifier
type NSQGateway struct {
	producer JSONPublisher
	topic    string
	retrier  *retry.Retrier
}

// NewNSQGateway creates a notification gateway backed by NSQ
func NewNSQGateway(producer JSONPublisher, topic string) *NSQGateway {
	return &NSQGateway{
		producer: producer,
		topic:    topic,
		retrier:  retry.New("nsq.publish."+topic, PublishRetry),
	}
}

// Publish sends n to the notification topic, retrying transient failures
func (g *NSQGateway) Publish(ctx context.Context, n *models.Notification) error {
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.producer.Publish(ctx, g.topic, n)
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s notification %s: %w", n.Type, n.ID, err)
	}
	return nil
}
