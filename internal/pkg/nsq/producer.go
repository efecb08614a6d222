package nsq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/urbanthreads/internal/pkg/logger"
)

// Publisher is the subset of *nsq.Producer used by Producer
type Publisher interface {
	Publish(topic string, body []byte) error
	Ping() error
	Stop()
}

// Producer handles publishing JSON messages to NSQ topics
type Producer struct {
	producer Publisher
	address  string
}

// NewProducer creates a new NSQ producer and verifies the daemon is reachable
func NewProducer(address string) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	producer.SetLoggerLevel(nsq.LogLevelWarning)

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return &Producer{producer: producer, address: address}, nil
}

// NewProducerWithPublisher wraps an existing publisher, mainly for tests
func NewProducerWithPublisher(p Publisher, address string) *Producer {
	return &Producer{producer: p, address: address}
}

// Publish marshals message as JSON and sends it to topic
func (p *Producer) Publish(ctx context.Context, topic string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.producer.Publish(topic, msgBytes); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logger.DebugCtx(ctx, "Published message",
		logger.String("topic", topic),
		logger.Int("bytes", len(msgBytes)))
	return nil
}

// Ping checks connectivity to the daemon
func (p *Producer) Ping() error {
	return p.producer.Ping()
}

// Address returns the nsqd address the producer publishes to
func (p *Producer) Address() string {
	return p.address
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}
