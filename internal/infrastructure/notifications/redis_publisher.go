package notifications

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ventixe/accountsvc/domain"
)

// RedisPublisherImpl implements domain.EventPublisher on a Redis stream.
// Delivery is at-most-once; consumers read the stream independently.
type RedisPublisherImpl struct {
	client *redis.Client
	stream string
}

// NewRedisPublisher creates a new Redis stream event publisher
func NewRedisPublisher(client *redis.Client, stream string) domain.EventPublisher {
	return &RedisPublisherImpl{
		client: client,
		stream: stream,
	}
}

// Publish implements domain.EventPublisher
func (p *RedisPublisherImpl) Publish(ctx context.Context, event domain.AccountCreatedEvent) error {
	err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{
			"event":      "account_created",
			"account_id": event.AccountID,
			"email":      event.Email,
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to publish account created event: %w", err)
	}
	return nil
}
