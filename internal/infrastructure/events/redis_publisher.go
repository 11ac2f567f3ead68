// Package events publishes lifecycle events for other services (dashboards,
// notification workers) to consume.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"supplyops/internal/domain/entities"
	"supplyops/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

var _ interfaces.IEventPublisher = (*RedisPublisher)(nil)

const DefaultChannel = "supplyops.lifecycle"

// RedisPublisher sends each event as JSON on a Redis pub/sub channel.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, event entities.LifecycleEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal lifecycle event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", p.channel, err)
	}
	return nil
}
