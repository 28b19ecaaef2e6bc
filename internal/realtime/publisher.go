// Package realtime publishes persisted notifications on a Redis pub/sub
// channel. Live-delivery gateways subscribe to the channel and push to
// connected clients; this side only publishes.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/stayloop/notify/internal/model"
)

// DefaultChannel is the logical channel gateways subscribe to.
const DefaultChannel = "notifications"

type redisPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// Publisher sends notifications to a fixed channel.
type Publisher struct {
	rdb     redisPublisher
	channel string
}

// NewPublisher creates a publisher on the given channel, falling back to
// DefaultChannel when none is configured.
func NewPublisher(rdb redisPublisher, channel string) *Publisher {
	if channel == "" {
		channel = DefaultChannel
	}

	return &Publisher{rdb: rdb, channel: channel}
}

// Publish marshals the notification, including its generated id, and
// publishes it on the channel.
func (p *Publisher) Publish(ctx context.Context, n model.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	if err := p.rdb.Publish(ctx, p.channel, body).Err(); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}

	return nil
}
