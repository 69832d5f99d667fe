// Package events publishes state change notifications for the milk bucket and
// the game board on a redis pub/sub channel.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Channel is the pub/sub channel every update is published on.
const Channel = "northpole-updates"

// ErrNilPublisher is returned when a RedisPublisher pointer is nil or uninitialized.
var ErrNilPublisher = errors.New("redis publisher is nil")

// Update describes a single state change.
type Update struct {
	ID     string    `json:"id"`
	Entity string    `json:"entity"`
	Action string    `json:"action"`
	State  string    `json:"state,omitempty"`
	At     time.Time `json:"at"`
}

// Publisher sends updates to subscribers.
type Publisher interface {
	Publish(ctx context.Context, entity, action, state string) error
}

// RedisPublisher wraps a redis client.
type RedisPublisher struct {
	Client *redis.Client
}

// InitRedis connects to addr and returns a RedisPublisher.
func InitRedis(ctx context.Context, addr string) (*RedisPublisher, error) {
	rp := &RedisPublisher{
		Client: redis.NewClient(&redis.Options{Addr: addr}),
	}

	if err := redisotel.InstrumentTracing(rp.Client); err != nil {
		return nil, fmt.Errorf("failed to instrument redis tracing: %w", err)
	}

	if err := rp.Client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	zap.L().Info("Connected to Redis", zap.String("addr", addr))
	return rp, nil
}

// Publish encodes an Update and publishes it on Channel.
func (r *RedisPublisher) Publish(ctx context.Context, entity, action, state string) error {
	if r == nil || r.Client == nil {
		return ErrNilPublisher
	}
	payload, err := json.Marshal(Update{
		ID:     uuid.New().String(),
		Entity: entity,
		Action: action,
		State:  state,
		At:     time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal update: %w", err)
	}
	return r.Client.Publish(ctx, Channel, payload).Err()
}

// Close shuts down the Redis client.
func (r *RedisPublisher) Close() {
	if r != nil && r.Client != nil {
		if err := r.Client.Close(); err != nil {
			zap.L().Error("redis close", zap.Error(err))
		}
	}
}
