// Package bus is the Redis-backed event fabric: pub/sub channels for chat,
// user, terminal, and runner traffic, plus the TTL keys that carry presence,
// abort signals, interrupt state, and sandbox bindings.
//
// Delivery is at-most-once. The bus is not a durable log; durable state lives
// in Postgres and partial content survives worker crashes through the
// periodic DB flush, not through replay.
package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/agentloom/loom/pkg/config"
)

// Bus wraps a Redis client with the platform's channel and key conventions.
type Bus struct {
	rdb    *redis.Client
	logger *slog.Logger
}

// New connects to Redis and verifies the connection.
func New(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*Bus, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &Bus{
		rdb:    rdb,
		logger: logger.With("component", "bus"),
	}, nil
}

// NewFromClient wraps an existing client (useful for testing).
func NewFromClient(rdb *redis.Client, logger *slog.Logger) *Bus {
	return &Bus{rdb: rdb, logger: logger.With("component", "bus")}
}

// Close releases the underlying connection pool.
func (b *Bus) Close() error {
	return b.rdb.Close()
}

// Publish JSON-encodes payload and publishes it on channel. Missing
// subscribers are not an error.
func (b *Bus) Publish(ctx context.Context, channel string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload for %s: %w", channel, err)
	}
	if err := b.rdb.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", channel, err)
	}
	return nil
}

// PublishRaw publishes pre-encoded bytes on channel.
func (b *Bus) PublishRaw(ctx context.Context, channel string, data []byte) error {
	if err := b.rdb.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", channel, err)
	}
	return nil
}

// Subscription delivers raw messages from one or more channels until closed.
type Subscription struct {
	pubsub *redis.PubSub
	ch     chan []byte
	done   chan struct{}
}

// Messages returns the delivery channel. It is closed when the subscription
// ends.
func (s *Subscription) Messages() <-chan []byte {
	return s.ch
}

// Close unsubscribes and stops the pump goroutine.
func (s *Subscription) Close() error {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	return s.pubsub.Close()
}

// Subscribe opens a subscription on the given channels and starts a pump
// goroutine that forwards payloads until Close is called or ctx ends.
func (b *Bus) Subscribe(ctx context.Context, channels ...string) (*Subscription, error) {
	pubsub := b.rdb.Subscribe(ctx, channels...)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %v: %w", channels, err)
	}

	sub := &Subscription{
		pubsub: pubsub,
		ch:     make(chan []byte, 64),
		done:   make(chan struct{}),
	}

	go func() {
		defer close(sub.ch)
		src := pubsub.Channel()
		for {
			select {
			case msg, ok := <-src:
				if !ok {
					return
				}
				select {
				case sub.ch <- []byte(msg.Payload):
				case <-sub.done:
					return
				case <-ctx.Done():
					return
				}
			case <-sub.done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return sub, nil
}
