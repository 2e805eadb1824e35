package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	portsrepo "github.com/SscSPs/bank_account_manager/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

// RedisPublisher appends events to a redis stream.
type RedisPublisher struct {
	client *redis.Client
	stream string
}

// NewRedisPublisher creates a publisher writing to stream, or DefaultStream when stream is empty.
func NewRedisPublisher(client *redis.Client, stream string) *RedisPublisher {
	if stream == "" {
		stream = DefaultStream
	}
	return &RedisPublisher{client: client, stream: stream}
}

var _ portsrepo.EventPublisher = (*RedisPublisher)(nil)

func (p *RedisPublisher) Publish(ctx context.Context, eventType string, data any) error {
	eventJSON, err := encodeEvent(eventType, time.Now().UTC(), data)
	if err != nil {
		return err
	}

	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{
			"event": eventJSON,
		},
	}

	if _, err := p.client.XAdd(ctx, args).Result(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

func encodeEvent(eventType string, ts time.Time, data any) ([]byte, error) {
	eventJSON, err := json.Marshal(Event{Type: eventType, Timestamp: ts, Data: data})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	return eventJSON, nil
}

// NoopPublisher drops events. It is used when no redis address is configured.
type NoopPublisher struct {
	Logger *slog.Logger
}

var _ portsrepo.EventPublisher = NoopPublisher{}

func (p NoopPublisher) Publish(_ context.Context, eventType string, _ any) error {
	if p.Logger != nil {
		p.Logger.Debug("Event publishing disabled, dropping event", slog.String("event_type", eventType))
	}
	return nil
}
