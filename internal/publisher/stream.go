// Package publisher announces written documents on a Redis stream.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/bruins-live-service/internal/domain"
)

// DefaultStream is the stream key updates are appended to.
const DefaultStream = "bruinsLive.updates"

// Default cap on stream length (approximate trimming).
const defaultMaxLen = 1000

// StreamPublisher publishes document changes to a Redis stream.
type StreamPublisher struct {
	client *redis.Client
	stream string
	maxLen int64
}

// NewStreamPublisher creates a publisher. An empty stream uses DefaultStream.
func NewStreamPublisher(client *redis.Client, stream string) *StreamPublisher {
	if stream == "" {
		stream = DefaultStream
	}
	return &StreamPublisher{client: client, stream: stream, maxLen: defaultMaxLen}
}

// Stream returns the stream key.
func (p *StreamPublisher) Stream() string {
	return p.stream
}

// NotifyGameChanged publishes a game document.
func (p *StreamPublisher) NotifyGameChanged(ctx context.Context, state domain.GameState) error {
	return p.publish(ctx, "game", state.GameID, string(state.Status), state)
}

// NotifyTodayChanged publishes a today document.
func (p *StreamPublisher) NotifyTodayChanged(ctx context.Context, state domain.TodayState) error {
	return p.publish(ctx, "today", state.DateKey, "", state)
}

func (p *StreamPublisher) publish(ctx context.Context, kind, id, status string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling %s update: %w", kind, err)
	}
	values := map[string]interface{}{
		"type": kind,
		"id":   id,
		"data": string(data),
	}
	if status != "" {
		values["status"] = status
	}
	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: p.maxLen,
		Approx: true,
		Values: values,
	}).Err()
}
