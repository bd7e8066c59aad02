package server

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/bruins-live-service/internal/config"
	"github.com/preston-bernstein/bruins-live-service/internal/publisher"
)

// buildNotifier returns the stream publisher and a close func, or nils when publishing is off.
func buildNotifier(ctx context.Context, cfg config.Config) (*publisher.StreamPublisher, func() error, error) {
	if !cfg.PublishUpdates {
		return nil, nil, nil
	}
	opts, err := redis.ParseURL(cfg.Store.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("publisher: parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("publisher: ping redis: %w", err)
	}
	return publisher.NewStreamPublisher(client, publisher.DefaultStream), client.Close, nil
}
