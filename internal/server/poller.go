package server

import (
	"context"

	"github.com/preston-bernstein/bruins-live-service/internal/poller"
)

// Poller defines the poll loop behavior the server needs.
type Poller interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Status() poller.Status
	PollOnce(ctx context.Context) (poller.Result, error)
}
