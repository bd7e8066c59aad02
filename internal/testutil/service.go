package testutil

import (
	"context"
	"testing"

	"github.com/preston-bernstein/bruins-live-service/internal/app/today"
	"github.com/preston-bernstein/bruins-live-service/internal/store"
)

// NewSeededStore returns a memory store holding SampleConfig.
func NewSeededStore(t testing.TB) *store.MemoryStore {
	t.Helper()
	mem := store.NewMemoryStore()
	if err := mem.SetConfig(context.Background(), SampleConfig()); err != nil {
		t.Fatalf("seed config: %v", err)
	}
	return mem
}

// NewTodayService builds a today service over a seeded memory store.
func NewTodayService(t testing.TB) (*today.Service, *store.MemoryStore) {
	t.Helper()
	mem := NewSeededStore(t)
	return today.NewService(mem), mem
}
