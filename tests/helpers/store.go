package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/xiaot623/wallboard/internal/repository"
	"github.com/xiaot623/wallboard/internal/service"
)

func NewTestSQLiteStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create sqlite store: %v", err)
	}

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

// FixedClock returns a clock pinned to t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// NewSeededRegistry returns a registry over a fresh memory store holding the
// three default agents.
func NewSeededRegistry(t *testing.T, opts ...service.Option) *service.AgentRegistry {
	t.Helper()

	r := service.New(store.NewMemoryStore(), opts...)
	if err := r.Seed(context.Background(), service.DefaultAgents()); err != nil {
		t.Fatalf("failed to seed registry: %v", err)
	}
	return r
}
