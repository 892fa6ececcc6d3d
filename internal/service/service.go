// Package service implements the agent status registry.
package service

import (
	"sync"
	"time"

	"github.com/xiaot623/wallboard/internal/repository"
)

// AgentRegistry is the single source of truth for agent existence and status.
// Mutations hold the write lock for their whole read-modify-write, so readers
// never see a half-applied change.
type AgentRegistry struct {
	mu    sync.RWMutex
	store store.Store
	now   func() time.Time
}

// Option configures an AgentRegistry.
type Option func(*AgentRegistry)

// WithClock overrides the time source used for login and status timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *AgentRegistry) {
		r.now = now
	}
}

// New creates a registry over the given store.
func New(store store.Store, opts ...Option) *AgentRegistry {
	r := &AgentRegistry{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *AgentRegistry) timestamp() *time.Time {
	t := r.now().UTC()
	return &t
}
