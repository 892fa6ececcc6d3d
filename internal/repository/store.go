// Package store defines the agent storage interface and implementations.
package store

import (
	"context"
	"fmt"

	"github.com/xiaot623/wallboard/internal/domain"
)

// Store holds the agent record collection.
type Store interface {
	// ListAgents returns all agents in creation order.
	ListAgents(ctx context.Context) ([]domain.Agent, error)
	// GetAgent returns the agent with the given code, or nil if there is none.
	GetAgent(ctx context.Context, code string) (*domain.Agent, error)
	CountAgents(ctx context.Context) (int, error)
	// SaveAgent inserts or replaces the agent keyed by code. A replaced agent
	// keeps its original position.
	SaveAgent(ctx context.Context, agent *domain.Agent) error

	// Lifecycle
	Close() error
}

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Open returns the store implementation named by driver.
func Open(driver, dsn string) (Store, error) {
	switch driver {
	case "", DriverMemory:
		return NewMemoryStore(), nil
	case DriverSQLite:
		return NewSQLiteStore(dsn)
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
