package service

import (
	"context"
	"fmt"
	"time"

	"github.com/xiaot623/wallboard/internal/domain"
)

// DefaultAgents returns the agents a fresh wallboard starts with.
func DefaultAgents() []domain.Agent {
	at := func(hour, minute int) *time.Time {
		t := time.Date(2025, 9, 3, hour, minute, 0, 0, time.UTC)
		return &t
	}
	return []domain.Agent{
		{
			Code:      "A001",
			Name:      "John Doe",
			Status:    domain.AgentStatusAvailable,
			Extension: "101",
			Skills:    []string{"Sales", "Support"},
			LastLogin: at(8, 0),
		},
		{
			Code:      "A002",
			Name:      "Jane Smith",
			Status:    domain.AgentStatusActive,
			Extension: "102",
			Skills:    []string{"Support"},
			LastLogin: at(8, 15),
		},
		{
			Code:      "A003",
			Name:      "Bob Lee",
			Status:    domain.AgentStatusWrapUp,
			Extension: "103",
			Skills:    []string{"Sales"},
			LastLogin: at(7, 50),
		},
	}
}

// Seed installs agents into an empty registry. It is a no-op when any agent
// already exists.
func (r *AgentRegistry) Seed(ctx context.Context, agents []domain.Agent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, err := r.store.CountAgents(ctx)
	if err != nil {
		return fmt.Errorf("failed to count agents: %w", err)
	}
	if n > 0 {
		return nil
	}

	for i := range agents {
		agent := agents[i].Clone()
		if !agent.Status.Valid() {
			return fmt.Errorf("seed agent %s: %w", agent.Code, &domain.InvalidStatusError{Value: string(agent.Status), Valid: domain.ValidStatuses()})
		}
		if err := r.store.SaveAgent(ctx, agent); err != nil {
			return fmt.Errorf("failed to seed agent %s: %w", agent.Code, err)
		}
	}
	return nil
}
