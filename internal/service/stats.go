package service

import (
	"context"
	"fmt"

	"github.com/xiaot623/wallboard/internal/domain"
)

// DashboardStats aggregates the current population per status.
func (r *AgentRegistry) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agents, err := r.store.ListAgents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	stats := domain.ComputeDashboardStats(agents)
	return &stats, nil
}
