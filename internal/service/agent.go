package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xiaot623/wallboard/internal/domain"
)

// List returns every agent in creation order along with the count.
func (r *AgentRegistry) List(ctx context.Context) ([]domain.Agent, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agents, err := r.store.ListAgents(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list agents: %w", err)
	}
	if agents == nil {
		agents = []domain.Agent{}
	}
	return agents, len(agents), nil
}

// Count returns the number of agents.
func (r *AgentRegistry) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, err := r.store.CountAgents(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count agents: %w", err)
	}
	return n, nil
}

// FindByCode returns the agent with the given code or domain.ErrAgentNotFound.
func (r *AgentRegistry) FindByCode(ctx context.Context, code string) (*domain.Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.find(ctx, code)
}

func (r *AgentRegistry) find(ctx context.Context, code string) (*domain.Agent, error) {
	agent, err := r.store.GetAgent(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	if agent == nil {
		return nil, domain.ErrAgentNotFound
	}
	return agent, nil
}

// ChangeStatus moves an agent to newStatus. Any status may follow any other,
// including itself; the change timestamp is refreshed either way.
func (r *AgentRegistry) ChangeStatus(ctx context.Context, code, newStatus string) (*domain.StatusChange, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	agent, err := r.find(ctx, code)
	if err != nil {
		return nil, err
	}
	status, err := domain.ParseAgentStatus(newStatus)
	if err != nil {
		return nil, err
	}

	oldStatus := agent.Status
	agent.Status = status
	agent.LastStatusChange = r.timestamp()
	if err := r.store.SaveAgent(ctx, agent); err != nil {
		return nil, fmt.Errorf("failed to save agent: %w", err)
	}

	slog.InfoContext(ctx, "agent status changed", "code", code, "from", oldStatus, "to", status)

	return &domain.StatusChange{
		Code:      code,
		OldStatus: oldStatus,
		NewStatus: status,
		Agent:     agent,
	}, nil
}

// Login creates the agent on first sight or resets an existing one to
// Available under the given name. The outcome tells which happened.
func (r *AgentRegistry) Login(ctx context.Context, code, name string) (*domain.LoginResult, error) {
	if name == "" {
		return nil, &domain.MissingFieldError{Field: "name"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	agent, err := r.store.GetAgent(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	outcome := domain.LoginUpdated
	if agent == nil {
		outcome = domain.LoginCreated
		agent = &domain.Agent{Code: code}
	}

	now := r.timestamp()
	agent.Name = name
	agent.Status = domain.AgentStatusAvailable
	agent.LoginTime = now
	agent.LastLogin = now

	if err := r.store.SaveAgent(ctx, agent); err != nil {
		return nil, fmt.Errorf("failed to save agent: %w", err)
	}

	slog.InfoContext(ctx, "agent logged in", "code", code, "outcome", outcome)

	return &domain.LoginResult{Agent: agent, Outcome: outcome}, nil
}

// Logout marks the agent Offline and drops its login time.
func (r *AgentRegistry) Logout(ctx context.Context, code string) (*domain.Agent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	agent, err := r.find(ctx, code)
	if err != nil {
		return nil, err
	}

	agent.Status = domain.AgentStatusOffline
	agent.LoginTime = nil
	if err := r.store.SaveAgent(ctx, agent); err != nil {
		return nil, fmt.Errorf("failed to save agent: %w", err)
	}

	slog.InfoContext(ctx, "agent logged out", "code", code)

	return agent, nil
}
