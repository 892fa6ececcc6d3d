package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/xiaot623/wallboard/internal/domain"
)

// MemoryStore implements Store with a slice kept in insertion order.
type MemoryStore struct {
	mu     sync.RWMutex
	agents []*domain.Agent
	index  map[string]int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		index: make(map[string]int),
	}
}

func (s *MemoryStore) ListAgents(ctx context.Context) ([]domain.Agent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	agents := make([]domain.Agent, len(s.agents))
	for i, a := range s.agents {
		agents[i] = *a.Clone()
	}
	return agents, nil
}

func (s *MemoryStore) GetAgent(ctx context.Context, code string) (*domain.Agent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[code]
	if !ok {
		return nil, nil
	}
	return s.agents[i].Clone(), nil
}

func (s *MemoryStore) CountAgents(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.agents), nil
}

func (s *MemoryStore) SaveAgent(ctx context.Context, agent *domain.Agent) error {
	if agent == nil || agent.Code == "" {
		return fmt.Errorf("agent code is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[agent.Code]; ok {
		s.agents[i] = agent.Clone()
		return nil
	}
	s.index[agent.Code] = len(s.agents)
	s.agents = append(s.agents, agent.Clone())
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
