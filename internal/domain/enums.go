// Package domain defines the core domain models for the wallboard.
package domain

// AgentStatus represents the work state of an agent.
type AgentStatus string

const (
	AgentStatusAvailable AgentStatus = "Available"
	AgentStatusActive    AgentStatus = "Active"
	AgentStatusWrapUp    AgentStatus = "Wrap Up"
	AgentStatusNotReady  AgentStatus = "Not Ready"
	AgentStatusOffline   AgentStatus = "Offline"
)

// ValidStatuses lists every status in display order.
func ValidStatuses() []AgentStatus {
	return []AgentStatus{
		AgentStatusAvailable,
		AgentStatusActive,
		AgentStatusWrapUp,
		AgentStatusNotReady,
		AgentStatusOffline,
	}
}

// Valid reports whether s is one of the five known statuses.
func (s AgentStatus) Valid() bool {
	switch s {
	case AgentStatusAvailable, AgentStatusActive, AgentStatusWrapUp, AgentStatusNotReady, AgentStatusOffline:
		return true
	}
	return false
}

// ParseAgentStatus converts raw input into an AgentStatus. Matching is exact.
func ParseAgentStatus(raw string) (AgentStatus, error) {
	s := AgentStatus(raw)
	if !s.Valid() {
		return "", &InvalidStatusError{Value: raw, Valid: ValidStatuses()}
	}
	return s, nil
}

// LoginOutcome tells whether a login created a record or refreshed one.
type LoginOutcome string

const (
	LoginCreated LoginOutcome = "created"
	LoginUpdated LoginOutcome = "updated"
)
