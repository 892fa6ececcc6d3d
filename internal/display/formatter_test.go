package display

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xiaot623/wallboard/internal/domain"
)

func TestPrintAgents(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, true)

	login := time.Date(2025, 9, 3, 8, 0, 0, 0, time.UTC)
	f.PrintAgents([]domain.Agent{
		{Code: "A001", Name: "John Doe", Status: domain.AgentStatusAvailable, Extension: "101", Skills: []string{"Sales", "Support"}, LoginTime: &login},
		{Code: "A099", Name: "New Guy", Status: domain.AgentStatusNotReady},
	})

	out := buf.String()
	assert.Contains(t, out, "A001")
	assert.Contains(t, out, "John Doe")
	assert.Contains(t, out, "Sales, Support")
	assert.Contains(t, out, "2025-09-03 08:00:00")
	assert.Contains(t, out, "Not Ready")
	assert.Contains(t, out, "2 agents")
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, true)

	stats := domain.ComputeDashboardStats([]domain.Agent{
		{Code: "A", Status: domain.AgentStatusAvailable},
		{Code: "B", Status: domain.AgentStatusActive},
		{Code: "C", Status: domain.AgentStatusWrapUp},
	})
	f.PrintStats(&stats)

	out := buf.String()
	assert.Contains(t, out, "Wrap Up")
	assert.Contains(t, out, "33%")
	assert.Contains(t, out, "Total agents: 3")
}

func TestPrintAgentAndError(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, true)

	f.PrintAgent("Agent A001 logged out successfully", &domain.Agent{Code: "A001", Name: "John", Status: domain.AgentStatusOffline})
	f.PrintError(errors.New("Agent not found (HTTP 404)"))

	out := buf.String()
	assert.Contains(t, out, "Agent A001 logged out successfully")
	assert.Contains(t, out, "Offline")
	assert.Contains(t, out, "[ERROR] Agent not found (HTTP 404)")
}
