package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func agentsWith(statuses ...AgentStatus) []Agent {
	agents := make([]Agent, len(statuses))
	for i, s := range statuses {
		agents[i] = Agent{Code: string(rune('A' + i)), Status: s}
	}
	return agents
}

func TestComputeDashboardStatsEmpty(t *testing.T) {
	stats := ComputeDashboardStats(nil)
	assert.Equal(t, DashboardStats{}, stats)
}

func TestComputeDashboardStatsPercentSum(t *testing.T) {
	cases := [][]AgentStatus{
		{AgentStatusAvailable},
		{AgentStatusAvailable, AgentStatusActive, AgentStatusWrapUp},
		{AgentStatusAvailable, AgentStatusAvailable, AgentStatusActive, AgentStatusOffline},
		{AgentStatusAvailable, AgentStatusActive, AgentStatusWrapUp, AgentStatusNotReady, AgentStatusOffline, AgentStatusOffline, AgentStatusActive},
	}
	for _, statuses := range cases {
		stats := ComputeDashboardStats(agentsWith(statuses...))
		assert.Equal(t, len(statuses), stats.TotalAgents)

		count, percent := 0, 0
		for _, s := range ValidStatuses() {
			count += stats.Stats.For(s).Count
			percent += stats.Stats.For(s).Percent
		}
		assert.Equal(t, len(statuses), count)
		// each rounded share is off by at most 0.5
		assert.InDelta(t, 100, percent, 2.5)
	}
}

func TestComputeDashboardStatsRounding(t *testing.T) {
	stats := ComputeDashboardStats(agentsWith(AgentStatusAvailable, AgentStatusAvailable, AgentStatusActive))
	assert.Equal(t, StatusStat{Count: 2, Percent: 67}, stats.Stats.Available)
	assert.Equal(t, StatusStat{Count: 1, Percent: 33}, stats.Stats.Active)

	stats = ComputeDashboardStats(agentsWith(AgentStatusNotReady, AgentStatusOffline, AgentStatusOffline, AgentStatusOffline, AgentStatusOffline, AgentStatusOffline))
	assert.Equal(t, StatusStat{Count: 1, Percent: 17}, stats.Stats.NotReady)
	assert.Equal(t, StatusStat{Count: 5, Percent: 83}, stats.Stats.Offline)
}
