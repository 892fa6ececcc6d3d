package domain

import "math"

// StatusStat is the count and rounded share of agents in one status.
type StatusStat struct {
	Count   int `json:"count"`
	Percent int `json:"percent"`
}

// StatusBreakdown holds one StatusStat per status.
type StatusBreakdown struct {
	Available StatusStat `json:"available"`
	Active    StatusStat `json:"active"`
	WrapUp    StatusStat `json:"wrapUp"`
	NotReady  StatusStat `json:"notReady"`
	Offline   StatusStat `json:"offline"`
}

// DashboardStats summarizes the current agent population for the wallboard.
type DashboardStats struct {
	TotalAgents int             `json:"totalAgents"`
	Stats       StatusBreakdown `json:"stats"`
}

// For returns the stat for status s.
func (b StatusBreakdown) For(s AgentStatus) StatusStat {
	switch s {
	case AgentStatusAvailable:
		return b.Available
	case AgentStatusActive:
		return b.Active
	case AgentStatusWrapUp:
		return b.WrapUp
	case AgentStatusNotReady:
		return b.NotReady
	case AgentStatusOffline:
		return b.Offline
	}
	return StatusStat{}
}

// ComputeDashboardStats counts agents per status. Percentages are rounded half
// away from zero and are all zero for an empty population.
func ComputeDashboardStats(agents []Agent) DashboardStats {
	counts := make(map[AgentStatus]int, 5)
	for _, a := range agents {
		counts[a.Status]++
	}

	total := len(agents)
	stat := func(s AgentStatus) StatusStat {
		return StatusStat{Count: counts[s], Percent: percentOf(counts[s], total)}
	}

	return DashboardStats{
		TotalAgents: total,
		Stats: StatusBreakdown{
			Available: stat(AgentStatusAvailable),
			Active:    stat(AgentStatusActive),
			WrapUp:    stat(AgentStatusWrapUp),
			NotReady:  stat(AgentStatusNotReady),
			Offline:   stat(AgentStatusOffline),
		},
	}
}

func percentOf(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
