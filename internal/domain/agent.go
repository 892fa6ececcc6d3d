package domain

import "time"

// Agent represents a call-center agent tracked by the wallboard.
type Agent struct {
	Code             string      `json:"code"`
	Name             string      `json:"name"`
	Status           AgentStatus `json:"status"`
	Extension        string      `json:"extension,omitempty"`
	Skills           []string    `json:"skills,omitempty"`
	LastLogin        *time.Time  `json:"lastLogin,omitempty"`
	LoginTime        *time.Time  `json:"loginTime,omitempty"`
	LastStatusChange *time.Time  `json:"lastStatusChange,omitempty"`
}

// Clone returns a deep copy so callers never share state with the registry.
func (a *Agent) Clone() *Agent {
	if a == nil {
		return nil
	}
	out := *a
	if a.Skills != nil {
		out.Skills = append([]string(nil), a.Skills...)
	}
	out.LastLogin = cloneTime(a.LastLogin)
	out.LoginTime = cloneTime(a.LoginTime)
	out.LastStatusChange = cloneTime(a.LastStatusChange)
	return &out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// StatusChange is the result of a successful status transition.
type StatusChange struct {
	Code      string
	OldStatus AgentStatus
	NewStatus AgentStatus
	Agent     *Agent
}

// LoginResult is the result of a login upsert.
type LoginResult struct {
	Agent   *Agent
	Outcome LoginOutcome
}
