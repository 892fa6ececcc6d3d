package v1

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiaot623/wallboard/internal/domain"
)

func TestDashboardStatsSeed(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler(t)

	c, rec := newContext(e, http.MethodGet, "/api/dashboard/stats", "")
	require.NoError(t, h.DashboardStats(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp StatsResponse
	decode(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.TotalAgents)
	assert.Equal(t, domain.StatusStat{Count: 1, Percent: 33}, resp.Stats.Available)
	assert.Equal(t, domain.StatusStat{Count: 1, Percent: 33}, resp.Stats.Active)
	assert.Equal(t, domain.StatusStat{Count: 1, Percent: 33}, resp.Stats.WrapUp)
	assert.Equal(t, domain.StatusStat{}, resp.Stats.NotReady)
	assert.Equal(t, domain.StatusStat{}, resp.Stats.Offline)
}

func TestDashboardStatsShape(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler(t)

	c, rec := newContext(e, http.MethodGet, "/api/dashboard/stats", "")
	require.NoError(t, h.DashboardStats(c))

	var raw map[string]interface{}
	decode(t, rec, &raw)
	assert.Contains(t, raw, "totalAgents")
	assert.Contains(t, raw, "timestamp")
	stats, ok := raw["stats"].(map[string]interface{})
	require.True(t, ok)
	for _, key := range []string{"available", "active", "wrapUp", "notReady", "offline"} {
		assert.Contains(t, stats, key)
	}
}

func TestHealthAndRoot(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler(t)

	c, rec := newContext(e, http.MethodGet, "/health", "")
	require.NoError(t, h.Health(c))
	var health HealthResponse
	decode(t, rec, &health)
	assert.Equal(t, "OK", health.Status)
	assert.Equal(t, "2025-09-03T10:00:00.000Z", health.Timestamp)

	c, rec = newContext(e, http.MethodGet, "/", "")
	require.NoError(t, h.Root(c))
	assert.Equal(t, "Hello Agent Wallboard!", rec.Body.String())

	c, rec = newContext(e, http.MethodGet, "/Hello", "")
	require.NoError(t, h.Hello(c))
	assert.Equal(t, "Hello", rec.Body.String())
}
