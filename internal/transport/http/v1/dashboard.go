package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DashboardStats returns per-status counts and shares.
// GET /api/dashboard/stats
func (h *Handler) DashboardStats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.registry.DashboardStats(ctx)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, StatsResponse{
		Success:        true,
		DashboardStats: *stats,
		Timestamp:      h.timestamp(),
	})
}
