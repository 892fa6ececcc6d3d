// Package v1 provides the wallboard HTTP handlers.
package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/xiaot623/wallboard/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	registry *service.AgentRegistry
	now      func() time.Time
}

// NewHandler creates a new handler.
func NewHandler(registry *service.AgentRegistry) *Handler {
	return &Handler{
		registry: registry,
		now:      time.Now,
	}
}

// RegisterRoutes registers the wallboard routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Root)
	e.GET("/Hello", h.Hello)
	e.GET("/health", h.Health)

	// Agent API
	e.GET("/api/agents", h.ListAgents)
	e.GET("/api/agents/count", h.CountAgents)
	e.GET("/api/agents/:code", h.GetAgent)
	e.PATCH("/api/agents/:code/status", h.ChangeStatus)
	e.POST("/api/agents/:code/login", h.Login)
	e.POST("/api/agents/:code/logout", h.Logout)

	// Dashboard API
	e.GET("/api/dashboard/stats", h.DashboardStats)
}

// Root greets the caller.
func (h *Handler) Root(c echo.Context) error {
	return c.String(http.StatusOK, "Hello Agent Wallboard!")
}

// Hello is a plain liveness greeting.
func (h *Handler) Hello(c echo.Context) error {
	return c.String(http.StatusOK, "Hello")
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "OK",
		Timestamp: h.timestamp(),
	})
}
