package v1

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/xiaot623/wallboard/internal/domain"
)

// timestampLayout is ISO-8601 in UTC with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// AgentListResponse is returned by GET /api/agents.
type AgentListResponse struct {
	Success   bool           `json:"success"`
	Data      []domain.Agent `json:"data"`
	Count     int            `json:"count"`
	Timestamp string         `json:"timestamp"`
}

// CountResponse is returned by GET /api/agents/count.
type CountResponse struct {
	Success   bool   `json:"success"`
	Count     int    `json:"count"`
	Timestamp string `json:"timestamp"`
}

// AgentResponse wraps a single agent, optionally with a message.
type AgentResponse struct {
	Success   bool          `json:"success"`
	Message   string        `json:"message,omitempty"`
	Data      *domain.Agent `json:"data"`
	Timestamp string        `json:"timestamp"`
}

// StatsResponse is returned by GET /api/dashboard/stats.
type StatsResponse struct {
	Success bool `json:"success"`
	domain.DashboardStats
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the envelope for every failed request.
type ErrorResponse struct {
	Success       bool                 `json:"success"`
	Error         string               `json:"error"`
	ValidStatuses []domain.AgentStatus `json:"validStatuses,omitempty"`
	Timestamp     string               `json:"timestamp"`
}

// NewErrorResponse builds an error envelope stamped with the current time.
func NewErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{
		Success:   false,
		Error:     msg,
		Timestamp: formatTimestamp(time.Now()),
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func (h *Handler) timestamp() string {
	return formatTimestamp(h.now())
}

func (h *Handler) errorJSON(c echo.Context, status int, msg string) error {
	resp := NewErrorResponse(msg)
	resp.Timestamp = h.timestamp()
	return c.JSON(status, resp)
}

// respondError maps registry errors onto status codes and envelopes.
func (h *Handler) respondError(c echo.Context, err error) error {
	var invalid *domain.InvalidStatusError
	var missing *domain.MissingFieldError

	switch {
	case errors.Is(err, domain.ErrAgentNotFound):
		return h.errorJSON(c, http.StatusNotFound, "Agent not found")
	case errors.As(err, &invalid):
		resp := NewErrorResponse("Invalid status")
		resp.ValidStatuses = invalid.Valid
		resp.Timestamp = h.timestamp()
		return c.JSON(http.StatusBadRequest, resp)
	case errors.As(err, &missing):
		return h.errorJSON(c, http.StatusBadRequest, "Missing '"+missing.Field+"' in request body")
	default:
		slog.ErrorContext(c.Request().Context(), "request failed", "path", c.Path(), "err", err)
		return h.errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
}
