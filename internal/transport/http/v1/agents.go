package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
)

// StatusUpdateRequest is the body of PATCH /api/agents/:code/status.
// Status is kept raw so that non-string values are reported as invalid
// statuses rather than as unreadable bodies.
type StatusUpdateRequest struct {
	Status json.RawMessage `json:"status"`
}

// StatusValue returns the requested status. A JSON string is unquoted; any
// other value is returned as its JSON text.
func (r StatusUpdateRequest) StatusValue() string {
	raw := bytes.TrimSpace(r.Status)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := sonic.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

// LoginRequest is the body of POST /api/agents/:code/login.
type LoginRequest struct {
	Name string `json:"name"`
}

// ListAgents lists all agents.
// GET /api/agents
func (h *Handler) ListAgents(c echo.Context) error {
	ctx := c.Request().Context()

	agents, count, err := h.registry.List(ctx)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, AgentListResponse{
		Success:   true,
		Data:      agents,
		Count:     count,
		Timestamp: h.timestamp(),
	})
}

// CountAgents returns the number of agents.
// GET /api/agents/count
func (h *Handler) CountAgents(c echo.Context) error {
	ctx := c.Request().Context()

	count, err := h.registry.Count(ctx)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, CountResponse{
		Success:   true,
		Count:     count,
		Timestamp: h.timestamp(),
	})
}

// GetAgent gets a specific agent by code.
// GET /api/agents/:code
func (h *Handler) GetAgent(c echo.Context) error {
	ctx := c.Request().Context()

	agent, err := h.registry.FindByCode(ctx, codeParam(c))
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, AgentResponse{
		Success:   true,
		Data:      agent,
		Timestamp: h.timestamp(),
	})
}

// ChangeStatus moves an agent to a new status.
// PATCH /api/agents/:code/status
func (h *Handler) ChangeStatus(c echo.Context) error {
	ctx := c.Request().Context()
	code := codeParam(c)

	var req StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return h.errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	change, err := h.registry.ChangeStatus(ctx, code, req.StatusValue())
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, AgentResponse{
		Success:   true,
		Message:   fmt.Sprintf("Agent %s status changed from %s to %s", code, change.OldStatus, change.NewStatus),
		Data:      change.Agent,
		Timestamp: h.timestamp(),
	})
}

// Login logs an agent in, creating it on first login.
// POST /api/agents/:code/login
func (h *Handler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	code := codeParam(c)

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return h.errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	result, err := h.registry.Login(ctx, code, req.Name)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, AgentResponse{
		Success:   true,
		Message:   fmt.Sprintf("Agent %s logged in successfully", code),
		Data:      result.Agent,
		Timestamp: h.timestamp(),
	})
}

// Logout logs an agent out.
// POST /api/agents/:code/logout
func (h *Handler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	code := codeParam(c)

	agent, err := h.registry.Logout(ctx, code)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, AgentResponse{
		Success:   true,
		Message:   fmt.Sprintf("Agent %s logged out successfully", code),
		Data:      agent,
		Timestamp: h.timestamp(),
	})
}

// codeParam returns the :code path parameter. echo leaves parameters escaped
// when the request carries a RawPath, so decode them here.
func codeParam(c echo.Context) string {
	code := c.Param("code")
	if c.Request().URL.RawPath == "" {
		return code
	}
	if decoded, err := url.PathUnescape(code); err == nil {
		return decoded
	}
	return code
}
