// Package client provides an HTTP client for the wallboard API.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/xiaot623/wallboard/internal/domain"
)

// Client talks to a running wallboard server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError is returned when the server answers with success=false.
type APIError struct {
	StatusCode    int
	Message       string
	ValidStatuses []domain.AgentStatus
}

func (e *APIError) Error() string {
	if len(e.ValidStatuses) > 0 {
		names := make([]string, len(e.ValidStatuses))
		for i, s := range e.ValidStatuses {
			names[i] = string(s)
		}
		return fmt.Sprintf("%s (HTTP %d, valid: %s)", e.Message, e.StatusCode, strings.Join(names, ", "))
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
}

type envelope[T any] struct {
	Success       bool                 `json:"success"`
	Message       string               `json:"message"`
	Error         string               `json:"error"`
	ValidStatuses []domain.AgentStatus `json:"validStatuses"`
	Count         int                  `json:"count"`
	Data          T                    `json:"data"`
}

type statsEnvelope struct {
	Success bool `json:"success"`
	domain.DashboardStats
}

// AgentResult is an agent returned by a mutation with the server's message.
type AgentResult struct {
	Message string
	Agent   *domain.Agent
}

// ListAgents returns all agents in creation order.
func (c *Client) ListAgents(ctx context.Context) ([]domain.Agent, error) {
	var resp envelope[[]domain.Agent]
	if err := c.do(ctx, http.MethodGet, "/api/agents", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CountAgents returns the number of agents.
func (c *Client) CountAgents(ctx context.Context) (int, error) {
	var resp envelope[struct{}]
	if err := c.do(ctx, http.MethodGet, "/api/agents/count", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// GetAgent returns one agent by code.
func (c *Client) GetAgent(ctx context.Context, code string) (*domain.Agent, error) {
	var resp envelope[*domain.Agent]
	if err := c.do(ctx, http.MethodGet, agentPath(code, ""), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// ChangeStatus sets the status of an agent.
func (c *Client) ChangeStatus(ctx context.Context, code string, status domain.AgentStatus) (*AgentResult, error) {
	return c.mutate(ctx, http.MethodPatch, agentPath(code, "status"), map[string]string{"status": string(status)})
}

// Login logs an agent in under name.
func (c *Client) Login(ctx context.Context, code, name string) (*AgentResult, error) {
	return c.mutate(ctx, http.MethodPost, agentPath(code, "login"), map[string]string{"name": name})
}

// Logout logs an agent out.
func (c *Client) Logout(ctx context.Context, code string) (*AgentResult, error) {
	return c.mutate(ctx, http.MethodPost, agentPath(code, "logout"), nil)
}

// DashboardStats returns the per-status summary.
func (c *Client) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var resp statsEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/stats", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.DashboardStats, nil
}

func (c *Client) mutate(ctx context.Context, method, path string, body interface{}) (*AgentResult, error) {
	var resp envelope[*domain.Agent]
	if err := c.do(ctx, method, path, body, &resp); err != nil {
		return nil, err
	}
	return &AgentResult{Message: resp.Message, Agent: resp.Data}, nil
}

func agentPath(code, action string) string {
	p := "/api/agents/" + url.PathEscape(code)
	if action != "" {
		p += "/" + action
	}
	return p
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := sonic.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var failure envelope[struct{}]
		if err := sonic.Unmarshal(raw, &failure); err != nil || failure.Error == "" {
			return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: failure.Error, ValidStatuses: failure.ValidStatuses}
	}

	if err := sonic.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
