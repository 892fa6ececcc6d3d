package v1

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiaot623/wallboard/internal/domain"
	"github.com/xiaot623/wallboard/internal/service"
)

var errDiskOnFire = errors.New("disk on fire")

type failingStore struct{}

func (failingStore) ListAgents(ctx context.Context) ([]domain.Agent, error) { return nil, errDiskOnFire }
func (failingStore) GetAgent(ctx context.Context, code string) (*domain.Agent, error) {
	return nil, errDiskOnFire
}
func (failingStore) CountAgents(ctx context.Context) (int, error)             { return 0, errDiskOnFire }
func (failingStore) SaveAgent(ctx context.Context, agent *domain.Agent) error { return errDiskOnFire }
func (failingStore) Close() error                                             { return nil }

func TestStoreFailuresReturn500(t *testing.T) {
	e := echo.New()
	h := NewHandler(service.New(failingStore{}))

	cases := []struct {
		name   string
		call   func(echo.Context) error
		method string
		body   string
	}{
		{"list", h.ListAgents, http.MethodGet, ""},
		{"count", h.CountAgents, http.MethodGet, ""},
		{"stats", h.DashboardStats, http.MethodGet, ""},
		{"status", h.ChangeStatus, http.MethodPatch, `{"status":"Active"}`},
		{"login", h.Login, http.MethodPost, `{"name":"X"}`},
		{"logout", h.Logout, http.MethodPost, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newContext(e, tc.method, "/api/agents/A001", tc.body, "code", "A001")
			require.NoError(t, tc.call(c))
			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var resp ErrorResponse
			decode(t, rec, &resp)
			assert.False(t, resp.Success)
			assert.Equal(t, "Internal server error", resp.Error)
			assert.NotContains(t, rec.Body.String(), errDiskOnFire.Error())
		})
	}
}
