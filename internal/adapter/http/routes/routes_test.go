package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"supplyops/internal/adapter/http/middleware"
	"supplyops/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	t      *testing.T
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Store:      config.StoreConfig{Backend: config.BackendMemory},
		Escalation: config.EscalationConfig{DefaultSeverity: "MEDIUM"},
	}
	reg := prometheus.NewRegistry()
	h, cleanup, err := buildHandlers(context.Background(), cfg, reg)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	return &testServer{t: t, router: NewRouter(h, reg)}
}

// do sends body as role; an empty role sends no identity headers.
func (s *testServer) do(method, path, role, body string) (int, map[string]any) {
	s.t.Helper()
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if role != "" {
		req.Header.Set(middleware.HeaderStaffID, "staff-"+strings.ToLower(role))
		req.Header.Set(middleware.HeaderStaffRole, role)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var out map[string]any
	if strings.HasPrefix(strings.TrimSpace(w.Body.String()), "{") {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

func TestRouter_Ops(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(http.MethodGet, "/v1/ping", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "pong", body["message"])

	s.do(http.MethodPost, "/v1/orders", "", `{"id":"o-1","consumer_id":"c-1","items":[{"product_ref":"a","qty":1}]}`)
	s.do(http.MethodPatch, "/v1/orders/o-1/accept", "MANAGER", "")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "supplyops_lifecycle_operations_total")
}

func TestRouter_StaffRoutesNeedIdentity(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(http.MethodGet, "/v1/orders", "", "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "UNAUTHENTICATED", body["code"])

	code, _ = s.do(http.MethodGet, "/v1/incidents", "INTERN", "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = s.do(http.MethodGet, "/v1/incidents", "sales", "")
	assert.Equal(t, http.StatusOK, code)
}

func TestRouter_OrderComplaintEscalation(t *testing.T) {
	s := newTestServer(t)

	code, order := s.do(http.MethodPost, "/v1/orders", "", `{"id":"101","consumer_id":"c-1","items":[{"product_ref":"crate","qty":3,"unit_price":4}]}`)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "NEW", order["status"])
	assert.EqualValues(t, 12, order["total_amount"])

	code, body := s.do(http.MethodPatch, "/v1/orders/101/accept", "SALES", "")
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "PERMISSION_DENIED", body["code"])

	code, order = s.do(http.MethodPatch, "/v1/orders/101/accept", "MANAGER", `{"version":1}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "IN_PROGRESS", order["status"])

	code, body = s.do(http.MethodPatch, "/v1/orders/101/reject", "OWNER", `{"version":1}`)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "CONCURRENT_MODIFICATION", body["code"])

	code, body = s.do(http.MethodPatch, "/v1/orders/101/reject", "OWNER", "")
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "INVALID_TRANSITION", body["code"])

	code, complaint := s.do(http.MethodPost, "/v1/orders/101/complaints", "", `{"id":"1","consumer_ref":"c-1","description":"Crates arrived damaged"}`)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "OPEN", complaint["status"])

	code, _ = s.do(http.MethodPost, "/v1/orders/999/complaints", "", `{"description":"late"}`)
	assert.Equal(t, http.StatusNotFound, code)

	code, incident := s.do(http.MethodPatch, "/v1/complaints/1/escalate", "MANAGER", `{"severity":"high"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "1", incident["complaint_id"])
	assert.Equal(t, "101", incident["order_id"])
	assert.Equal(t, "HIGH", incident["severity"])

	code, again := s.do(http.MethodPatch, "/v1/complaints/1/escalate", "OWNER", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, incident["id"], again["id"])

	code, complaint = s.do(http.MethodGet, "/v1/complaints/1", "SALES", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ESCALATED", complaint["status"])

	req := httptest.NewRequest(http.MethodGet, "/v1/incidents?complaint_id=1", nil)
	req.Header.Set(middleware.HeaderStaffID, "staff-1")
	req.Header.Set(middleware.HeaderStaffRole, "MANAGER")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var incidents []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &incidents))
	assert.Len(t, incidents, 1)
}

func TestRouter_LinkIntakeAndUnblock(t *testing.T) {
	s := newTestServer(t)

	code, link := s.do(http.MethodPost, "/v1/links", "", `{"id":"3","consumer_id":"c-3","supplier_id":"s-1"}`)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "PENDING", link["status"])

	code, _ = s.do(http.MethodPatch, "/v1/links/3/approve", "MANAGER", "")
	require.Equal(t, http.StatusOK, code)
	code, _ = s.do(http.MethodPatch, "/v1/links/3/block", "OWNER", `{"reason":"Overdue invoices"}`)
	require.Equal(t, http.StatusOK, code)

	code, _ = s.do(http.MethodPatch, "/v1/links/3/unblock", "SALES", "")
	assert.Equal(t, http.StatusForbidden, code)

	code, link = s.do(http.MethodPatch, "/v1/links/3/unblock", "OWNER", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ACTIVE", link["status"])
	notes, ok := link["notes"].([]any)
	require.True(t, ok)
	assert.Len(t, notes, 3)
}
