package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"supplyops/internal/adapter/http/middleware"
	"supplyops/internal/domain/entities"
	"supplyops/internal/usecase"

	"github.com/gin-gonic/gin"
)

var testManager = entities.Actor{StaffID: "staff-1", Role: entities.RoleManager}

func staffRouter(method, path string, h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Handle(method, path, middleware.RequireActor(), h)
	return r
}

func publicRouter(method, path string, h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Handle(method, path, h)
	return r
}

// serve sends body (may be empty) as the manager unless anonymous is set.
func serve(r *gin.Engine, method, url, body string, anonymous bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, url, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if !anonymous {
		req.Header.Set(middleware.HeaderStaffID, testManager.StaffID)
		req.Header.Set(middleware.HeaderStaffRole, string(testManager.Role))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func managerCall(version int64) usecase.Call {
	return usecase.Call{Actor: testManager, Version: version}
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return out
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected %d, got %d (%s)", want, w.Code, w.Body.String())
	}
}
