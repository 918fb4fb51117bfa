package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/frontdesk/clinic/internal/config"
	"github.com/frontdesk/clinic/internal/platform/middleware"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:           "8000",
		Env:            "test",
		DBMaxConns:     1,
		CORSOrigins:    []string{"http://localhost:5173"},
		Timezone:       "UTC",
		DateBoundMode:  config.DateBoundToday,
		RequestTimeout: 5 * time.Second,
		BodyLimit:      "1M",
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
		LogLevel:       "info",
	}
}

type envelopeBody struct {
	Success bool            `json:"success"`
	Message *string         `json:"message"`
	Error   *string         `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	// Routing tests never reach the store.
	e, err := newServer(testConfig(), zerolog.Nop(), nil)
	if err != nil {
		t.Fatalf("newServer: %v", err)
	}
	return e
}

func do(e *echo.Echo, method, path string) (*httptest.ResponseRecorder, envelopeBody) {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	var body envelopeBody
	json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestServer_Root(t *testing.T) {
	rec, body := do(newTestServer(t), http.MethodGet, "/")
	if rec.Code != http.StatusOK || !body.Success || *body.Message != "Root Page Access" {
		t.Errorf("unexpected root response %d %s", rec.Code, rec.Body.String())
	}
}

func TestServer_NotFound(t *testing.T) {
	rec, body := do(newTestServer(t), http.MethodGet, "/api/unknown?x=1")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body.Success || body.Error == nil || *body.Error != "PAGE NOT FOUND" {
		t.Errorf("unexpected envelope: %s", rec.Body.String())
	}
	if *body.Message != "The requested URL /api/unknown?x=1 was not found on this server." {
		t.Errorf("unexpected message %q", *body.Message)
	}
	if string(body.Data) != "null" {
		t.Errorf("expected null data, got %s", body.Data)
	}
}

func TestServer_UnsupportedMethod(t *testing.T) {
	rec, body := do(newTestServer(t), http.MethodDelete, "/api/patient")
	if rec.Code != http.StatusNotFound || body.Success {
		t.Errorf("expected 404 envelope for unsupported method, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestServer_Routes(t *testing.T) {
	e := newTestServer(t)
	want := map[string]bool{
		"GET /api/patient":        false,
		"GET /api/patients":       false,
		"GET /api/patient/stats":  false,
		"GET /api/patients/stats": false,
		"POST /api/patient":       false,
		"POST /api/patients":      false,
		"GET /api/doctor":         false,
		"POST /api/doctor":        false,
		"GET /api/service":        false,
		"POST /api/service":       false,
		"GET /":                   false,
	}
	for _, r := range e.Routes() {
		key := r.Method + " " + r.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for route, found := range want {
		if !found {
			t.Errorf("route %s not registered", route)
		}
	}
}

func TestServer_ValidationBeforeStore(t *testing.T) {
	e := newTestServer(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/doctor", nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%s)", rec.Code, rec.Body.String())
	}
	var body envelopeBody
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Error == nil || *body.Error != "BAD FORMAT" {
		t.Errorf("unexpected envelope: %s", rec.Body.String())
	}
}

func TestServer_Headers(t *testing.T) {
	e := newTestServer(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:5173")
	e.ServeHTTP(rec, req)

	if rec.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("expected request id header")
	}
	if rec.Header().Get(echo.HeaderAccessControlAllowOrigin) != "http://localhost:5173" {
		t.Errorf("expected CORS header, got %q", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("expected security headers")
	}
}

func TestNewServer_BadTimezone(t *testing.T) {
	cfg := testConfig()
	cfg.Timezone = "Nowhere/Special"
	if _, err := newServer(cfg, zerolog.Nop(), nil); err == nil {
		t.Error("expected error for unknown timezone")
	}
}
