package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestSecurityHeaders(t *testing.T) {
	h := SecurityHeaders(okHandler())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
}

func TestRecover_ConvertsPanicTo500(t *testing.T) {
	h := Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if body := rec.Body.String(); body == "" || body == "boom" {
		t.Errorf("expected envelope body, got %q", body)
	}
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	rl := NewRateLimiter(3)
	h := rl.Middleware(okHandler())

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/contacts", nil)
		req.RemoteAddr = "198.51.100.7:1234"
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contacts", nil)
	req.RemoteAddr = "198.51.100.7:1234"
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}
}

func TestRateLimiter_SeparatesClients(t *testing.T) {
	rl := NewRateLimiter(1)
	h := rl.Middleware(okHandler())

	first := httptest.NewRequest(http.MethodPost, "/", nil)
	first.RemoteAddr = "198.51.100.1:1"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, first)
	if rec.Code != http.StatusOK {
		t.Fatalf("first client: %d", rec.Code)
	}

	second := httptest.NewRequest(http.MethodPost, "/", nil)
	second.RemoteAddr = "198.51.100.2:1"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, second)
	if rec.Code != http.StatusOK {
		t.Errorf("second client should not share the first client's window, got %d", rec.Code)
	}
}

func TestClientIP_TrustedProxy(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:9999"
	req.Header.Set("X-Forwarded-For", "203.0.113.50, 10.0.0.1")

	if got := clientIP(req, 1); got != "10.0.0.1" {
		t.Errorf("clientIP = %q", got)
	}
	if got := clientIP(req, 2); got != "203.0.113.50" {
		t.Errorf("clientIP with 2 trusted proxies = %q", got)
	}
}

func TestCORS_Preflight(t *testing.T) {
	h := CORS("https://example.com")(okHandler())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/projects", nil))

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func setDebugErrors(t *testing.T, on bool) {
	t.Helper()
	prev := debugErrors
	debugErrors = on
	t.Cleanup(func() { debugErrors = prev })
}

func TestRecover_ProductionHidesPanicValue(t *testing.T) {
	setDebugErrors(t, false)
	h := Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("connection string leaked")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "connection string leaked") {
		t.Errorf("production response must not carry the panic value, got %q", body)
	}
	if !strings.Contains(body, "internal server error") {
		t.Errorf("expected generic message, got %q", body)
	}
}

func TestRecover_DevelopmentIncludesPanicValue(t *testing.T) {
	setDebugErrors(t, true)
	h := Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("nil journey repo")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, "nil journey repo") {
		t.Errorf("development response should carry the panic value, got %q", body)
	}
}

func TestRespondError_InternalDetailByMode(t *testing.T) {
	cause := errors.New("mongo: socket was unexpectedly closed")

	setDebugErrors(t, false)
	rec := httptest.NewRecorder()
	respondError(rec, httptest.NewRequest(http.MethodGet, "/api/projects", nil), cause)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body := rec.Body.String(); strings.Contains(body, "socket") {
		t.Errorf("production response must not carry the error detail, got %q", body)
	}

	setDebugErrors(t, true)
	rec = httptest.NewRecorder()
	respondError(rec, httptest.NewRequest(http.MethodGet, "/api/projects", nil), cause)
	if body := rec.Body.String(); !strings.Contains(body, "socket was unexpectedly closed") {
		t.Errorf("development response should carry the error detail, got %q", body)
	}
}
