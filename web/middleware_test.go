package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMiddleware_CorrelationID(t *testing.T) {
	wrapped := Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRecorder()
	wrapped.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	wrapped.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	firstID := first.Header().Get(CorrelationIDHeader)
	secondID := second.Header().Get(CorrelationIDHeader)

	if firstID == "" {
		t.Fatal("correlation id header missing")
	}
	if firstID == secondID {
		t.Errorf("correlation ids should differ per request, got %q twice", firstID)
	}
}

func TestMiddleware_ScrubsServerHeader(t *testing.T) {
	wrapped := Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", "secret-stack/1.0")
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rec.Header().Get("Server"); got != "" {
		t.Errorf("Server header = %q, want scrubbed", got)
	}
}

func TestMiddleware_PreservesStatus(t *testing.T) {
	wrapped := Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want 418", rec.Code)
	}
}

func TestMiddleware_ImplicitStatus(t *testing.T) {
	wrapped := Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hi")) // no explicit WriteHeader
	}))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "hi" {
		t.Errorf("body = %q", got)
	}
}

func TestMiddleware_DebugLogsRequestAndResponse(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	wrapped := Middleware(Config{Logger: logger})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1.0/x?y=1", nil))

	if got := logs.FilterMessage("received request").Len(); got != 1 {
		t.Errorf("received request logs = %d, want 1", got)
	}
	if got := logs.FilterMessage("sending response").Len(); got != 1 {
		t.Errorf("sending response logs = %d, want 1", got)
	}

	entry := logs.FilterMessage("received request").All()[0]
	fields := entry.ContextMap()
	if fields["method"] != http.MethodGet {
		t.Errorf("method field = %v", fields["method"])
	}
	if fields["url"] != "/v1.0/x?y=1" {
		t.Errorf("url field = %v", fields["url"])
	}
}
