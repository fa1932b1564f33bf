package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"timetobuy/internal/testutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDMiddlewareSetsHeaderAndContext(t *testing.T) {
	var ctxRequestID string

	h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxRequestID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	r := httptest.NewRequest(http.MethodGet, "/timecost/calculate", nil)
	w := testutil.ExecuteRequest(r, h)

	headerRequestID := w.Result().Header.Get("X-Request-ID")
	if headerRequestID == "" {
		t.Fatal("expected X-Request-ID header to be set")
	}

	if _, err := uuid.Parse(headerRequestID); err != nil {
		t.Fatalf("expected header to contain UUID, got %q: %v", headerRequestID, err)
	}

	if ctxRequestID != headerRequestID {
		t.Fatalf("expected context request_id %q to match header %q", ctxRequestID, headerRequestID)
	}
}

func TestShouldTraceRequest(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "/health", want: false},
		{path: "/metrics", want: false},
		{path: "/timecost/calculate", want: true},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tc.path, nil)
			got := shouldTraceRequest(r)
			if got != tc.want {
				t.Fatalf("path %q: expected %t, got %t", tc.path, tc.want, got)
			}
		})
	}
}

func TestLoggingMiddlewareWritesCompletionLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	oldLogger := Logger
	Logger = zap.New(core)
	t.Cleanup(func() { Logger = oldLogger })

	h := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	r := httptest.NewRequest(http.MethodPost, "/timecost/calculate", nil)
	r = r.WithContext(ContextWithRequestID(r.Context(), "req-123"))
	_ = testutil.ExecuteRequest(r, h)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}

	entry := entries[0]
	if entry.Message != "request completed" {
		t.Fatalf("expected message %q, got %q", "request completed", entry.Message)
	}

	fields := entry.ContextMap()
	if fields["method"] != http.MethodPost {
		t.Fatalf("expected method %q, got %#v", http.MethodPost, fields["method"])
	}
	if fields["path"] != "/timecost/calculate" {
		t.Fatalf("expected path %q, got %#v", "/timecost/calculate", fields["path"])
	}
	if fields["request_id"] != "req-123" {
		t.Fatalf("expected request_id %q, got %#v", "req-123", fields["request_id"])
	}
	if fields["status"] != int64(http.StatusNoContent) {
		t.Fatalf("expected status %d, got %#v", http.StatusNoContent, fields["status"])
	}
}

func TestLoggingMiddlewareDefaultsStatusToOK(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	oldLogger := Logger
	Logger = zap.New(core)
	t.Cleanup(func() { Logger = oldLogger })

	h := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	_ = testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/settings", nil), h)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["status"]; got != int64(http.StatusOK) {
		t.Fatalf("expected status %d, got %#v", http.StatusOK, got)
	}
}

func TestRequestIDMiddlewareKeepsIncomingID(t *testing.T) {
	const incoming = "0b5f8f2e-1d1a-4c6e-9f3a-7e2d5c4b3a21"
	var ctxRequestID string

	h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxRequestID = RequestIDFromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/settings", nil)
	r.Header.Set(RequestIDHeader, incoming)
	w := testutil.ExecuteRequest(r, h)

	if got := w.Result().Header.Get(RequestIDHeader); got != incoming {
		t.Fatalf("expected header %q, got %q", incoming, got)
	}
	if ctxRequestID != incoming {
		t.Fatalf("expected context id %q, got %q", incoming, ctxRequestID)
	}
}

func TestLoggingMiddlewareLogsRoutePattern(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	oldLogger := Logger
	Logger = zap.New(core)
	t.Cleanup(func() { Logger = oldLogger })

	r := chi.NewRouter()
	r.Use(LoggingMiddleware)
	r.Route("/timecost", func(r chi.Router) {
		r.Post("/calculate", func(w http.ResponseWriter, r *http.Request) {})
	})

	_ = testutil.ExecuteRequest(httptest.NewRequest(http.MethodPost, "/timecost/calculate", nil), r)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["route"]; got != "/timecost/calculate" {
		t.Fatalf("expected route %q, got %#v", "/timecost/calculate", got)
	}
}
