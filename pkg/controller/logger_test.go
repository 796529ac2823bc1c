package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/pkg/controller"
	"backoffice/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "forwarded for", headers: map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, want: "1.2.3.4"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": "9.8.7.6"}, want: "9.8.7.6"},
		{name: "remote addr", remote: "10.0.0.1:12345", want: "10.0.0.1"},
		{name: "invalid remote addr", remote: "not-an-addr", want: "not-an-addr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if tt.remote != "" {
				req.RemoteAddr = tt.remote
			}

			require.Equal(t, tt.want, controller.GetClientIP(req))
		})
	}
}

// observed installs an observer logger in the request context ahead of
// WithLogger so the access log can be inspected.
func observed(next http.Handler) (http.Handler, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithLogger(r.Context(), zap.New(core))
		next.ServeHTTP(w, r.WithContext(ctx))
	}), logs
}

func TestWithLogger_RequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Echo-Request-Id", controller.RequestID(r.Context()))
		w.WriteHeader(http.StatusCreated)
	})
	handler, _ := observed(controller.WithLogger(next))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "abc-123", rec.Header().Get("X-Echo-Request-Id"))
	require.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	generated := rec.Header().Get("X-Request-Id")
	require.Equal(t, generated, rec.Header().Get("X-Echo-Request-Id"))
	_, err := uuid.Parse(generated)
	require.NoError(t, err)
}

func TestWithLogger_AccessLog(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/specialists/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"NOT_FOUND"}`))
	})
	handler, logs := observed(controller.WithLogger(mux))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/specialists/42", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	entries := logs.FilterMessage("Access log").All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	require.Equal(t, int64(http.StatusNotFound), first["status_code"])
	require.Equal(t, "GET /v1/specialists/{id}", first["route"])
	require.Equal(t, int64(len(`{"code":"NOT_FOUND"}`)), first["bytes_written"])
	require.Equal(t, http.MethodGet, first["method"])
	require.NotEmpty(t, first[string(controller.RequestIDKey)])

	require.Equal(t, "unmatched", entries[1].ContextMap()["route"])
}
