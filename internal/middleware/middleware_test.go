package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/patrickwarner/northpole/internal/observability"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithTraceLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	fallback := zap.NewNop()

	h := WithTraceLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		LoggerFromRequest(r, fallback).Info("handled")
	}))

	req := httptest.NewRequest(http.MethodGet, "/12/board", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "GET", fields["method"])
		assert.Equal(t, "/12/board", fields["path"])
	}
}

func TestLoggerFromContext_Fallback(t *testing.T) {
	fallback := zap.NewNop()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Same(t, fallback, LoggerFromRequest(req, fallback))
}

func TestWithRequestMetrics_UsesRouteTemplate(t *testing.T) {
	metrics := observability.NewMockMetricsRegistry()

	r := mux.NewRouter()
	r.Use(WithRequestMetrics(metrics))
	r.HandleFunc("/12/place/{team}/{column}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}).Methods(http.MethodPost)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/12/place/milk/1", nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 2, metrics.Count("requests:/12/place/{team}/{column}:POST:503"))
}
