package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vedicastro/panchanga-api/internal/infra/config"
)

func retryConfig(attempts int) config.RetryConfig {
	return config.RetryConfig{Enabled: true, MaxAttempts: attempts}
}

func TestWithRetryReplaysTransientFailures(t *testing.T) {
	var calls int
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	handler := withRetry(inner, retryConfig(3), testLogger())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/panchanga", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, 3, calls)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestWithRetryGivesUpAfterMaxAttempts(t *testing.T) {
	var calls int
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	})

	handler := withRetry(inner, retryConfig(2), testLogger())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/panchanga", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, 2, calls)
	require.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestWithRetryDoesNotReplayClientErrors(t *testing.T) {
	var calls int
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	})

	handler := withRetry(inner, retryConfig(3), testLogger())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/panchanga", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, 1, calls)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWithRetrySkipsNonPostMethods(t *testing.T) {
	var calls int
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})

	handler := withRetry(inner, retryConfig(3), testLogger())
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, 1, calls)
}

func TestWithRetrySkipsExcludedPaths(t *testing.T) {
	var calls int
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})

	cfg := retryConfig(3)
	cfg.Exclude = []string{"/api/v1/panchanga"}
	handler := withRetry(inner, cfg, testLogger())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/panchanga", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, 1, calls)
}

func TestWithRetryDisabledReturnsHandlerUnchanged(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	wrapped := withRetry(inner, config.RetryConfig{Enabled: false}, testLogger())
	require.NotNil(t, wrapped)

	var calls int
	counting := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})
	wrapped = withRetry(counting, config.RetryConfig{Enabled: false}, testLogger())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/panchanga", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)
	require.Equal(t, 1, calls)
}
