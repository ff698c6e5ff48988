package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"places/pkg/controller"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_ObservesRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	duration := controller.NewRequestDuration(reg)

	handler := controller.WithMetrics(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}), duration)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	count := testutil.CollectAndCount(duration, "http_request_duration_seconds")
	require.Equal(t, 1, count)
}
