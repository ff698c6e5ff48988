package controller_test

import (
	"net/http"
	"net/http/httptest"
	"places/pkg/controller"
	"places/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithLogger_InjectsRequestID(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	var seen string
	h := controller.WithLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v, _ := r.Context().Value(controller.RequestIDKey).(string)
		seen = v
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/places", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.NotEmpty(t, seen, "request ID should be generated when header is absent")
	require.Equal(t, http.StatusTeapot, rec.Code)
}

func TestWithLogger_KeepsProvidedRequestID(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	var seen string
	h := controller.WithLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v, _ := r.Context().Value(controller.RequestIDKey).(string)
		seen = v
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/places", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, "req-123", seen)
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	require.Equal(t, "203.0.113.9", controller.GetClientIP(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "198.51.100.7")
	require.Equal(t, "198.51.100.7", controller.GetClientIP(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.4:5678"
	require.Equal(t, "192.0.2.4", controller.GetClientIP(req))
}
