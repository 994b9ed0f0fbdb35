package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func serve(s *Server, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	resp := httptest.NewRecorder()
	s.Engine.ServeHTTP(resp, req)
	return resp
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name           string
		ping           error
		expectedStatus int
	}{
		{name: "store reachable", expectedStatus: http.StatusOK},
		{name: "store down", ping: errors.New("connection refused"), expectedStatus: http.StatusServiceUnavailable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New(Options{Addr: ":0"}, pingFunc(func(context.Context) error { return tc.ping }), zap.NewNop())
			gin.SetMode(gin.TestMode)

			resp := serve(s, http.MethodGet, "/health", nil)
			require.Equal(t, tc.expectedStatus, resp.Code)
		})
	}
}

func TestRequestID(t *testing.T) {
	s := New(Options{Addr: ":0"}, nil, zap.NewNop())

	resp := serve(s, http.MethodGet, "/health", nil)
	require.NotEmpty(t, resp.Header().Get(RequestIDHeader))

	resp = serve(s, http.MethodGet, "/health", http.Header{RequestIDHeader: []string{"req-42"}})
	require.Equal(t, "req-42", resp.Header().Get(RequestIDHeader))
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := New(Options{Addr: ":0", Registry: reg}, nil, zap.NewNop())

	require.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/health", nil).Code)
	require.Equal(t, http.StatusNotFound, serve(s, http.MethodGet, "/nowhere", nil).Code)

	resp := serve(s, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	require.True(t, strings.Contains(body, `http_requests_total{method="GET",path="/health",status="200"} 1`), body)
	require.True(t, strings.Contains(body, `path="unmatched"`), body)
}

func TestRun_StopsOnCancel(t *testing.T) {
	s := New(Options{Addr: "127.0.0.1:0"}, nil, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	require.NoError(t, <-done)
}
