package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lintang-b-s/congestion-router/pkg/engine"
	"github.com/lintang-b-s/congestion-router/pkg/http/usecases"
	"github.com/lintang-b-s/congestion-router/pkg/ledger"
	"github.com/lintang-b-s/congestion-router/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, useRateLimit bool) http.Handler {
	t.Helper()
	util.SetDefaults()
	l, err := ledger.Parse(strings.NewReader("Location,Congestion_Level,Time\nA,1,08:00\nB,3,08:05\nC,6,08:10\n"))
	require.NoError(t, err)
	log := zap.NewNop()
	svc := usecases.NewRoutingService(log, engine.NewEngine(l, log), 2)
	return NewAPI(log).Handler(useRateLimit, svc)
}

func TestHandlerRoutes(t *testing.T) {
	h := newTestHandler(t, false)

	testCases := []struct {
		name        string
		method      string
		target      string
		body        string
		contentType string
		wantStatus  int
		wantBody    string
	}{
		{name: "heartbeat", method: http.MethodGet, target: "/healthz", wantStatus: http.StatusOK, wantBody: "."},
		{name: "route", method: http.MethodGet, target: "/api/computeRoutes?start=A&end=C",
			wantStatus: http.StatusOK, wantBody: `"path":["A","B","C"]`},
		{name: "unknown location", method: http.MethodGet, target: "/api/computeRoutes?start=A&end=Z",
			wantStatus: http.StatusNotFound, wantBody: "unknown_location"},
		{name: "batch without content type", method: http.MethodPost, target: "/api/computeRoutes/batch",
			body: `{"queries":[{"start":"A","end":"C"}]}`, wantStatus: http.StatusBadRequest, wantBody: "Content-Type"},
		{name: "batch with form body", method: http.MethodPost, target: "/api/computeRoutes/batch",
			body: "start=A", contentType: "application/x-www-form-urlencoded", wantStatus: http.StatusUnsupportedMediaType},
		{name: "batch", method: http.MethodPost, target: "/api/computeRoutes/batch",
			body: `{"queries":[{"start":"A","end":"C"}]}`, contentType: "application/json; charset=utf-8",
			wantStatus: http.StatusOK, wantBody: `"route"`},
		{name: "not found", method: http.MethodGet, target: "/api/nothing", wantStatus: http.StatusNotFound},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestLimit(t *testing.T) {
	h := Limit(0.0001, 2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	codes := make([]int, 0)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestRecoverPanic(t *testing.T) {
	api := NewAPI(zap.NewNop())
	h := api.recoverPanic(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestRealIP(t *testing.T) {
	var got string
	h := RealIP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.RemoteAddr
	}))

	testCases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "x-real-ip", headers: map[string]string{"X-Real-IP": "10.0.0.7"}, want: "10.0.0.7"},
		{name: "x-forwarded-for", headers: map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"}, want: "203.0.113.9"},
		{name: "garbage header", headers: map[string]string{"X-Real-IP": "not-an-ip"}, want: "192.0.2.1:1234"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, got)
		})
	}
}
