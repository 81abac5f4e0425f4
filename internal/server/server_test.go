package server

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agent-demos/internal/agents"
	"agent-demos/internal/common/config"
	"agent-demos/internal/common/errors"
	"agent-demos/internal/common/logger"
	"agent-demos/internal/common/simulator"
	"agent-demos/internal/common/stats"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockCounter struct {
	mock.Mock
}

func (m *mockCounter) Increment(ctx context.Context, agent string) (int64, error) {
	args := m.Called(ctx, agent)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCounter) Snapshot(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[string]int64)
	return counts, args.Error(1)
}

func newTestServer(t *testing.T, mutate func(*config.Config), counter stats.Counter, checks map[string]ReadinessCheck) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Simulator.DelayMs = 0
	cfg.Server.MaxBodyBytes = 1024
	if mutate != nil {
		mutate(cfg)
	}

	set, err := agents.Build(cfg, agents.Deps{Logger: logger.NewTestLogger(t), Rand: simulator.NewSeededRand(11)})
	require.NoError(t, err)

	return New(Options{
		Server:  cfg.Server,
		Metrics: cfg.Metrics,
		App:     cfg.App,
		Agents:  set,
		Counter: counter,
		Logger:  logger.NewTestLogger(t),
		Checks:  checks,
	})
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestRunAgent_FinanceTracker(t *testing.T) {
	s := newTestServer(t, nil, nil, nil)

	rec := do(t, s, http.MethodPost, "/api/finance-tracker", `{"expensesInput":"Uber 300\nSwiggy 500"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, 800.0, body["totalSpend"])
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))

	meta := body["metadata"].(map[string]interface{})
	assert.Equal(t, "finance-tracker", meta["agent"])
	assert.Equal(t, true, meta["simulated"])
}

func TestRunAgent_Errors(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) {
		cfg.Agents["shop-smart"] = config.AgentConfig{Enabled: false}
	}, nil, nil)

	tests := []struct {
		name    string
		path    string
		body    string
		status  int
		code    errors.ErrorCode
		message string
	}{
		{name: "validation", path: "/api/inbox-zero", body: `{"emailContent":"short"}`, status: http.StatusBadRequest, code: errors.ErrCodeValidationFailed, message: "emailContent must be at least 10 characters"},
		{name: "empty object", path: "/api/lead-spark", body: `{}`, status: http.StatusBadRequest, code: errors.ErrCodeValidationFailed, message: "leadQuery must be at least 5 characters"},
		{name: "malformed json", path: "/api/task-master", body: `{"tasks":`, status: http.StatusBadRequest, code: errors.ErrCodeInvalidPayload},
		{name: "unknown field", path: "/api/task-master", body: `{"tasks":"a task","x":1}`, status: http.StatusBadRequest, code: errors.ErrCodeInvalidPayload},
		{name: "too large", path: "/api/task-master", body: `{"tasks":"` + strings.Repeat("a", 2048) + `"}`, status: http.StatusBadRequest, code: errors.ErrCodeInvalidPayload},
		{name: "unknown agent", path: "/api/crystal-ball", body: `{}`, status: http.StatusNotFound, code: errors.ErrCodeAgentNotFound},
		{name: "disabled agent", path: "/api/shop-smart", body: `{"productInterest":"books"}`, status: http.StatusServiceUnavailable, code: errors.ErrCodeAgentDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code)

			body := decodeBody(t, rec)
			assert.Equal(t, string(tt.code), body["code"])
			assert.NotEmpty(t, body["error"])
			if tt.message != "" {
				assert.Equal(t, tt.message, body["error"])
				assert.NotEmpty(t, body["fields"])
			}
		})
	}
}

func TestRecovery_HidesPanicDetails(t *testing.T) {
	s := newTestServer(t, nil, nil, nil)
	s.router.GET("/boom", func(*gin.Context) { panic("secret internals") })

	rec := do(t, s, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, errors.UnexpectedMessage, body["error"])
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestRequestID_Propagated(t *testing.T) {
	s := newTestServer(t, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(requestIDHeader))
}

func TestStats_CountsSuccessfulRuns(t *testing.T) {
	counter := stats.NewMemoryCounter()
	s := newTestServer(t, nil, counter, nil)

	for i := 0; i < 2; i++ {
		rec := do(t, s, http.MethodPost, "/api/lead-spark", `{"leadQuery":"CTO at a SaaS startup"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	do(t, s, http.MethodPost, "/api/lead-spark", `{"leadQuery":"x"}`)

	rec := do(t, s, http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, 2.0, body["total"])
	assert.Equal(t, map[string]interface{}{"lead-spark": 2.0}, body["runs"])
}

func TestRunAgent_CounterFailureDoesNotFailRun(t *testing.T) {
	counter := new(mockCounter)
	counter.On("Increment", mock.Anything, "task-master").Return(int64(0), fmt.Errorf("redis down"))
	s := newTestServer(t, nil, counter, nil)

	rec := do(t, s, http.MethodPost, "/api/task-master", `{"tasks":"Buy milk\nUrgent: file taxes"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	counter.AssertExpectations(t)
}

type staticRunner struct {
	name string
	out  interface{}
}

func (r staticRunner) Name() string { return r.name }

func (r staticRunner) RunJSON(context.Context, []byte) (interface{}, error) {
	return r.out, nil
}

// pinnedSet serves fixed runners ahead of the real agents.
type pinnedSet struct {
	*agents.Set
	runners map[string]simulator.Runner
}

func (p pinnedSet) Lookup(id string) (simulator.Runner, error) {
	if r, ok := p.runners[id]; ok {
		return r, nil
	}
	return p.Set.Lookup(id)
}

func TestRunAgent_UnencodableResponse(t *testing.T) {
	cfg := config.Default()
	set, err := agents.Build(cfg, agents.Deps{Logger: logger.NewTestLogger(t)})
	require.NoError(t, err)

	counter := new(mockCounter)
	s := New(Options{
		Server: cfg.Server,
		App:    cfg.App,
		Agents: pinnedSet{Set: set, runners: map[string]simulator.Runner{
			"finance-tracker": staticRunner{name: "finance-tracker", out: map[string]float64{"totalSpend": math.Inf(1)}},
		}},
		Counter: counter,
		Logger:  logger.NewTestLogger(t),
	})

	rec := do(t, s, http.MethodPost, "/api/finance-tracker", `{"expensesInput":"Rent 100"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, string(errors.ErrCodeUnexpected), body["code"])
	assert.Equal(t, errors.UnexpectedMessage, body["error"])
	counter.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything)
}

func TestStats_CounterFailure(t *testing.T) {
	counter := new(mockCounter)
	counter.On("Snapshot", mock.Anything).Return(nil, fmt.Errorf("redis down"))
	s := newTestServer(t, nil, counter, nil)

	rec := do(t, s, http.MethodGet, "/api/stats", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, errors.UnexpectedMessage, decodeBody(t, rec)["error"])
}

func TestListAgentsAndCard(t *testing.T) {
	s := newTestServer(t, nil, nil, nil)

	rec := do(t, s, http.MethodGet, "/api/agents", "")
	require.Equal(t, http.StatusOK, rec.Code)
	agentsList := decodeBody(t, rec)["agents"].([]interface{})
	assert.Len(t, agentsList, 7)

	rec = do(t, s, http.MethodGet, "/.well-known/agent.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	card := decodeBody(t, rec)
	assert.Equal(t, "agent-demos", card["name"])
	assert.Len(t, card["skills"], 7)
}

func TestHealthAndReady(t *testing.T) {
	s := newTestServer(t, nil, nil, map[string]ReadinessCheck{
		"redis": func(context.Context) error { return nil },
	})
	assert.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/ready", "").Code)

	s = newTestServer(t, nil, nil, map[string]ReadinessCheck{
		"redis": func(context.Context) error { return fmt.Errorf("connection refused") },
	})
	rec := do(t, s, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "connection refused", decodeBody(t, rec)["checks"].(map[string]interface{})["redis"])
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Path = "/metrics"
	}, nil, nil)

	do(t, s, http.MethodGet, "/health", "")
	rec := do(t, s, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestNoRoute(t *testing.T) {
	s := newTestServer(t, nil, nil, nil)
	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/nope", "").Code)
}
