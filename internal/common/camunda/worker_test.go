package camunda

import (
	"context"
	stderrors "errors"
	"math"
	"testing"
	"time"

	"agent-demos/internal/common/errors"
	"agent-demos/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	payload []byte
	out     interface{}
	err     error
}

func (r *stubRunner) Name() string { return "stub-agent" }

func (r *stubRunner) RunJSON(_ context.Context, payload []byte) (interface{}, error) {
	r.payload = payload
	return r.out, r.err
}

func TestAgentJobHandler_Execute(t *testing.T) {
	runner := &stubRunner{out: map[string]string{"summary": "ok"}}
	h := NewAgentJobHandler(runner, time.Second, logger.NewTestLogger(t))

	vars, err := h.Execute(context.Background(), `{"emailContent":"hello there"}`)
	require.NoError(t, err)
	assert.Equal(t, "stub-agent", vars[VarDemoAgent])
	assert.Equal(t, map[string]string{"summary": "ok"}, vars[VarDemoResponse])
	assert.JSONEq(t, `{"emailContent":"hello there"}`, string(runner.payload))
}

func TestAgentJobHandler_Execute_EmptyVariables(t *testing.T) {
	runner := &stubRunner{out: "x"}
	h := NewAgentJobHandler(runner, time.Second, logger.NewTestLogger(t))

	_, err := h.Execute(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(runner.payload))
}

func TestAgentJobHandler_Execute_Error(t *testing.T) {
	validation := errors.NewValidationError([]errors.FieldError{{Field: "tasks", Message: "tasks is required"}})
	h := NewAgentJobHandler(&stubRunner{err: validation}, time.Second, logger.NewTestLogger(t))

	vars, err := h.Execute(context.Background(), `{}`)
	assert.Nil(t, vars)
	assert.Equal(t, errors.ErrCodeValidationFailed, errors.Code(err))
}

func TestAgentJobHandler_Execute_UnencodableOutput(t *testing.T) {
	runner := &stubRunner{out: map[string]float64{"totalSpend": math.Inf(1)}}
	h := NewAgentJobHandler(runner, time.Second, logger.NewTestLogger(t))

	vars, err := h.Execute(context.Background(), `{}`)
	assert.Nil(t, vars)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUnexpected, errors.Code(err))
	assert.False(t, errors.IsValidation(err))
}

func TestIsRetryableZeebeError(t *testing.T) {
	tests := []struct {
		msg       string
		retryable bool
	}{
		{msg: "rpc error: code = Unavailable desc = connection refused", retryable: true},
		{msg: "context deadline exceeded", retryable: true},
		{msg: "NOT_FOUND: job 42 not found", retryable: false},
		{msg: "permission denied", retryable: false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.retryable, isRetryableZeebeError(stderrors.New(tt.msg)), tt.msg)
	}
}

func TestRetry(t *testing.T) {
	rc := &RetryConfig{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := retry(context.Background(), rc, func(context.Context) error {
			calls++
			if calls < 3 {
				return stderrors.New("unavailable")
			}
			return nil
		}, "topology")
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		calls := 0
		err := retry(context.Background(), rc, func(context.Context) error {
			calls++
			return stderrors.New("connection refused")
		}, "topology")
		require.Error(t, err)
		assert.Equal(t, 4, calls)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("permanent errors are not retried", func(t *testing.T) {
		calls := 0
		err := retry(context.Background(), rc, func(context.Context) error {
			calls++
			return stderrors.New("permission denied")
		}, "topology")
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops when cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		slow := &RetryConfig{MaxRetries: 5, BaseDelay: time.Hour, MaxDelay: time.Hour}

		err := retry(ctx, slow, func(context.Context) error {
			return stderrors.New("timeout")
		}, "topology")
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
