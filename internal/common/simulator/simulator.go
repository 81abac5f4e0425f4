// Package simulator runs the validate → classify → compose → delay pipeline
// shared by every demo agent.
package simulator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"agent-demos/internal/common/errors"
	"agent-demos/internal/common/logger"
	"agent-demos/internal/common/metrics"
	"agent-demos/internal/common/observability"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Stages is the per-agent rule set plugged into a Simulator.
// Classify and Compose must never fail for input that passed Validate.
type Stages[Req, Cls, Resp any] interface {
	Validate(req *Req) error
	Classify(req *Req, rng Rand) Cls
	Compose(req *Req, cls Cls, rng Rand) *Resp
}

// Runner is the type-erased view of a Simulator used by transports.
type Runner interface {
	Name() string
	RunJSON(ctx context.Context, payload []byte) (interface{}, error)
}

// Options carries the collaborators shared by every agent.
type Options struct {
	Rand          Rand
	Delay         Delayer
	Logger        logger.Logger
	Observability *observability.Observability
}

// Simulator is a stateless demo pipeline; it is safe for concurrent use.
type Simulator[Req, Cls, Resp any] struct {
	name   string
	stages Stages[Req, Cls, Resp]
	rng    Rand
	delay  Delayer
	logger logger.Logger
	obs    *observability.Observability
}

func New[Req, Cls, Resp any](name string, stages Stages[Req, Cls, Resp], opts Options) *Simulator[Req, Cls, Resp] {
	if opts.Rand == nil {
		opts.Rand = NewRand()
	}
	if opts.Delay == nil {
		opts.Delay = FixedDelay(DefaultThinkingTime)
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNoOpLogger()
	}
	return &Simulator[Req, Cls, Resp]{
		name:   name,
		stages: stages,
		rng:    opts.Rand,
		delay:  opts.Delay,
		logger: logger.ForAgent(opts.Logger, name),
		obs:    opts.Observability,
	}
}

func (s *Simulator[Req, Cls, Resp]) Name() string {
	return s.name
}

// Run validates req, computes the response and holds it for the configured
// thinking time. Errors are always *errors.StandardError.
func (s *Simulator[Req, Cls, Resp]) Run(ctx context.Context, req *Req) (*Resp, error) {
	start := time.Now()
	metrics.DemoRunsActive.WithLabelValues(s.name).Inc()
	defer metrics.DemoRunsActive.WithLabelValues(s.name).Dec()

	ctx, span := s.obs.StartSpan(ctx, "demo."+s.name, attribute.String("agent", s.name))
	defer span.End()

	resp, err := s.run(ctx, req)
	status := "success"
	if err != nil {
		stdErr := errors.Normalize(err)
		status = string(stdErr.Code)
		metrics.DemoRunsFailed.WithLabelValues(s.name, string(stdErr.Code)).Inc()
		span.SetStatus(codes.Error, string(stdErr.Code))
		s.logFailure(stdErr)
		err = stdErr
	} else {
		metrics.DemoRunsCompleted.WithLabelValues(s.name).Inc()
	}

	elapsed := time.Since(start)
	metrics.DemoRunDuration.WithLabelValues(s.name).Observe(elapsed.Seconds())
	s.obs.RecordRun(ctx, s.name, status)
	s.obs.RecordRunDuration(ctx, s.name, elapsed, status)

	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *Simulator[Req, Cls, Resp]) run(ctx context.Context, req *Req) (*Resp, error) {
	if req == nil {
		return nil, errors.NewInvalidPayloadError(fmt.Errorf("nil request"))
	}
	if err := s.stages.Validate(req); err != nil {
		return nil, err
	}

	resp, err := s.compute(req)
	if err != nil {
		return nil, err
	}

	if err := s.delay.Wait(ctx); err != nil {
		return nil, errors.NewCancelledError(err)
	}
	return resp, nil
}

// compute runs classify and compose, converting panics into UNEXPECTED_ERROR.
func (s *Simulator[Req, Cls, Resp]) compute(req *Req) (resp *Resp, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp, err = nil, errors.NewUnexpectedError(r)
		}
	}()

	cls := s.stages.Classify(req, s.rng)
	s.logger.Debug("input classified", map[string]interface{}{"classification": cls})

	resp = s.stages.Compose(req, cls, s.rng)
	if resp == nil {
		return nil, errors.NewUnexpectedError("composer returned no response")
	}
	return resp, nil
}

// RunJSON decodes payload into the agent's request type and runs it.
func (s *Simulator[Req, Cls, Resp]) RunJSON(ctx context.Context, payload []byte) (interface{}, error) {
	req, err := Decode[Req](payload)
	if err != nil {
		metrics.DemoRunsFailed.WithLabelValues(s.name, string(errors.ErrCodeInvalidPayload)).Inc()
		return nil, err
	}
	return s.Run(ctx, req)
}

// Decode parses a JSON object into T, rejecting unknown fields and trailing data.
func Decode[T any](payload []byte) (*T, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errors.NewInvalidPayloadError(fmt.Errorf("expected a JSON object"))
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()

	var req T
	if err := dec.Decode(&req); err != nil {
		return nil, errors.NewInvalidPayloadError(err)
	}
	if dec.More() {
		return nil, errors.NewInvalidPayloadError(fmt.Errorf("unexpected data after JSON object"))
	}
	return &req, nil
}

func (s *Simulator[Req, Cls, Resp]) logFailure(stdErr *errors.StandardError) {
	fields := map[string]interface{}{
		"errorCode":     string(stdErr.Code),
		"errorCategory": errors.GetErrorCategory(stdErr.Code),
		"details":       stdErr.Details,
	}
	if stdErr.Code == errors.ErrCodeUnexpected {
		s.logger.Error("demo run failed", fields)
		return
	}
	s.logger.Info("demo run rejected", fields)
}

// Disclaimer is attached to every demo response.
const Disclaimer = "This is a simulated demo. Results are generated from fixed rules and templates, not a live AI model."

// Metadata is the fixed trailer carried by every demo response.
type Metadata struct {
	Agent      string `json:"agent"`
	Disclaimer string `json:"disclaimer"`
	Simulated  bool   `json:"simulated"`
}

func NewMetadata(agent string) Metadata {
	return Metadata{Agent: agent, Disclaimer: Disclaimer, Simulated: true}
}
