// internal/common/camunda/worker.go
package camunda

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"agent-demos/internal/common/config"
	"agent-demos/internal/common/errors"
	"agent-demos/internal/common/logger"
	"agent-demos/internal/common/simulator"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// Completion variable names.
const (
	VarDemoAgent    = "demoAgent"
	VarDemoResponse = "demoResponse"
)

// AgentJobHandler runs one demo agent for each activated job.
type AgentJobHandler struct {
	runner   simulator.Runner
	errors   *errors.ErrorHandler
	logger   logger.Logger
	fallback time.Duration
}

// NewAgentJobHandler uses fallback as the run timeout for jobs without a deadline.
func NewAgentJobHandler(runner simulator.Runner, fallback time.Duration, log logger.Logger) *AgentJobHandler {
	return &AgentJobHandler{
		runner:   runner,
		errors:   errors.NewErrorHandler(logger.ForAgent(log, runner.Name())),
		logger:   log,
		fallback: fallback,
	}
}

func (h *AgentJobHandler) Handle(client worker.JobClient, job entities.Job) {
	log := logger.ForJob(h.logger, h.runner.Name(), job.GetKey())
	log.Info("processing job", map[string]interface{}{
		"workflowKey": job.GetProcessInstanceKey(),
	})

	ctx, cancel := h.jobContext(job)
	defer cancel()

	vars, err := h.Execute(ctx, job.GetVariables())
	if err != nil {
		h.errors.HandleJobError(context.Background(), client, job, err)
		return
	}

	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.GetKey()).
		VariablesFromMap(vars)
	if err != nil {
		h.errors.HandleJobError(context.Background(), client, job, errors.NewUnexpectedError(err))
		return
	}
	if _, err := cmd.Send(context.Background()); err != nil {
		log.Error("failed to send complete job command", map[string]interface{}{"error": err.Error()})
	}
}

// Execute runs the agent on the job variables and returns the completion variables.
func (h *AgentJobHandler) Execute(ctx context.Context, variables string) (map[string]interface{}, error) {
	if variables == "" {
		variables = "{}"
	}
	out, err := h.runner.RunJSON(ctx, []byte(variables))
	if err != nil {
		return nil, err
	}
	if _, err := json.Marshal(out); err != nil {
		return nil, errors.NewUnexpectedError(err)
	}
	return map[string]interface{}{
		VarDemoAgent:    h.runner.Name(),
		VarDemoResponse: out,
	}, nil
}

func (h *AgentJobHandler) jobContext(job entities.Job) (context.Context, context.CancelFunc) {
	if deadline := job.GetDeadline(); deadline > 0 {
		return context.WithDeadline(context.Background(), time.UnixMilli(deadline))
	}
	return context.WithTimeout(context.Background(), h.fallback)
}

// Workers owns the job workers opened against one Zeebe client.
type Workers struct {
	client  zbc.Client
	cfg     config.CamundaConfig
	logger  logger.Logger
	mu      sync.Mutex
	workers map[string]worker.JobWorker
}

func NewWorkers(client zbc.Client, cfg config.CamundaConfig, log logger.Logger) *Workers {
	return &Workers{
		client:  client,
		cfg:     cfg,
		logger:  log,
		workers: make(map[string]worker.JobWorker),
	}
}

// Register opens a worker for taskType. Only the named variables are fetched
// so unrelated process variables never reach the agent's strict decoder.
func (w *Workers) Register(taskType string, variables []string, handler worker.JobHandler) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.workers[taskType]; exists {
		return fmt.Errorf("worker for %s already registered", taskType)
	}

	jobWorker := w.client.NewJobWorker().
		JobType(taskType).
		Handler(handler).
		Name("agent-demos").
		MaxJobsActive(w.cfg.MaxJobsActive).
		Timeout(config.GetDuration(w.cfg.Timeout)).
		RequestTimeout(config.GetDuration(w.cfg.RequestTimeout)).
		FetchVariables(variables...).
		Open()

	w.workers[taskType] = jobWorker
	w.logger.Info("worker started", map[string]interface{}{
		"taskType":      taskType,
		"maxJobsActive": w.cfg.MaxJobsActive,
		"timeoutMs":     w.cfg.Timeout,
	})
	return nil
}

// TaskTypes lists the registered job types.
func (w *Workers) TaskTypes() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	types := make([]string, 0, len(w.workers))
	for t := range w.workers {
		types = append(types, t)
	}
	return types
}

// Close stops every worker and waits for in-flight jobs.
func (w *Workers) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for taskType, jw := range w.workers {
		w.logger.Info("stopping worker", map[string]interface{}{"taskType": taskType})
		jw.Close()
		jw.AwaitClose()
	}
	w.workers = make(map[string]worker.JobWorker)
}
