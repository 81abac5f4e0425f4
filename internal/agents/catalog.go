// Package agents assembles the demo agents into runnable simulators and the
// public agent registry.
package agents

import (
	"fmt"

	"agent-demos/internal/agents/contentcraft"
	"agent-demos/internal/agents/financetracker"
	"agent-demos/internal/agents/inboxzero"
	"agent-demos/internal/agents/leadspark"
	"agent-demos/internal/agents/schedulesync"
	"agent-demos/internal/agents/shopsmart"
	"agent-demos/internal/agents/taskmaster"
	"agent-demos/internal/common/config"
	"agent-demos/internal/common/errors"
	"agent-demos/internal/common/logger"
	"agent-demos/internal/common/observability"
	"agent-demos/internal/common/simulator"
	"agent-demos/internal/common/validation"
	"agent-demos/pkg/registry"
)

type buildFunc func(settings map[string]interface{}, opts simulator.Options) (simulator.Runner, error)

// Definition describes one demo agent.
type Definition struct {
	ID          string
	DisplayName string
	Description string
	Category    string
	TaskType    string
	Tags        []string
	Schema      validation.JSONSchema
	// Example is a valid JSON request body.
	Example     string

	build buildFunc
}

func builder[C, Req, Cls, Resp any](
	load func(map[string]interface{}) (C, error),
	newSim func(C, simulator.Options) *simulator.Simulator[Req, Cls, Resp],
) buildFunc {
	return func(settings map[string]interface{}, opts simulator.Options) (simulator.Runner, error) {
		cfg, err := load(settings)
		if err != nil {
			return nil, err
		}
		return newSim(cfg, opts), nil
	}
}

var definitions = []Definition{
	{
		ID:          inboxzero.AgentID,
		DisplayName: "InboxZero",
		Description: "Summarizes an email, sorts it into a category and drafts a reply.",
		Category:    "productivity",
		TaskType:    inboxzero.TaskType,
		Tags:        []string{"email", "triage"},
		Schema:      inboxzero.GetInputSchema(),
		Example:     `{"emailContent":"Subject: urgent deadline EOD, please review the attached deck"}`,
		build:       builder(inboxzero.LoadConfig, inboxzero.NewSimulator),
	},
	{
		ID:          leadspark.AgentID,
		DisplayName: "LeadSpark",
		Description: "Scores a sales lead from a LinkedIn URL or a short description.",
		Category:    "sales",
		TaskType:    leadspark.TaskType,
		Tags:        []string{"sales", "leads", "scoring"},
		Schema:      leadspark.GetInputSchema(),
		Example:     `{"leadQuery":"CTO at a funded SaaS startup in London"}`,
		build:       builder(leadspark.LoadConfig, leadspark.NewSimulator),
	},
	{
		ID:          contentcraft.AgentID,
		DisplayName: "ContentCraft",
		Description: "Drafts a blog post, caption, product description or email from a prompt.",
		Category:    "marketing",
		TaskType:    contentcraft.TaskType,
		Tags:        []string{"content", "copywriting"},
		Schema:      contentcraft.GetInputSchema(),
		Example:     `{"prompt":"Launching our reusable coffee cup","contentType":"socialMediaCaption"}`,
		build:       builder(contentcraft.LoadConfig, contentcraft.NewSimulator),
	},
	{
		ID:          schedulesync.AgentID,
		DisplayName: "ScheduleSync",
		Description: "Proposes a meeting slot, agenda and confirmation for a request.",
		Category:    "productivity",
		TaskType:    schedulesync.TaskType,
		Tags:        []string{"calendar", "meetings"},
		Schema:      schedulesync.GetInputSchema(),
		Example:     `{"preferredDays":"Mon or Wed","attendeeEmails":"ana@example.com, raj@example.com","meetingTopic":"Q3 roadmap review"}`,
		build:       builder(schedulesync.LoadConfig, schedulesync.NewSimulator),
	},
	{
		ID:          taskmaster.AgentID,
		DisplayName: "TaskMaster",
		Description: "Prioritizes a task list into high, medium and low.",
		Category:    "productivity",
		TaskType:    taskmaster.TaskType,
		Tags:        []string{"tasks", "planning"},
		Schema:      taskmaster.GetInputSchema(),
		Example:     `{"tasks":"- Send the client proposal by Friday\n- Buy groceries\n- Urgent: fix the login bug"}`,
		build:       builder(taskmaster.LoadConfig, taskmaster.NewSimulator),
	},
	{
		ID:          financetracker.AgentID,
		DisplayName: "FinanceTracker",
		Description: "Categorizes a list of expenses and suggests where to save.",
		Category:    "finance",
		TaskType:    financetracker.TaskType,
		Tags:        []string{"finance", "budgeting"},
		Schema:      financetracker.GetInputSchema(),
		Example:     `{"expensesInput":"Uber ₹300\nSwiggy ₹500"}`,
		build:       builder(financetracker.LoadConfig, financetracker.NewSimulator),
	},
	{
		ID:          shopsmart.AgentID,
		DisplayName: "ShopSmart",
		Description: "Recommends products from a fixed catalog for a shopper's interest.",
		Category:    "commerce",
		TaskType:    shopsmart.TaskType,
		Tags:        []string{"shopping", "recommendations"},
		Schema:      shopsmart.GetInputSchema(),
		Example:     `{"productInterest":"tech gadgets","ageGroup":"teen","gender":"any"}`,
		build:       builder(shopsmart.LoadConfig, shopsmart.NewSimulator),
	},
}

// Definitions returns every known agent, enabled or not.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

var errorCodes = []string{
	string(errors.ErrCodeValidationFailed),
	string(errors.ErrCodeInvalidPayload),
	string(errors.ErrCodeRequestCancelled),
	string(errors.ErrCodeUnexpected),
}

// Deps are the collaborators shared by every runner.
type Deps struct {
	Logger        logger.Logger
	Observability *observability.Observability
	// Rand overrides the random source derived from simulator.seed.
	Rand simulator.Rand
}

// Set holds the runners for the enabled agents.
type Set struct {
	version string
	enabled []Definition
	runners map[string]simulator.Runner
}

// Build loads every enabled agent's settings and creates its simulator.
func Build(cfg *config.Config, deps Deps) (*Set, error) {
	if deps.Logger == nil {
		deps.Logger = logger.NewNoOpLogger()
	}
	rng := deps.Rand
	if rng == nil {
		if cfg.Simulator.Seed != 0 {
			rng = simulator.NewSeededRand(cfg.Simulator.Seed)
		} else {
			rng = simulator.NewRand()
		}
	}

	set := &Set{
		version: cfg.App.Version,
		runners: make(map[string]simulator.Runner, len(definitions)),
	}
	for _, def := range definitions {
		if !config.IsAgentEnabled(cfg, def.ID) {
			deps.Logger.Info("agent disabled", map[string]interface{}{"agent": def.ID})
			continue
		}
		runner, err := def.build(config.GetAgentConfig(cfg, def.ID).Settings, simulator.Options{
			Rand:          rng,
			Delay:         simulator.DelayFor(config.AgentDelay(cfg, def.ID)),
			Logger:        deps.Logger,
			Observability: deps.Observability,
		})
		if err != nil {
			return nil, fmt.Errorf("build agent %s: %w", def.ID, err)
		}
		set.enabled = append(set.enabled, def)
		set.runners[def.ID] = runner
	}
	return set, nil
}

// Lookup returns the runner for id, or AGENT_NOT_FOUND / AGENT_DISABLED.
func (s *Set) Lookup(id string) (simulator.Runner, error) {
	if r, ok := s.runners[id]; ok {
		return r, nil
	}
	for _, def := range definitions {
		if def.ID == id {
			return nil, errors.NewAgentDisabledError(id)
		}
	}
	return nil, errors.NewAgentNotFoundError(id)
}

// Enabled lists the enabled agents in catalog order.
func (s *Set) Enabled() []Definition {
	out := make([]Definition, len(s.enabled))
	copy(out, s.enabled)
	return out
}

// Registry describes the enabled agents for /api/agents and the agent card.
func (s *Set) Registry() *registry.Registry {
	reg := &registry.Registry{
		Version: s.version,
		Agents:  make([]registry.Agent, 0, len(s.enabled)),
	}
	for _, def := range s.enabled {
		reg.Agents = append(reg.Agents, registry.Agent{
			ID:          def.ID,
			DisplayName: def.DisplayName,
			Description: def.Description,
			Category:    def.Category,
			Version:     s.version,
			TaskType:    def.TaskType,
			Endpoint:    "/api/" + def.ID,
			InputSchema: def.Schema.ToMap(),
			ErrorCodes:  errorCodes,
			Tags:        def.Tags,
		})
	}
	return reg
}
