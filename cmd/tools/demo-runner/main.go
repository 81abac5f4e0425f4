// cmd/tools/demo-runner/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"agent-demos/internal/agents"
	"agent-demos/internal/common/config"
	"agent-demos/internal/common/errors"
	"agent-demos/internal/common/logger"
	"agent-demos/internal/common/simulator"

	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "demo-runner",
		Short:         "Run the simulated agent demos from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (defaults to built-in settings)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "error", "Log level for agent logs written to stderr")

	root.AddCommand(newListCmd(), newRunCmd(), newCatalogCmd())
	return root
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(configPath)
}

func newListCmd() *cobra.Command {
	var examples bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available agents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return listAgents(cmd.OutOrStdout(), cfg, examples)
		},
	}
	cmd.Flags().BoolVar(&examples, "examples", false, "Print an example request body for each agent")
	return cmd
}

func listAgents(w io.Writer, cfg *config.Config, examples bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTASK TYPE\tENABLED\tDESCRIPTION")
	for _, def := range agents.Definitions() {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", def.ID, def.TaskType, config.IsAgentEnabled(cfg, def.ID), def.Description)
		if examples {
			fmt.Fprintf(tw, "\t%s\t\t\n", def.Example)
		}
	}
	return tw.Flush()
}

type runOptions struct {
	input   string
	file    string
	seed    uint64
	delay   time.Duration
	seeded  bool
	compact bool
}

func newRunCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run <agent>",
		Short: "Run one agent on a JSON request",
		Example: `  demo-runner run inbox-zero --input '{"emailContent":"urgent: deadline EOD"}'
  demo-runner run shop-smart --file request.json --seed 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.seeded = cmd.Flags().Changed("seed")
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runAgent(cmd.Context(), cmd.OutOrStdout(), cfg, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.input, "input", "", "Request body as a JSON string")
	cmd.Flags().StringVar(&opts.file, "file", "", "Path to a file holding the request body")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for reproducible output")
	cmd.Flags().DurationVar(&opts.delay, "delay", 0, "Simulated thinking time")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "Print single-line JSON")
	cmd.MarkFlagsMutuallyExclusive("input", "file")
	return cmd
}

func runAgent(ctx context.Context, w io.Writer, cfg *config.Config, agentID string, opts runOptions) error {
	payload, err := readPayload(opts)
	if err != nil {
		return err
	}

	setDelay(cfg, opts.delay)
	deps := agents.Deps{Logger: logger.NewStructured(logLevel, "console")}
	if opts.seeded {
		deps.Rand = simulator.NewSeededRand(opts.seed)
	}

	set, err := agents.Build(cfg, deps)
	if err != nil {
		return err
	}
	runner, err := set.Lookup(agentID)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	out, err := runner.RunJSON(ctx, payload)
	if err != nil {
		stdErr := errors.Normalize(err)
		_ = writeJSON(w, map[string]interface{}{"error": stdErr.PublicMessage(), "code": stdErr.Code}, opts.compact)
		return fmt.Errorf("%s: %s", agentID, stdErr.Code)
	}
	return writeJSON(w, out, opts.compact)
}

func readPayload(opts runOptions) ([]byte, error) {
	switch {
	case opts.file != "":
		return os.ReadFile(opts.file)
	case opts.input != "":
		return []byte(opts.input), nil
	default:
		return nil, fmt.Errorf("one of --input or --file is required")
	}
}

// setDelay applies d to every agent, overriding per-agent delays.
func setDelay(cfg *config.Config, d time.Duration) {
	ms := int(d / time.Millisecond)
	cfg.Simulator.DelayMs = ms
	for id, ac := range cfg.Agents {
		ac.DelayMs = &ms
		cfg.Agents[id] = ac
	}
}

func writeJSON(w io.Writer, v interface{}, compact bool) error {
	enc := json.NewEncoder(w)
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func newCatalogCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Write the agent registry as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			set, err := agents.Build(cfg, agents.Deps{})
			if err != nil {
				return err
			}
			if err := set.Registry().Save(out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d agents to %s\n", len(set.Enabled()), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "configs/agent-registry.json", "Where to write the registry")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
