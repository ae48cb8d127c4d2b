package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sortviz/sortviz/internal/config"
	"github.com/sortviz/sortviz/pkg/generate"
	"github.com/sortviz/sortviz/pkg/playback"
	"github.com/sortviz/sortviz/pkg/step"
)

// RunCommand holds the flags for the run command.
type RunCommand struct {
	algorithm  string
	input      inputFlags
	configPath string
	play       bool
	interval   time.Duration
	noColor    bool
}

// NewRunCommand creates the run command: generate a trace, print its
// summary, and optionally replay it step by step at the playback interval.
func NewRunCommand() *cobra.Command {
	runCmd := &RunCommand{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a sorting trace and print its summary",
		Long: `Generate the full step trace for a sorting algorithm over an input array.

The input comes from --values, or is generated from --size/--seed/--shape.
With --play the trace is replayed live, one step per interval.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd.Execute(cmd.Context(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&runCmd.algorithm, "algorithm", "a", "", "sorting algorithm (bubble, selection, insertion, quicksort)")
	cmd.Flags().StringVar(&runCmd.input.values, "values", "", "comma-separated input values (overrides generation)")
	cmd.Flags().IntVar(&runCmd.input.size, "size", 0, "generated input size (default from config)")
	cmd.Flags().Int64Var(&runCmd.input.seed, "seed", 0, "generation seed (default from config)")
	cmd.Flags().StringVar(&runCmd.input.shape, "shape", "", "input shape: random, sorted, reversed, nearly_sorted")
	cmd.Flags().StringVar(&runCmd.configPath, "config", "", "config file path")
	cmd.Flags().BoolVar(&runCmd.play, "play", false, "replay the trace live after generating it")
	cmd.Flags().DurationVar(&runCmd.interval, "interval", 0, "playback tick interval (default from config)")
	cmd.Flags().BoolVar(&runCmd.noColor, "no-color", false, "disable colored output")

	return cmd
}

// Execute generates the trace and writes the summary, replaying it when
// requested.
func (c *RunCommand) Execute(ctx context.Context, out io.Writer) error {
	if c.noColor {
		color.NoColor = true
	}

	cfg, cfgErr := config.Load(c.configPath)
	if cfgErr != nil {
		return fmt.Errorf("load config: %w", cfgErr)
	}

	algorithmID := c.algorithm
	if algorithmID == "" {
		algorithmID = cfg.Playback.Algorithm
	}

	alg := generate.Parse(algorithmID)
	if string(alg) != algorithmID {
		slog.Warn("unknown algorithm, using fallback", "requested", algorithmID, "fallback", alg)
	}

	values, valuesErr := resolveValues(&c.input, cfg)
	if valuesErr != nil {
		return valuesErr
	}

	start := time.Now()
	steps := generate.Generate(alg, values)
	elapsed := time.Since(start)

	slog.Debug("trace generated", "algorithm", alg, "input_size", len(values), "steps", len(steps), "elapsed", elapsed)

	totals := step.Stats{}
	if len(steps) > 0 {
		totals = steps[len(steps)-1].Stats
	}

	writeSummary(out, summary{
		Algorithm: string(alg),
		InputSize: len(values),
		StepCount: len(steps),
		Totals:    totals,
		Elapsed:   elapsed,
	})

	if !c.play {
		return nil
	}

	interval := c.interval
	if interval <= 0 {
		interval = cfg.Playback.Interval
	}

	return replaySteps(ctx, out, steps, interval)
}

// replaySteps drives a live replay of the steps, printing one line per tick
// until the trace completes.
func replaySteps(ctx context.Context, out io.Writer, steps []step.Step, interval time.Duration) error {
	if len(steps) == 0 {
		return nil
	}

	engine := playback.NewEngine()
	engine.Load(steps)

	driver := playback.NewDriver(engine, interval)

	done := make(chan struct{})

	driver.AfterAdvance = func() {
		writeStepLine(out, engine.Cursor(), engine.StepCount(), engine.CurrentStep())

		if engine.Mode() == playback.ModeComplete {
			close(done)
		}
	}

	engine.Play()
	driver.Start(ctx)

	select {
	case <-done:
	case <-ctx.Done():
	}

	driver.Stop()

	return ctx.Err()
}
