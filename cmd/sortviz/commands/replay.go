package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sortviz/sortviz/internal/config"
	"github.com/sortviz/sortviz/pkg/trace"
)

// ReplayCommand holds the flags for the replay command.
type ReplayCommand struct {
	configPath string
	list       bool
	play       bool
	interval   time.Duration
	noColor    bool
}

// NewReplayCommand creates the replay command: validate an externally
// produced trace file and replay it. Validation runs before any step is
// shown; an invalid trace is rejected with the failing invariant.
func NewReplayCommand() *cobra.Command {
	replayCmd := &ReplayCommand{}

	cmd := &cobra.Command{
		Use:   "replay <trace-file>",
		Short: "Validate and replay a trace file",
		Long: `Load a trace file produced by this tool or by an external source,
validate it against the trace schema and the structural invariants, and
print its summary. With --list every step is printed; with --play the
trace is replayed live at the playback interval.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return replayCmd.Execute(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}

	cmd.Flags().StringVar(&replayCmd.configPath, "config", "", "config file path")
	cmd.Flags().BoolVar(&replayCmd.list, "list", false, "print every step of the trace")
	cmd.Flags().BoolVar(&replayCmd.play, "play", false, "replay the trace live")
	cmd.Flags().DurationVar(&replayCmd.interval, "interval", 0, "playback tick interval (default from config)")
	cmd.Flags().BoolVar(&replayCmd.noColor, "no-color", false, "disable colored output")

	return cmd
}

// Execute loads and validates the trace file, then prints or replays it.
func (c *ReplayCommand) Execute(ctx context.Context, out io.Writer, path string) error {
	if c.noColor {
		color.NoColor = true
	}

	cfg, cfgErr := config.Load(c.configPath)
	if cfgErr != nil {
		return fmt.Errorf("load config: %w", cfgErr)
	}

	t, loadErr := trace.LoadValidated(path)
	if loadErr != nil {
		return fmt.Errorf("load trace: %w", loadErr)
	}

	writeSummary(out, summary{
		Algorithm: t.Algorithm,
		InputSize: len(t.Input),
		StepCount: len(t.Steps),
		Totals:    t.TotalStats(),
	})

	if c.list {
		for i := range t.Steps {
			writeStepLine(out, i, len(t.Steps), &t.Steps[i])
		}
	}

	if !c.play {
		return nil
	}

	interval := c.interval
	if interval <= 0 {
		interval = cfg.Playback.Interval
	}

	return replaySteps(ctx, out, t.Steps, interval)
}
