package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/sortviz/sortviz/internal/config"
	"github.com/sortviz/sortviz/pkg/generate"
	"github.com/sortviz/sortviz/pkg/safeconv"
	"github.com/sortviz/sortviz/pkg/trace"
)

// defaultTraceOutput is the output path used when -o is not given.
const defaultTraceOutput = "trace.json"

// TraceCommand holds the flags for the trace command.
type TraceCommand struct {
	algorithm  string
	input      inputFlags
	configPath string
	output     string
}

// NewTraceCommand creates the trace command: generate a trace and write it
// to a file. The codec follows the output extension (.json, .yaml, .json.lz4).
func NewTraceCommand() *cobra.Command {
	traceCmd := &TraceCommand{}

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Export a generated sorting trace to a file",
		Long: `Generate the full step trace for a sorting algorithm and write it to a
file. The serialization format is picked from the output extension:
.json, .yaml, or .json.lz4.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return traceCmd.Execute(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&traceCmd.algorithm, "algorithm", "a", "", "sorting algorithm (bubble, selection, insertion, quicksort)")
	cmd.Flags().StringVar(&traceCmd.input.values, "values", "", "comma-separated input values (overrides generation)")
	cmd.Flags().IntVar(&traceCmd.input.size, "size", 0, "generated input size (default from config)")
	cmd.Flags().Int64Var(&traceCmd.input.seed, "seed", 0, "generation seed (default from config)")
	cmd.Flags().StringVar(&traceCmd.input.shape, "shape", "", "input shape: random, sorted, reversed, nearly_sorted")
	cmd.Flags().StringVar(&traceCmd.configPath, "config", "", "config file path")
	cmd.Flags().StringVarP(&traceCmd.output, "output", "o", defaultTraceOutput, "output trace file path")

	return cmd
}

// Execute generates the trace and saves it to the output path.
func (c *TraceCommand) Execute(out io.Writer) error {
	cfg, cfgErr := config.Load(c.configPath)
	if cfgErr != nil {
		return fmt.Errorf("load config: %w", cfgErr)
	}

	algorithmID := c.algorithm
	if algorithmID == "" {
		algorithmID = cfg.Playback.Algorithm
	}

	alg := generate.Parse(algorithmID)

	values, valuesErr := resolveValues(&c.input, cfg)
	if valuesErr != nil {
		return valuesErr
	}

	start := time.Now()
	steps := generate.Generate(alg, values)
	elapsed := time.Since(start)

	t := &trace.Trace{
		Algorithm: string(alg),
		Input:     values,
		Steps:     steps,
	}

	saveErr := trace.Save(c.output, t)
	if saveErr != nil {
		return fmt.Errorf("save trace: %w", saveErr)
	}

	slog.Debug("trace exported", "algorithm", alg, "steps", len(steps), "path", c.output, "elapsed", elapsed)

	size := fileSize(c.output)

	fmt.Fprintf(out, "Wrote %d steps to %s (%s)\n", len(steps), c.output, humanize.IBytes(size))

	return nil
}

// fileSize returns the size of a file in bytes, zero if it cannot be read.
func fileSize(path string) uint64 {
	info, statErr := os.Stat(path)
	if statErr != nil {
		return 0
	}

	return safeconv.MustInt64ToUint64(info.Size())
}
