package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"github.com/sortviz/sortviz/internal/config"
	"github.com/sortviz/sortviz/pkg/generate"
	"github.com/sortviz/sortviz/pkg/step"
	"github.com/sortviz/sortviz/pkg/trace"
)

// reportFileName is the HTML report file written into the output directory.
const reportFileName = "report.html"

// allAlgorithms selects every supported algorithm for the report.
const allAlgorithms = "all"

// Chart dimensions.
const (
	chartWidth  = "900px"
	chartHeight = "420px"
)

// outputDirPerm is the mode for the created report directory.
const outputDirPerm = 0o755

// RenderCommand holds the flags for the render command.
type RenderCommand struct {
	algorithms string
	input      inputFlags
	configPath string
	outputDir  string
	tracePath  string
}

// NewRenderCommand creates the render command: generate traces and render
// their statistics as an HTML report with interactive charts.
func NewRenderCommand() *cobra.Command {
	renderCmd := &RenderCommand{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render trace statistics as an HTML report",
		Long: `Generate traces over the same input and render an HTML report: one
cumulative comparison/swap chart per algorithm, plus the final sorted
array. Pass --algorithm all to compare every supported algorithm, or
--trace to chart an existing trace file instead of generating one.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderCmd.Execute(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&renderCmd.algorithms, "algorithm", "a", "", "algorithm, comma-separated list, or \"all\"")
	cmd.Flags().StringVar(&renderCmd.input.values, "values", "", "comma-separated input values (overrides generation)")
	cmd.Flags().IntVar(&renderCmd.input.size, "size", 0, "generated input size (default from config)")
	cmd.Flags().Int64Var(&renderCmd.input.seed, "seed", 0, "generation seed (default from config)")
	cmd.Flags().StringVar(&renderCmd.input.shape, "shape", "", "input shape: random, sorted, reversed, nearly_sorted")
	cmd.Flags().StringVar(&renderCmd.configPath, "config", "", "config file path")
	cmd.Flags().StringVarP(&renderCmd.outputDir, "output", "o", "", "report output directory (default from config)")
	cmd.Flags().StringVar(&renderCmd.tracePath, "trace", "", "chart an existing trace file instead of generating")

	return cmd
}

// Execute generates the requested traces and writes the HTML report.
func (c *RenderCommand) Execute(out io.Writer) error {
	cfg, cfgErr := config.Load(c.configPath)
	if cfgErr != nil {
		return fmt.Errorf("load config: %w", cfgErr)
	}

	outputDir := c.outputDir
	if outputDir == "" {
		outputDir = cfg.Render.OutputDir
	}

	mkdirErr := os.MkdirAll(outputDir, outputDirPerm)
	if mkdirErr != nil {
		return fmt.Errorf("create output dir: %w", mkdirErr)
	}

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)

	chartCount := 0

	if c.tracePath != "" {
		t, loadErr := trace.LoadValidated(c.tracePath)
		if loadErr != nil {
			return fmt.Errorf("load trace: %w", loadErr)
		}

		page.AddCharts(buildStatsChart(generate.Algorithm(t.Algorithm), t.Steps))
		page.AddCharts(buildSnapshotChart(t.Steps))

		chartCount = 1
	} else {
		values, valuesErr := resolveValues(&c.input, cfg)
		if valuesErr != nil {
			return valuesErr
		}

		algorithms := c.selectAlgorithms(cfg)

		for _, alg := range algorithms {
			steps := generate.Generate(alg, values)
			page.AddCharts(buildStatsChart(alg, steps))
		}

		// The final array is the same for every algorithm; chart it once
		// using the last requested trace.
		finalSteps := generate.Generate(algorithms[len(algorithms)-1], values)
		page.AddCharts(buildSnapshotChart(finalSteps))

		chartCount = len(algorithms)
	}

	reportPath := filepath.Join(outputDir, reportFileName)

	file, createErr := os.Create(reportPath)
	if createErr != nil {
		return fmt.Errorf("create report file: %w", createErr)
	}
	defer file.Close()

	renderErr := page.Render(file)
	if renderErr != nil {
		return fmt.Errorf("render report: %w", renderErr)
	}

	fmt.Fprintf(out, "Wrote report for %d algorithm(s) to %s\n", chartCount, reportPath)

	return nil
}

// selectAlgorithms resolves the --algorithm flag into a non-empty list.
func (c *RenderCommand) selectAlgorithms(cfg *config.Config) []generate.Algorithm {
	raw := c.algorithms
	if raw == "" {
		raw = cfg.Playback.Algorithm
	}

	if raw == allAlgorithms {
		return generate.Algorithms()
	}

	var algorithms []generate.Algorithm

	for _, part := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}

		algorithms = append(algorithms, generate.Parse(trimmed))
	}

	if len(algorithms) == 0 {
		algorithms = []generate.Algorithm{generate.DefaultAlgorithm}
	}

	return algorithms
}

// buildStatsChart plots cumulative comparisons and swaps over the step index.
func buildStatsChart(alg generate.Algorithm, steps []step.Step) *charts.Line {
	labels := make([]string, len(steps))
	comparisons := make([]opts.LineData, len(steps))
	swaps := make([]opts.LineData, len(steps))

	for i := range steps {
		labels[i] = strconv.Itoa(steps[i].ID)
		comparisons[i] = opts.LineData{Value: steps[i].Stats.Comparisons}
		swaps[i] = opts.LineData{Value: steps[i].Stats.Swaps}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s: cumulative work", alg),
			Subtitle: fmt.Sprintf("%d steps", len(steps)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Step"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Count"}),
	)

	line.SetXAxis(labels)
	line.AddSeries("Comparisons", comparisons,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
	)
	line.AddSeries("Swaps", swaps,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
	)

	return line
}

// buildSnapshotChart plots the final array snapshot as a bar chart.
func buildSnapshotChart(steps []step.Step) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Final array"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Index"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Value"}),
	)

	if len(steps) == 0 {
		return bar
	}

	snapshot := steps[len(steps)-1].Snapshot
	labels := make([]string, len(snapshot))
	data := make([]opts.BarData, len(snapshot))

	for i, element := range snapshot {
		labels[i] = strconv.Itoa(i)
		data[i] = opts.BarData{Value: element.Value}
	}

	bar.SetXAxis(labels)
	bar.AddSeries("Value", data)

	return bar
}
