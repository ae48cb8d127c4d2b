package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sortviz/sortviz/pkg/step"
)

// summary holds the figures printed after a trace is generated or loaded.
type summary struct {
	Algorithm string
	InputSize int
	StepCount int
	Totals    step.Stats
	Elapsed   time.Duration
}

// writeSummary renders the trace summary as a borderless table.
func writeSummary(w io.Writer, s summary) {
	heading := color.New(color.FgCyan, color.Bold).Sprint(s.Algorithm)

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateHeader = false

	tbl.AppendRow(table.Row{"Algorithm", heading})
	tbl.AppendRow(table.Row{"Input size", humanize.Comma(int64(s.InputSize))})
	tbl.AppendRow(table.Row{"Steps", humanize.Comma(int64(s.StepCount))})
	tbl.AppendRow(table.Row{"Comparisons", humanize.Comma(int64(s.Totals.Comparisons))})
	tbl.AppendRow(table.Row{"Swaps", humanize.Comma(int64(s.Totals.Swaps))})

	if s.Elapsed > 0 {
		tbl.AppendRow(table.Row{"Generated in", s.Elapsed.String()})
	}

	fmt.Fprintln(w, tbl.Render())
}

// writeStepLine renders one step as a compact single-line entry.
func writeStepLine(w io.Writer, index, total int, s *step.Step) {
	if s == nil {
		return
	}

	fmt.Fprintf(w, "%4d/%d  %-12s %s\n", index+1, total, s.Type, s.Description)
}
