// Package trace handles step sequences as interchange artifacts: saving and
// loading them as files, and validating traces from external sources before
// they are allowed into the playback engine. A trace that fails validation
// is rejected with a descriptive error, never silently played.
package trace

import (
	"github.com/sortviz/sortviz/pkg/step"
)

// Trace is a complete step sequence together with its provenance: which
// algorithm produced it and over which input. External sources (such as a
// sandboxed code runner) may supply a Trace from anywhere, as long as it
// passes Validate.
type Trace struct {
	Algorithm string      `json:"algorithm" yaml:"algorithm"`
	Input     []int       `json:"input"     yaml:"input"`
	Steps     []step.Step `json:"steps"     yaml:"steps"`
}

// TotalStats returns the cumulative stats of the final step.
func (t *Trace) TotalStats() step.Stats {
	if len(t.Steps) == 0 {
		return step.Stats{}
	}

	return t.Steps[len(t.Steps)-1].Stats
}
