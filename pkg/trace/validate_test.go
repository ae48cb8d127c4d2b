package trace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sortviz/sortviz/pkg/generate"
	"github.com/sortviz/sortviz/pkg/step"
	"github.com/sortviz/sortviz/pkg/trace"
)

func generatedTrace(t *testing.T, alg generate.Algorithm, input []int) *trace.Trace {
	t.Helper()

	return &trace.Trace{
		Algorithm: string(alg),
		Input:     input,
		Steps:     generate.Generate(alg, input),
	}
}

func TestValidate_AcceptsGeneratedTraces(t *testing.T) {
	t.Parallel()

	inputs := [][]int{
		{},
		{1},
		{2, 1},
		{3, 1, 2},
		{5, 5, 1, 9, 2, 2},
		{9, 8, 7, 6, 5, 4, 3, 2, 1},
	}

	for _, alg := range generate.Algorithms() {
		for _, input := range inputs {
			tr := generatedTrace(t, alg, input)
			require.NoError(t, tr.Validate(), "algorithm %s input %v", alg, input)
		}
	}
}

func TestValidate_EmptyTrace(t *testing.T) {
	t.Parallel()

	tr := &trace.Trace{Algorithm: "bubble"}

	assert.ErrorIs(t, tr.Validate(), trace.ErrEmptyTrace)
}

func TestValidate_RejectsCorruptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		corrupt func(tr *trace.Trace)
		wantErr error
	}{
		{
			name:    "non-dense step IDs",
			corrupt: func(tr *trace.Trace) { tr.Steps[1].ID = 5 },
			wantErr: trace.ErrStepID,
		},
		{
			name:    "unknown step type",
			corrupt: func(tr *trace.Trace) { tr.Steps[0].Type = "shuffle" },
			wantErr: trace.ErrUnknownStepType,
		},
		{
			name:    "unknown element state",
			corrupt: func(tr *trace.Trace) { tr.Steps[0].Snapshot[0].State = "glowing" },
			wantErr: trace.ErrUnknownElementState,
		},
		{
			name:    "truncated snapshot",
			corrupt: func(tr *trace.Trace) { tr.Steps[2].Snapshot = tr.Steps[2].Snapshot[:1] },
			wantErr: trace.ErrSnapshotShape,
		},
		{
			name:    "mutated value breaks the multiset",
			corrupt: func(tr *trace.Trace) { tr.Steps[2].Snapshot[0].Value = 999 },
			wantErr: trace.ErrValueMultiset,
		},
		{
			name:    "comparison counter skips",
			corrupt: func(tr *trace.Trace) { tr.Steps[0].Stats.Comparisons = 7 },
			wantErr: trace.ErrStats,
		},
		{
			name:    "swap counter decreases",
			corrupt: func(tr *trace.Trace) { tr.Steps[3].Stats.Swaps = 0 },
			wantErr: trace.ErrStats,
		},
		{
			name:    "index out of range",
			corrupt: func(tr *trace.Trace) { tr.Steps[0].Indices = []int{0, 42} },
			wantErr: trace.ErrIndexOutOfRange,
		},
		{
			name:    "highlight out of range",
			corrupt: func(tr *trace.Trace) { tr.Steps[0].Highlights = []int{-1} },
			wantErr: trace.ErrIndexOutOfRange,
		},
		{
			name:    "missing terminal complete",
			corrupt: func(tr *trace.Trace) { tr.Steps = tr.Steps[:len(tr.Steps)-1] },
			wantErr: trace.ErrMissingComplete,
		},
		{
			name: "final snapshot not fully sorted",
			corrupt: func(tr *trace.Trace) {
				tr.Steps[len(tr.Steps)-1].Snapshot[0].State = step.StateDefault
			},
			wantErr: trace.ErrIncompleteFinal,
		},
		{
			name: "sorted mark revoked",
			corrupt: func(tr *trace.Trace) {
				// Step 4 is mark_sorted(2) on this trace; flip it back on a
				// later snapshot.
				tr.Steps[5].Snapshot[2].State = step.StateDefault
			},
			wantErr: trace.ErrSortedRevoked,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr := generatedTrace(t, generate.Bubble, []int{3, 1, 2})

			// Deep-copy the steps so corruptions do not leak between cases.
			steps := make([]step.Step, len(tr.Steps))
			for i, s := range tr.Steps {
				s.Snapshot = step.CloneSnapshot(s.Snapshot)
				s.Indices = append([]int(nil), s.Indices...)
				s.Highlights = append([]int(nil), s.Highlights...)
				steps[i] = s
			}
			tr.Steps = steps

			tt.corrupt(tr)

			err := tr.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_SortedRevocationAcrossFinalStep(t *testing.T) {
	t.Parallel()

	tr := generatedTrace(t, generate.Insertion, []int{2, 1})
	require.NoError(t, tr.Validate())

	assert.Equal(t, step.Stats{Comparisons: 1, Swaps: 1}, tr.TotalStats())
}

func TestTotalStats_Empty(t *testing.T) {
	t.Parallel()

	tr := &trace.Trace{}

	assert.Equal(t, step.Stats{}, tr.TotalStats())
}
