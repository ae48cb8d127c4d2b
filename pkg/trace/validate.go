package trace

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/sortviz/sortviz/pkg/step"
)

// Sentinel errors for trace validation failures.
var (
	// ErrEmptyTrace indicates a trace with no steps at all.
	ErrEmptyTrace = errors.New("trace has no steps")
	// ErrStepID indicates step IDs are not dense from zero.
	ErrStepID = errors.New("step IDs must be dense and start at 0")
	// ErrUnknownStepType indicates a step type outside the known set.
	ErrUnknownStepType = errors.New("unknown step type")
	// ErrUnknownElementState indicates an element state outside the known set.
	ErrUnknownElementState = errors.New("unknown element state")
	// ErrSnapshotShape indicates a snapshot whose length differs from the input.
	ErrSnapshotShape = errors.New("snapshot length differs from input length")
	// ErrValueMultiset indicates a snapshot whose values are not a permutation of the input.
	ErrValueMultiset = errors.New("snapshot values are not a permutation of the input")
	// ErrStats indicates cumulative stats that do not increment by exactly one on their own step type.
	ErrStats = errors.New("cumulative stats are inconsistent with step types")
	// ErrIndexOutOfRange indicates a step index or highlight outside the array bounds.
	ErrIndexOutOfRange = errors.New("step index out of range")
	// ErrMissingComplete indicates the trace does not end in a complete step.
	ErrMissingComplete = errors.New("trace must end with a complete step")
	// ErrIncompleteFinal indicates a final snapshot with unsorted elements.
	ErrIncompleteFinal = errors.New("final snapshot must mark every element sorted")
	// ErrSortedRevoked indicates a sorted mark that later disappeared.
	ErrSortedRevoked = errors.New("sorted mark was revoked in a later step")
)

// validTypes is the closed set of step types a trace may contain.
var validTypes = map[step.Type]bool{
	step.TypeCompare:    true,
	step.TypeSwap:       true,
	step.TypeMarkSorted: true,
	step.TypeMarkPivot:  true,
	step.TypeComplete:   true,
}

// validStates is the closed set of element states a snapshot may contain.
var validStates = map[step.ElementState]bool{
	step.StateDefault:   true,
	step.StateComparing: true,
	step.StateSwapping:  true,
	step.StateSorted:    true,
	step.StatePivot:     true,
}

// Validate checks a trace against the full set of step-sequence invariants
// before it may be loaded into the playback engine: dense IDs, known types
// and states, in-range indices, permutation-preserving snapshots of the
// input, exact per-type stat increments, a terminal complete step with a
// fully sorted snapshot, and permanence of sorted marks.
func (t *Trace) Validate() error {
	if len(t.Steps) == 0 {
		return ErrEmptyTrace
	}

	multisetErr := t.validateShape()
	if multisetErr != nil {
		return multisetErr
	}

	statsErr := t.validateStats()
	if statsErr != nil {
		return statsErr
	}

	permanenceErr := t.validateSortedPermanence()
	if permanenceErr != nil {
		return permanenceErr
	}

	return t.validateTerminal()
}

func (t *Trace) validateShape() error {
	n := len(t.Input)

	wantMultiset := append([]int(nil), t.Input...)
	sort.Ints(wantMultiset)

	for i, s := range t.Steps {
		if s.ID != i {
			return fmt.Errorf("step %d: %w (got %d)", i, ErrStepID, s.ID)
		}

		if !validTypes[s.Type] {
			return fmt.Errorf("step %d: %w: %q", i, ErrUnknownStepType, s.Type)
		}

		if len(s.Snapshot) != n {
			return fmt.Errorf("step %d: %w (got %d, want %d)", i, ErrSnapshotShape, len(s.Snapshot), n)
		}

		indexErr := validateIndices(i, &t.Steps[i], n)
		if indexErr != nil {
			return indexErr
		}

		values := step.Values(s.Snapshot)
		sort.Ints(values)

		if !slices.Equal(values, wantMultiset) {
			return fmt.Errorf("step %d: %w", i, ErrValueMultiset)
		}

		for pos, el := range s.Snapshot {
			if !validStates[el.State] {
				return fmt.Errorf("step %d index %d: %w: %q", i, pos, ErrUnknownElementState, el.State)
			}
		}
	}

	return nil
}

func validateIndices(stepIdx int, s *step.Step, n int) error {
	for _, idx := range s.Indices {
		if idx < 0 || idx >= n {
			return fmt.Errorf("step %d: %w: index %d", stepIdx, ErrIndexOutOfRange, idx)
		}
	}

	for _, idx := range s.Highlights {
		if idx < 0 || idx >= n {
			return fmt.Errorf("step %d: %w: highlight %d", stepIdx, ErrIndexOutOfRange, idx)
		}
	}

	return nil
}

func (t *Trace) validateStats() error {
	prev := step.Stats{}

	for i, s := range t.Steps {
		want := prev

		switch s.Type {
		case step.TypeCompare:
			want.Comparisons++
		case step.TypeSwap:
			want.Swaps++
		case step.TypeMarkSorted, step.TypeMarkPivot, step.TypeComplete:
			// Counters stay unchanged.
		}

		if s.Stats != want {
			return fmt.Errorf("step %d: %w (got %+v, want %+v)", i, ErrStats, s.Stats, want)
		}

		prev = s.Stats
	}

	return nil
}

func (t *Trace) validateSortedPermanence() error {
	sorted := make([]bool, len(t.Input))

	for i, s := range t.Steps {
		for idx, wasSorted := range sorted {
			if wasSorted && s.Snapshot[idx].State != step.StateSorted {
				return fmt.Errorf("step %d index %d: %w", i, idx, ErrSortedRevoked)
			}
		}

		for idx, el := range s.Snapshot {
			if el.State == step.StateSorted {
				sorted[idx] = true
			}
		}
	}

	return nil
}

func (t *Trace) validateTerminal() error {
	final := t.Steps[len(t.Steps)-1]

	if final.Type != step.TypeComplete {
		return fmt.Errorf("%w (got %q)", ErrMissingComplete, final.Type)
	}

	for idx, el := range final.Snapshot {
		if el.State != step.StateSorted {
			return fmt.Errorf("index %d: %w", idx, ErrIncompleteFinal)
		}
	}

	return nil
}
