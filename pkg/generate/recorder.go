package generate

import (
	"fmt"

	"github.com/sortviz/sortviz/pkg/step"
)

// noPivot marks the absence of a tracked pivot position.
const noPivot = -1

// recorder owns the working array and the step accumulator while a generator
// runs. Generators call its emit helpers; the recorder keeps the persistent
// element states (default / sorted / pivot), applies transient overlays for
// each step, and maintains the cumulative stats.
//
// Sorted marks are sticky: once a position is sorted, no later overlay or
// pivot mark replaces its state.
type recorder struct {
	elements []step.Element
	steps    []step.Step
	stats    step.Stats
	pivot    int
}

// newRecorder clones the input values into a default-state working array.
func newRecorder(values []int) *recorder {
	return &recorder{
		elements: step.Elements(values),
		steps:    make([]step.Step, 0, len(values)*len(values)),
		pivot:    noPivot,
	}
}

// len reports the working array length.
func (r *recorder) len() int {
	return len(r.elements)
}

// value reads the working value at position i.
func (r *recorder) value(i int) int {
	return r.elements[i].Value
}

// compare records one comparison of positions i and j, in algorithm order.
func (r *recorder) compare(i, j int) {
	r.stats.Comparisons++
	r.emit(step.TypeCompare, []int{i, j},
		fmt.Sprintf("Comparing elements at positions %d and %d", i, j),
		overlay{i: step.StateComparing, j: step.StateComparing})
}

// swap exchanges positions i and j, then records the step. The snapshot
// reflects the already-swapped values. A tracked pivot moves with its value.
func (r *recorder) swap(i, j int) {
	r.elements[i].Value, r.elements[j].Value = r.elements[j].Value, r.elements[i].Value

	switch r.pivot {
	case i:
		r.movePivot(j)
	case j:
		r.movePivot(i)
	}

	r.stats.Swaps++
	r.emit(step.TypeSwap, []int{i, j},
		fmt.Sprintf("Swapping elements at positions %d and %d", i, j),
		overlay{i: step.StateSwapping, j: step.StateSwapping})
}

// markPivot records position i as the algorithm's reference element,
// replacing any previous pivot mark.
func (r *recorder) markPivot(i int, description string) {
	r.movePivot(i)
	r.emit(step.TypeMarkPivot, []int{i}, description, nil)
}

// markSorted records that position i is proven final. The mark is permanent.
func (r *recorder) markSorted(i int) {
	if r.pivot == i {
		r.pivot = noPivot
	}

	r.elements[i].State = step.StateSorted
	r.emit(step.TypeMarkSorted, []int{i},
		fmt.Sprintf("Element at position %d is in its final position", i), nil)
}

// trackPivot moves the persistent pivot mark without emitting a step, for
// reference positions that change without counting as algorithm progress.
func (r *recorder) trackPivot(i int) {
	r.movePivot(i)
}

// clearPivot drops the tracked pivot mark without emitting a step.
func (r *recorder) clearPivot() {
	r.movePivot(noPivot)
}

// complete marks every position sorted and records the terminal step.
func (r *recorder) complete() {
	r.pivot = noPivot

	for i := range r.elements {
		r.elements[i].State = step.StateSorted
	}

	r.emit(step.TypeComplete, []int{}, "Sorting complete", nil)
}

// movePivot relocates the persistent pivot mark. Sorted positions are never
// overwritten.
func (r *recorder) movePivot(to int) {
	if r.pivot != noPivot && r.elements[r.pivot].State == step.StatePivot {
		r.elements[r.pivot].State = step.StateDefault
	}

	r.pivot = to
	if to != noPivot && r.elements[to].State != step.StateSorted {
		r.elements[to].State = step.StatePivot
	}
}

// overlay maps positions to the transient state they show for one step.
type overlay map[int]step.ElementState

// emit appends a step whose snapshot is the persistent state plus the given
// transient overlay. Overlays never replace a sorted mark.
func (r *recorder) emit(stepType step.Type, indices []int, description string, states overlay) {
	snapshot := step.CloneSnapshot(r.elements)

	for i, state := range states {
		if snapshot[i].State != step.StateSorted {
			snapshot[i].State = state
		}
	}

	highlights := make([]int, len(indices))
	copy(highlights, indices)

	r.steps = append(r.steps, step.Step{
		ID:          len(r.steps),
		Type:        stepType,
		Indices:     indices,
		Description: description,
		Snapshot:    snapshot,
		Highlights:  highlights,
		Stats:       r.stats,
	})
}
