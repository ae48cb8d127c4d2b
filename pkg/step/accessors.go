package step

// percentMax is the full progress percentage.
const percentMax = 100

// Current returns the step under the cursor, or nil when the cursor sits
// before the first step.
func Current(steps []Step, cursor int) *Step {
	if cursor < 0 || cursor >= len(steps) {
		return nil
	}

	return &steps[cursor]
}

// Progress reports playback progress as a percentage in [0, 100].
func Progress(steps []Step, cursor int) float64 {
	if len(steps) == 0 {
		return 0
	}

	if cursor < 0 {
		return 0
	}

	return float64(cursor+1) / float64(len(steps)) * percentMax
}

// DisplayArray resolves the element slice to render for a cursor position.
// Before the first step it is the untouched input with every element in the
// default state; otherwise it is the cursor step's snapshot.
func DisplayArray(steps []Step, cursor int, original []int) []Element {
	if cursor < 0 || len(steps) == 0 {
		return Elements(original)
	}

	if cursor >= len(steps) {
		cursor = len(steps) - 1
	}

	return steps[cursor].Snapshot
}
