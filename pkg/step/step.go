// Package step defines the trace data model for the animation engine: one
// Step per primitive algorithm operation, each carrying a complete array
// snapshot so any position in a trace can be rendered without replaying
// earlier steps.
package step

// ElementState is the visual state of a single array slot.
type ElementState string

// Element visual states.
const (
	StateDefault   ElementState = "default"
	StateComparing ElementState = "comparing"
	StateSwapping  ElementState = "swapping"
	StateSorted    ElementState = "sorted"
	StatePivot     ElementState = "pivot"
)

// Type is the kind of operation a Step records.
type Type string

// Step types.
const (
	TypeCompare    Type = "compare"
	TypeSwap       Type = "swap"
	TypeMarkSorted Type = "mark_sorted"
	TypeMarkPivot  Type = "mark_pivot"
	TypeComplete   Type = "complete"
)

// Element is one array slot: an immutable value plus a derived visual state.
type Element struct {
	Value int          `json:"value"`
	State ElementState `json:"state"`
}

// Stats holds cumulative operation counts as of a given step, inclusive.
type Stats struct {
	Comparisons int `json:"comparisons"`
	Swaps       int `json:"swaps"`
}

// Step is one indivisible unit of algorithm progress. Snapshot is the full
// array state immediately after the step is applied; it is self-sufficient
// and never a diff against a neighboring step.
type Step struct {
	ID          int       `json:"id"`
	Type        Type      `json:"type"`
	Indices     []int     `json:"indices"`
	Description string    `json:"description"`
	Snapshot    []Element `json:"arraySnapshot"`
	Highlights  []int     `json:"highlightIndices"`
	Stats       Stats     `json:"stats"`
}

// Elements builds a default-state element slice from raw values.
func Elements(values []int) []Element {
	elements := make([]Element, len(values))

	for i, v := range values {
		elements[i] = Element{Value: v, State: StateDefault}
	}

	return elements
}

// Values extracts the raw values from an element slice.
func Values(elements []Element) []int {
	values := make([]int, len(elements))

	for i, el := range elements {
		values[i] = el.Value
	}

	return values
}

// CloneSnapshot deep-copies an element slice.
func CloneSnapshot(snapshot []Element) []Element {
	cloned := make([]Element, len(snapshot))
	copy(cloned, snapshot)

	return cloned
}
