// Package generate expands a sorting algorithm over an input array into a
// fully materialized, deterministic sequence of replayable steps. Every
// comparison, swap, pivot change, and sorted-position proof the textbook
// algorithm performs becomes exactly one step carrying a complete array
// snapshot and cumulative statistics.
package generate

import "github.com/sortviz/sortviz/pkg/step"

// Algorithm identifies one of the supported sorting algorithms.
type Algorithm string

// Supported algorithms.
const (
	Bubble    Algorithm = "bubble"
	Selection Algorithm = "selection"
	Insertion Algorithm = "insertion"
	Quicksort Algorithm = "quicksort"
)

// DefaultAlgorithm is the fallback used for unrecognized algorithm IDs.
// An unknown ID is a documented default, not an error.
const DefaultAlgorithm = Bubble

// generatorFunc walks one algorithm over the recorder's working array.
type generatorFunc func(*recorder)

// generators is the dispatch table from algorithm ID to implementation.
var generators = map[Algorithm]generatorFunc{
	Bubble:    bubbleSort,
	Selection: selectionSort,
	Insertion: insertionSort,
	Quicksort: quickSort,
}

// Algorithms lists the supported algorithm IDs in stable order.
func Algorithms() []Algorithm {
	return []Algorithm{Bubble, Selection, Insertion, Quicksort}
}

// Parse maps a raw identifier to an Algorithm, falling back to
// DefaultAlgorithm for anything unrecognized.
func Parse(id string) Algorithm {
	alg := Algorithm(id)
	if _, ok := generators[alg]; !ok {
		return DefaultAlgorithm
	}

	return alg
}

// Generate produces the complete step trace for the given algorithm and
// input. It is deterministic, never mutates values, and never fails for a
// finite integer array. Empty and single-element inputs yield a trivial
// trace ending in a complete step.
func Generate(alg Algorithm, values []int) []step.Step {
	gen, ok := generators[alg]
	if !ok {
		gen = generators[DefaultAlgorithm]
	}

	rec := newRecorder(values)

	if rec.len() <= 1 {
		if rec.len() == 1 {
			rec.markSorted(0)
		}

		rec.complete()

		return rec.steps
	}

	gen(rec)
	rec.complete()

	return rec.steps
}
