// Package input produces the integer arrays fed to the step generators.
// Generation is seeded so any run can be reproduced from its seed.
package input

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"sort"
)

// Shape selects the ordering of a generated array.
type Shape string

// Supported input shapes.
const (
	ShapeRandom       Shape = "random"
	ShapeSorted       Shape = "sorted"
	ShapeReversed     Shape = "reversed"
	ShapeNearlySorted Shape = "nearly_sorted"
)

// nearlySortedSwapDivisor controls how many random swaps perturb a
// nearly-sorted array: one swap per this many elements, at least one.
const nearlySortedSwapDivisor = 10

// ErrUnknownShape indicates a shape outside the supported set.
var ErrUnknownShape = errors.New("unknown input shape")

// Spec describes one generated input array.
type Spec struct {
	Size  int
	Min   int
	Max   int
	Seed  int64
	Shape Shape
}

// Generate produces the array described by the spec. The same spec always
// produces the same array.
func Generate(spec Spec) ([]int, error) {
	if spec.Size <= 0 {
		return []int{}, nil
	}

	rng := rand.New(rand.NewSource(spec.Seed))

	switch spec.Shape {
	case ShapeRandom:
		return randomValues(rng, spec), nil
	case ShapeSorted:
		values := randomValues(rng, spec)
		sort.Ints(values)

		return values, nil
	case ShapeReversed:
		values := randomValues(rng, spec)
		sort.Ints(values)
		slices.Reverse(values)

		return values, nil
	case ShapeNearlySorted:
		return nearlySorted(rng, spec), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, spec.Shape)
	}
}

func randomValues(rng *rand.Rand, spec Spec) []int {
	span := spec.Max - spec.Min + 1
	if span < 1 {
		span = 1
	}

	values := make([]int, spec.Size)

	for i := range values {
		values[i] = spec.Min + rng.Intn(span)
	}

	return values
}

func nearlySorted(rng *rand.Rand, spec Spec) []int {
	values := randomValues(rng, spec)
	sort.Ints(values)

	swaps := spec.Size / nearlySortedSwapDivisor
	if swaps < 1 {
		swaps = 1
	}

	for i := 0; i < swaps; i++ {
		a := rng.Intn(spec.Size)
		b := rng.Intn(spec.Size)
		values[a], values[b] = values[b], values[a]
	}

	return values
}
