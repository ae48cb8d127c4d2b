package generate

import "fmt"

// quickSort emits the quicksort walk using Lomuto partitioning. The
// recorder is threaded through the recursion explicitly, so every call's
// data flow is visible in its signature.
//
// Singleton partitions (low == high) emit a mark_sorted step: it keeps the
// sorted-permanence invariant locally checkable from the trace without any
// bookkeeping outside the call that proves the position final.
func quickSort(rec *recorder) {
	quickSortRange(rec, 0, rec.len()-1)
}

func quickSortRange(rec *recorder, low, high int) {
	if low > high {
		return
	}

	if low == high {
		rec.markSorted(low)

		return
	}

	pivotFinal := partition(rec, low, high)

	quickSortRange(rec, low, pivotFinal-1)
	quickSortRange(rec, pivotFinal+1, high)
}

// partition applies the Lomuto scheme on [low, high] with the last element
// as the pivot, returning the pivot's settled position. Elements strictly
// below the pivot move left of the boundary; equal elements stay right.
func partition(rec *recorder, low, high int) int {
	rec.markPivot(high, fmt.Sprintf("Pivot chosen at position %d", high))

	boundary := low

	for j := low; j < high; j++ {
		rec.compare(j, high)

		if rec.value(j) < rec.value(high) {
			if boundary != j {
				rec.swap(boundary, j)
			}

			boundary++
		}
	}

	if boundary != high {
		rec.swap(boundary, high)
	}

	rec.markSorted(boundary)

	return boundary
}
