package generate

import "fmt"

// selectionSort emits the selection sort walk: each pass scans for the
// minimum of the unsorted suffix, re-marking the running minimum as the
// pivot only when a strictly smaller element is found, and swaps it into
// position i only when the minimum is not already there.
func selectionSort(rec *recorder) {
	n := rec.len()

	for i := 0; i < n-1; i++ {
		minIdx := i
		rec.trackPivot(minIdx)

		for j := i + 1; j < n; j++ {
			rec.compare(j, minIdx)

			if rec.value(j) < rec.value(minIdx) {
				minIdx = j
				rec.markPivot(minIdx, fmt.Sprintf("New minimum found at position %d", minIdx))
			}
		}

		if minIdx != i {
			rec.swap(i, minIdx)
		}

		rec.markSorted(i)
	}

	rec.markSorted(n - 1)
}
