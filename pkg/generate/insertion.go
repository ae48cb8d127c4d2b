package generate

import "fmt"

// insertionSort emits the insertion sort walk: index 0 is trivially sorted
// up front, then each key is marked as the pivot and shifted left through
// the sorted prefix one adjacent compare-and-swap at a time, stopping on the
// first compare that does not trigger.
func insertionSort(rec *recorder) {
	n := rec.len()

	rec.markSorted(0)

	for i := 1; i < n; i++ {
		rec.markPivot(i, fmt.Sprintf("Inserting element at position %d into the sorted prefix", i))

		j := i - 1
		for j >= 0 {
			rec.compare(j, j+1)

			if rec.value(j) > rec.value(j+1) {
				rec.swap(j, j+1)
				j--
			} else {
				break
			}
		}

		rec.clearPivot()
		rec.markSorted(j + 1)
	}
}
