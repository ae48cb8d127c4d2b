package generate

// bubbleSort emits the classic bubble sort walk: adjacent compares with a
// swap on strict greater-than. After outer pass i the element at n-1-i has
// bubbled into place; index 0 is proven last, after the loop.
func bubbleSort(rec *recorder) {
	n := rec.len()

	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			rec.compare(j, j+1)

			if rec.value(j) > rec.value(j+1) {
				rec.swap(j, j+1)
			}
		}

		rec.markSorted(n - 1 - i)
	}

	rec.markSorted(0)
}
