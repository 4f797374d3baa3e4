// Package dedup partitions a sheet's sprites into unique and duplicate
// groups by pixel content, so a pack strategy only has to place the
// unique set and duplicates can be resolved afterwards.
package dedup

// Partition walks items [0, n) in order and, for each one, checks whether
// it is pixel-identical (via identical(i, j), i>j) to any earlier item
// already known to be unique. It returns the indices of the unique items
// (in their original relative order) and, for every item, the index of
// the unique representative it duplicates, or -1 if it is itself unique.
//
// Rather than sorting duplicates to the back of the caller's slice in
// place, Partition returns plain index sets: Go callers usually want to
// keep operating on a stable slice of sprites by index.
func Partition(n int, identical func(i, j int) bool) (unique []int, duplicateOf []int) {
	duplicateOf = make([]int, n)
	for i := range duplicateOf {
		duplicateOf[i] = -1
	}

	for i := 0; i < n; i++ {
		for _, j := range unique {
			if identical(i, j) {
				duplicateOf[i] = j
				break
			}
		}
		if duplicateOf[i] < 0 {
			unique = append(unique, i)
		}
	}
	return unique, duplicateOf
}
