package main

import "cmp"

type bubbleSorter struct{}

func (bubbleSorter) Sort(myArray []uint64) {
	bubbleSortFunc(myArray, cmp.Compare[uint64])
}

// Bubble Sort: best case theta(n), worst case theta(n^2), in place.
// Each pass carries the largest remaining value to the end of the unsorted
// prefix; a pass without swaps ends the sort.
func bubbleSortFunc[E any](myArray []E, cmp func(a, b E) int) {
	for end := len(myArray) - 1; end > 0; end-- {
		swapped := false
		for j := 0; j < end; j++ {
			if cmp(myArray[j], myArray[j+1]) > 0 {
				myArray[j], myArray[j+1] = myArray[j+1], myArray[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}
