package main

import "cmp"

type insertionSorter struct{}

func (insertionSorter) Sort(myArray []uint64) {
	insertionSortFunc(myArray, cmp.Compare[uint64])
}

// Insertion Sort: best case theta(n), worst case theta(n^2), in place
func insertionSortFunc[E any](myArray []E, cmp func(a, b E) int) {
	for i := 1; i < len(myArray); i++ {
		val := myArray[i]
		j := i - 1
		for ; j >= 0 && cmp(myArray[j], val) > 0; j-- {
			myArray[j+1] = myArray[j]
		}
		myArray[j+1] = val
	}
}
