package main

import "cmp"

type trivialSorter struct{}

func (trivialSorter) Sort(myArray []uint64) {
	selectionSortFunc(myArray, cmp.Compare[uint64])
}

// Trivial Sort (selection sort): best / worst case theta(n^2), in place
func selectionSortFunc[E any](myArray []E, cmp func(a, b E) int) {
	for i := 0; i < len(myArray)-1; i++ {
		indexMin := i
		for j := i + 1; j < len(myArray); j++ {
			if cmp(myArray[j], myArray[indexMin]) < 0 {
				indexMin = j
			}
		}
		myArray[i], myArray[indexMin] = myArray[indexMin], myArray[i]
	}
}
