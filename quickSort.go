package main

import (
	"cmp"
	"math/rand"
)

type quickSorter struct {
	rng *rand.Rand
}

func (s quickSorter) Sort(myArray []uint64) {
	quickSortFunc(myArray, cmp.Compare[uint64], s.rng)
}

// QuickSort: best case theta(nlog(n)), worst case theta(n^2), in place.
// When rng is non-nil a random element is swapped into the pivot slot
// before each partition.
func quickSortFunc[E any](myArray []E, cmp func(a, b E) int, rng *rand.Rand) {
	quickSortRange(myArray, 0, len(myArray)-1, cmp, rng)
}

// quickSortRange recurses into the smaller side only, so the stack never
// grows deeper than O(log n).
func quickSortRange[E any](myArray []E, p, r int, cmp func(a, b E) int, rng *rand.Rand) {
	for p < r {
		q := randomizedPartition(myArray, p, r, cmp, rng)
		if q-p < r-q {
			quickSortRange(myArray, p, q-1, cmp, rng)
			p = q + 1
		} else {
			quickSortRange(myArray, q+1, r, cmp, rng)
			r = q - 1
		}
	}
}

func randomizedPartition[E any](myArray []E, p, r int, cmp func(a, b E) int, rng *rand.Rand) int {
	if rng != nil {
		i := p + rng.Intn(r-p+1)
		myArray[i], myArray[r] = myArray[r], myArray[i]
	}
	return partition(myArray, p, r, cmp)
}

// partition is the Lomuto scheme with myArray[r] as pivot. Afterwards
// [p, q-1] <= pivot, myArray[q] is the pivot, and [q+1, r] > pivot.
func partition[E any](myArray []E, p, r int, cmp func(a, b E) int) int {
	x := myArray[r]
	i := p
	for j := p; j < r; j++ {
		if cmp(myArray[j], x) <= 0 {
			myArray[i], myArray[j] = myArray[j], myArray[i]
			i++
		}
	}
	myArray[i], myArray[r] = myArray[r], myArray[i]
	return i
}
