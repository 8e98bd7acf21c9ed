package main

import "cmp"

type mergeSorter struct{}

func (mergeSorter) Sort(myArray []uint64) {
	mergeSortFunc(myArray, cmp.Compare[uint64])
}

// Merge Sort: best / worst case theta(nlog(n)), not in place. Stable.
func mergeSortFunc[E any](myArray []E, cmp func(a, b E) int) {
	if len(myArray) < 2 {
		return
	}
	divide(myArray, 0, len(myArray)-1, cmp)
}

func divide[E any](myArray []E, low, high int, cmp func(a, b E) int) {
	if low >= high {
		return
	}
	mid := low + (high-low)/2
	divide(myArray, low, mid, cmp)
	divide(myArray, mid+1, high, cmp)
	merge(myArray, low, mid, high, cmp)
}

// merge combines the ordered ranges [low, mid] and [mid+1, high]. On equal
// heads the left element is taken first.
func merge[E any](myArray []E, low, mid, high int, cmp func(a, b E) int) {
	tempArray := make([]E, high-low+1)
	left, right := low, mid+1
	for i := range tempArray {
		switch {
		case left > mid:
			tempArray[i] = myArray[right]
			right++
		case right > high:
			tempArray[i] = myArray[left]
			left++
		case cmp(myArray[left], myArray[right]) <= 0:
			tempArray[i] = myArray[left]
			left++
		default:
			tempArray[i] = myArray[right]
			right++
		}
	}
	copy(myArray[low:], tempArray)
}
