package main

import "cmp"

type heapSorter struct{}

func (heapSorter) Sort(myArray []uint64) {
	heapSortFunc(myArray, cmp.Compare[uint64])
}

// HeapSort: best / worst case O(nlog(n)), in place
func heapSortFunc[E any](myArray []E, cmp func(a, b E) int) {
	if len(myArray) < 2 {
		return
	}
	buildMaxHeap(myArray, cmp)
	for heapSize := len(myArray) - 1; heapSize > 0; heapSize-- {
		myArray[0], myArray[heapSize] = myArray[heapSize], myArray[0]
		maxHeapify(myArray, 0, heapSize, cmp)
	}
}

func buildMaxHeap[E any](myArray []E, cmp func(a, b E) int) {
	for i := parent(len(myArray) - 1); i >= 0; i-- {
		maxHeapify(myArray, i, len(myArray), cmp)
	}
}

// maxHeapify sinks myArray[root] until the subtree rooted there is a max-heap.
// Only the first heapSize elements belong to the heap.
func maxHeapify[E any](myArray []E, root, heapSize int, cmp func(a, b E) int) {
	l, r := leftChild(root), rightChild(root)
	largest := root
	if l < heapSize && cmp(myArray[l], myArray[largest]) > 0 {
		largest = l
	}
	if r < heapSize && cmp(myArray[r], myArray[largest]) > 0 {
		largest = r
	}
	if largest != root {
		myArray[root], myArray[largest] = myArray[largest], myArray[root]
		maxHeapify(myArray, largest, heapSize, cmp)
	}
}

// parent is only defined for i >= 1.
func parent(i int) int {
	return (i - 1) / 2
}

func leftChild(i int) int {
	return 2*i + 1
}

func rightChild(i int) int {
	return 2*i + 2
}
