package main

/*
	An implementer of a Sorter encapsulates one sorting algorithm.
	Sort orders the array in place, ascending.
*/
type Sorter interface {
	Sort(myArray []uint64)
}
