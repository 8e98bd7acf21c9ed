package main

import "golang.org/x/exp/constraints"

// orderValidator checks a stream of values for non-decreasing order. The
// floor is seeded from the first value seen, never from a fixed sentinel.
type orderValidator[E constraints.Integer] struct {
	seeded bool
	prev   E
}

// accept reports whether v keeps the stream ordered.
func (o *orderValidator[E]) accept(v E) bool {
	if o.seeded && v < o.prev {
		return false
	}
	o.seeded = true
	o.prev = v
	return true
}

// checkArray reports whether myArray is sorted ascending. It stops at the
// first pair out of order.
func checkArray[E constraints.Integer](myArray []E) bool {
	var o orderValidator[E]
	for _, v := range myArray {
		if !o.accept(v) {
			return false
		}
	}
	return true
}
