package main

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// fingerprint summarizes the multiset of values in an array. It does not
// depend on element order, so an input and its sorted output must match.
type fingerprint struct {
	count int
	sum   uint64
}

func fingerprintOf(myArray []uint64) fingerprint {
	var buf [8]byte
	f := fingerprint{count: len(myArray)}
	for _, v := range myArray {
		binary.LittleEndian.PutUint64(buf[:], v)
		f.sum += xxhash.Sum64(buf[:])
	}
	return f
}
