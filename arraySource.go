package main

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
)

const defaultMaxValue = math.MaxInt32

// ArraySource produces the input arrays for a run.
type ArraySource struct {
	rng *rand.Rand
	max uint64
}

// MakeArraySource returns a source of values uniformly distributed in
// [0, max]. max must stay below math.MaxInt64.
func MakeArraySource(rng *rand.Rand, max uint64) (*ArraySource, error) {
	if max >= math.MaxInt64 {
		return nil, errors.Errorf("max value %d out of range, must be below %d", max, uint64(math.MaxInt64))
	}
	return &ArraySource{rng: rng, max: max}, nil
}

func (s *ArraySource) Generate(size int) []uint64 {
	myArray := make([]uint64, size)
	for i := range myArray {
		myArray[i] = uint64(s.rng.Int63n(int64(s.max) + 1))
	}
	return myArray
}
