package main

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArraySourceBounds(t *testing.T) {
	source, err := MakeArraySource(rand.New(rand.NewSource(1)), 3)
	require.NoError(t, err)

	myArray := source.Generate(1000)
	require.Len(t, myArray, 1000)
	seen := map[uint64]bool{}
	for _, v := range myArray {
		require.LessOrEqual(t, v, uint64(3))
		seen[v] = true
	}
	assert.Len(t, seen, 4, "every value in [0, 3] should show up")

	assert.Empty(t, source.Generate(0))
}

func TestArraySourceSeeded(t *testing.T) {
	a, err := MakeArraySource(rand.New(rand.NewSource(8)), defaultMaxValue)
	require.NoError(t, err)
	b, err := MakeArraySource(rand.New(rand.NewSource(8)), defaultMaxValue)
	require.NoError(t, err)
	assert.Equal(t, a.Generate(64), b.Generate(64))
}

func TestArraySourceMaxOutOfRange(t *testing.T) {
	_, err := MakeArraySource(rand.New(rand.NewSource(1)), math.MaxInt64)
	assert.Error(t, err)
	_, err = MakeArraySource(rand.New(rand.NewSource(1)), math.MaxInt64-1)
	assert.NoError(t, err)
}
