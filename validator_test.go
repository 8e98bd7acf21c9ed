package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckArray(t *testing.T) {
	assert.True(t, checkArray([]uint64{}))
	assert.True(t, checkArray([]uint64(nil)))
	assert.True(t, checkArray([]uint64{3}))
	assert.True(t, checkArray([]uint64{0, 0, 1, 5, 5}))
	assert.False(t, checkArray([]uint64{1, 0}))
	assert.False(t, checkArray([]uint64{1, 2, 3, 2, 4}))
}

// A zero floor would reject these; the first element seeds the floor.
func TestCheckArrayNegativeValues(t *testing.T) {
	assert.True(t, checkArray([]int{-5, -3, -3, 0, 2}))
	assert.True(t, checkArray([]int64{-9}))
	assert.False(t, checkArray([]int{-1, -2}))
	assert.True(t, checkArray([]int8{-128, -1, 127}))
}

func TestOrderValidatorStopsAtFirstDisorder(t *testing.T) {
	var o orderValidator[int]
	assert.True(t, o.accept(-10))
	assert.True(t, o.accept(-10))
	assert.True(t, o.accept(4))
	assert.False(t, o.accept(3))
	assert.Equal(t, 4, o.prev)
}
