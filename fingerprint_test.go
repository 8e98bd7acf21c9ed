package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	assert.Equal(t, fingerprintOf([]uint64{3, 1, 2, 2}), fingerprintOf([]uint64{2, 1, 2, 3}))
	assert.Equal(t, fingerprintOf(nil), fingerprintOf([]uint64{}))

	assert.NotEqual(t, fingerprintOf([]uint64{1, 2, 2}), fingerprintOf([]uint64{1, 1, 2}))
	assert.NotEqual(t, fingerprintOf([]uint64{1, 2}), fingerprintOf([]uint64{1, 2, 2}))
	assert.NotEqual(t, fingerprintOf([]uint64{0, 0}), fingerprintOf([]uint64{0, 5}))
}
