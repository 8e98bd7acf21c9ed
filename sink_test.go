package main

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	values []uint64
}

func (s *recordingSink) Write(value uint64) error {
	s.values = append(s.values, value)
	return nil
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, drain(MakeWriterSink(&buf), []uint64{1, 1, 20, 300}))
	assert.Equal(t, "1\n1\n20\n300\n", buf.String())
}

func TestWriterSinkRejectsDisorder(t *testing.T) {
	var buf bytes.Buffer
	err := drain(MakeWriterSink(&buf), []uint64{4, 9, 8, 10})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errNotSorted))
	assert.Equal(t, "4\n9\n", buf.String())
}

func TestDrainEmpty(t *testing.T) {
	s := &recordingSink{}
	require.NoError(t, drain(s, nil))
	assert.Empty(t, s.values)
}
