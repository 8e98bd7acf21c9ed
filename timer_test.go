package main

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
)

func TestMakeExecutionDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want ExecutionDuration
	}{
		{0, ExecutionDuration{}},
		{999 * time.Nanosecond, ExecutionDuration{}},
		{1500 * time.Nanosecond, ExecutionDuration{Microseconds: 1}},
		{2*time.Second + 345*time.Millisecond + 678*time.Microsecond + 901, ExecutionDuration{2, 345, 678}},
		{61 * time.Second, ExecutionDuration{Seconds: 61}},
		{-time.Second, ExecutionDuration{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, makeExecutionDuration(tt.d), tt.d.String())
	}
}

func TestExecutionDurationString(t *testing.T) {
	d := ExecutionDuration{Seconds: 1, Milliseconds: 2, Microseconds: 3}
	assert.Equal(t, "1s 2ms 3us", d.String())
	assert.Equal(t, time.Second+2*time.Millisecond+3*time.Microsecond, d.Duration())
}

func TestExecutionTimer(t *testing.T) {
	mock := clock.NewMock()
	timer := makeExecutionTimer(mock)

	timer.Start()
	mock.Add(3*time.Second + 14*time.Millisecond + 159*time.Microsecond + 265)
	assert.Equal(t, ExecutionDuration{3, 14, 159}, timer.Stop())
}

func TestElapsedClampsNegative(t *testing.T) {
	now := time.Now()
	assert.Equal(t, ExecutionDuration{}, elapsed(now, now.Add(-time.Minute)))
}
