package main

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
)

// ExecutionDuration is an elapsed time broken into display units. Anything
// finer than a microsecond is dropped.
type ExecutionDuration struct {
	Seconds      int64
	Milliseconds int64
	Microseconds int64
}

func makeExecutionDuration(d time.Duration) ExecutionDuration {
	if d < 0 {
		d = 0
	}
	ns := d.Nanoseconds()
	return ExecutionDuration{
		Seconds:      ns / int64(time.Second),
		Milliseconds: ns / int64(time.Millisecond) % 1000,
		Microseconds: ns / int64(time.Microsecond) % 1000,
	}
}

// Duration recomposes the retained units.
func (d ExecutionDuration) Duration() time.Duration {
	return time.Duration(d.Seconds)*time.Second +
		time.Duration(d.Milliseconds)*time.Millisecond +
		time.Duration(d.Microseconds)*time.Microsecond
}

func (d ExecutionDuration) String() string {
	return fmt.Sprintf("%ds %dms %dus", d.Seconds, d.Milliseconds, d.Microseconds)
}

// executionTimer measures one sort call. The production clock reads
// time.Now, whose monotonic component makes Sub immune to wall clock steps.
type executionTimer struct {
	clock clock.Clock
	start time.Time
}

func makeExecutionTimer(c clock.Clock) *executionTimer {
	if c == nil {
		c = clock.New()
	}
	return &executionTimer{clock: c}
}

func (t *executionTimer) Start() {
	t.start = t.clock.Now()
}

func (t *executionTimer) Stop() ExecutionDuration {
	return elapsed(t.start, t.clock.Now())
}

func elapsed(start, end time.Time) ExecutionDuration {
	return makeExecutionDuration(end.Sub(start))
}
