package main

import (
	"time"

	"github.com/benbjohnson/clock"
)

const rateWindow = 100 * time.Millisecond

// RateLimiter lets at most limit values through to downstream per window,
// sleeping out the rest of the window once the limit is hit.
type RateLimiter struct {
	clock       clock.Clock
	windowStart time.Time
	counter     uint
	limit       uint
	downstream  Sink
}

func (r *RateLimiter) Write(value uint64) error {
	now := r.clock.Now()
	if now.Sub(r.windowStart) >= rateWindow {
		r.windowStart = now
		r.counter = 0
	}
	if r.limit <= r.counter {
		r.clock.Sleep(rateWindow - now.Sub(r.windowStart))
		r.windowStart = r.clock.Now()
		r.counter = 0
	}
	r.counter++
	return r.downstream.Write(value)
}

func MakeRateLimiter(c clock.Clock, limit uint, sink Sink) Sink {
	return &RateLimiter{
		clock:      c,
		limit:      limit,
		downstream: sink,
	}
}
