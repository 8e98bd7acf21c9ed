package main

import (
	"github.com/Workiva/go-datastructures/queue"
	pq "github.com/jupp0r/go-priority-queue"
	"github.com/pkg/errors"
)

// runQueue holds the algorithms still to be run, in selection order.
type runQueue struct {
	queue *queue.Queue
}

func makeRunQueue(algorithms []Algorithm) (*runQueue, error) {
	rq := &runQueue{queue: queue.New(int64(len(algorithms)))}
	for _, a := range algorithms {
		if err := rq.queue.Put(a); err != nil {
			return nil, errors.Wrap(err, "queueing run")
		}
	}
	return rq, nil
}

func (rq *runQueue) empty() bool {
	return rq.queue.Empty()
}

func (rq *runQueue) len() int {
	return int(rq.queue.Len())
}

// pop must only be called on a non-empty queue; Get blocks otherwise.
func (rq *runQueue) pop() (Algorithm, error) {
	items, err := rq.queue.Get(1)
	if err != nil {
		return 0, errors.Wrap(err, "pop(): popping from run queue")
	}
	return items[0].(Algorithm), nil
}

type runResult struct {
	algorithm Algorithm
	size      int
	min, max  uint64
	duration  ExecutionDuration
}

// leaderboard ranks finished runs, fastest first.
type leaderboard struct {
	queue pq.PriorityQueue
}

func makeLeaderboard() *leaderboard {
	return &leaderboard{queue: pq.New()}
}

func (l *leaderboard) add(result *runResult) {
	l.queue.Insert(result, float64(result.duration.Duration()))
}

func (l *leaderboard) len() int {
	return l.queue.Len()
}

// ranking empties the leaderboard and returns the results in order.
func (l *leaderboard) ranking() ([]*runResult, error) {
	ret := make([]*runResult, 0, l.queue.Len())
	for l.queue.Len() > 0 {
		item, err := l.queue.Pop()
		if err != nil {
			return nil, errors.Wrap(err, "popping from leaderboard")
		}
		ret = append(ret, item.(*runResult))
	}
	return ret, nil
}
