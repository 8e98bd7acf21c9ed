package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunQueueOrder(t *testing.T) {
	rq, err := makeRunQueue([]Algorithm{QuickSort, TrivialSort, QuickSort})
	require.NoError(t, err)
	assert.Equal(t, 3, rq.len())

	var got []Algorithm
	for !rq.empty() {
		a, err := rq.pop()
		require.NoError(t, err)
		got = append(got, a)
	}
	assert.Equal(t, []Algorithm{QuickSort, TrivialSort, QuickSort}, got)
}

func TestLeaderboardRanking(t *testing.T) {
	board := makeLeaderboard()
	slow := &runResult{algorithm: BubbleSort, duration: makeExecutionDuration(2 * time.Second)}
	fast := &runResult{algorithm: QuickSort, duration: makeExecutionDuration(3 * time.Millisecond)}
	mid := &runResult{algorithm: MergeSort, duration: makeExecutionDuration(40 * time.Millisecond)}
	board.add(slow)
	board.add(fast)
	board.add(mid)
	assert.Equal(t, 3, board.len())

	ranking, err := board.ranking()
	require.NoError(t, err)
	assert.Equal(t, []*runResult{fast, mid, slow}, ranking)
	assert.Equal(t, 0, board.len())
}
