package main

import (
	"fmt"
	"io"

	humanize "github.com/dustin/go-humanize"
)

func printReport(w io.Writer, r *runResult) {
	fmt.Fprintf(w, "Algorithm: %s\n", r.algorithm.DisplayName())
	fmt.Fprintf(w, "Problem Size: %d\n", r.size)
	fmt.Fprintf(w, "Min Value: %d\n", r.min)
	fmt.Fprintf(w, "Max Value: %d\n", r.max)
	fmt.Fprintf(w, "Execution Time: %s\n", r.duration)
}

func printRanking(w io.Writer, size int, ranking []*runResult) {
	fmt.Fprintf(w, "Ranking (%s elements):\n", humanize.Comma(int64(size)))
	for i, r := range ranking {
		fmt.Fprintf(w, "%d. %-15s %s\n", i+1, r.algorithm.DisplayName(), r.duration)
	}
}
