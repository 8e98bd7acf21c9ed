package main

import (
	"math/rand"
	"strings"

	"github.com/pkg/errors"
)

// Algorithm selects exactly one sorting routine.
type Algorithm int

const (
	TrivialSort Algorithm = iota
	BubbleSort
	InsertionSort
	MergeSort
	HeapSort
	QuickSort

	numAlgorithms
)

const allAlgorithms = "all"

var algorithmNames = [numAlgorithms]string{
	TrivialSort:   "TrivialSort",
	BubbleSort:    "BubbleSort",
	InsertionSort: "InsertionSort",
	MergeSort:     "MergeSort",
	HeapSort:      "HeapSort",
	QuickSort:     "QuickSort",
}

var algorithmDisplayNames = [numAlgorithms]string{
	TrivialSort:   "Trivial Sort",
	BubbleSort:    "Bubble Sort",
	InsertionSort: "Insertion Sort",
	MergeSort:     "Merge Sort",
	HeapSort:      "Heap Sort",
	QuickSort:     "Quick Sort",
}

func (a Algorithm) valid() bool {
	return a >= 0 && a < numAlgorithms
}

func (a Algorithm) String() string {
	if !a.valid() {
		return "Algorithm(?)"
	}
	return algorithmNames[a]
}

func (a Algorithm) DisplayName() string {
	if !a.valid() {
		return a.String()
	}
	return algorithmDisplayNames[a]
}

// ParseAlgorithm resolves a command-line name. Names are case sensitive.
func ParseAlgorithm(name string) (Algorithm, error) {
	for a, n := range algorithmNames {
		if n == name {
			return Algorithm(a), nil
		}
	}
	return 0, errors.Errorf("invalid algorithm %q, expected one of %s", name, strings.Join(algorithmNames[:], " | "))
}

// parseAlgorithms expands a flag value list. Each entry may itself be a
// comma separated list, and "all" selects every algorithm in order.
func parseAlgorithms(names []string) ([]Algorithm, error) {
	var ret []Algorithm
	for _, entry := range names {
		for _, name := range strings.Split(entry, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if name == allAlgorithms {
				for a := Algorithm(0); a < numAlgorithms; a++ {
					ret = append(ret, a)
				}
				continue
			}
			a, err := ParseAlgorithm(name)
			if err != nil {
				return nil, err
			}
			ret = append(ret, a)
		}
	}
	return ret, nil
}

// newSorter binds each tag to its own routine. rng feeds the QuickSort
// pivot choice and may be nil.
func newSorter(a Algorithm, rng *rand.Rand) (Sorter, error) {
	switch a {
	case TrivialSort:
		return trivialSorter{}, nil
	case BubbleSort:
		return bubbleSorter{}, nil
	case InsertionSort:
		return insertionSorter{}, nil
	case MergeSort:
		return mergeSorter{}, nil
	case HeapSort:
		return heapSorter{}, nil
	case QuickSort:
		return quickSorter{rng: rng}, nil
	}
	return nil, errors.Errorf("no sorter bound to %s", a)
}
