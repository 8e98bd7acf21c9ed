package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Harness runs the selected algorithms one after another over copies of a
// single generated array and reports each run.
type Harness struct {
	log   *zap.Logger
	clock clock.Clock
	out   io.Writer

	// newSorter resolves an Algorithm; replaced in tests.
	newSorter func(Algorithm, *rand.Rand) (Sorter, error)
}

func MakeHarness(log *zap.Logger, c clock.Clock, out io.Writer) *Harness {
	if log == nil {
		log = zap.NewNop()
	}
	if c == nil {
		c = clock.New()
	}
	return &Harness{
		log:       log,
		clock:     c,
		out:       out,
		newSorter: newSorter,
	}
}

func (h *Harness) Run(cfg *config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = h.clock.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	h.log.Info("Generating input",
		zap.Int("size", cfg.Size),
		zap.Uint64("max", cfg.Max),
		zap.Int64("seed", seed))

	source, err := MakeArraySource(rng, cfg.Max)
	if err != nil {
		return &usageError{err: err}
	}
	input := source.Generate(cfg.Size)

	runs, err := makeRunQueue(cfg.Algorithms)
	if err != nil {
		return err
	}
	board := makeLeaderboard()
	multi := runs.len() > 1

	for !runs.empty() {
		a, err := runs.pop()
		if err != nil {
			return err
		}
		result, myArray, err := h.runOne(a, input, rng)
		if err != nil {
			h.log.Error("Validation failed", zap.Stringer("algorithm", a), zap.Error(err))
			return err
		}

		if multi && board.len() > 0 {
			fmt.Fprintln(h.out)
		}
		printReport(h.out, result)
		board.add(result)

		if cfg.Print {
			if err := h.dump(myArray, cfg.Rate); err != nil {
				return err
			}
		}
	}

	if multi {
		ranking, err := board.ranking()
		if err != nil {
			return err
		}
		fmt.Fprintln(h.out)
		printRanking(h.out, cfg.Size, ranking)
	}
	return nil
}

// runOne sorts a private copy of input with a and validates the outcome.
func (h *Harness) runOne(a Algorithm, input []uint64, rng *rand.Rand) (*runResult, []uint64, error) {
	sorter, err := h.newSorter(a, rng)
	if err != nil {
		return nil, nil, err
	}
	myArray := make([]uint64, len(input))
	copy(myArray, input)

	log := h.log.With(zap.Stringer("algorithm", a))
	log.Debug("Sorting", zap.Int("size", len(myArray)))

	timer := makeExecutionTimer(h.clock)
	timer.Start()
	sorter.Sort(myArray)
	d := timer.Stop()

	log.Info("Sorted", zap.Duration("elapsed", d.Duration()))

	if !checkArray(myArray) {
		return nil, nil, errors.Wrap(errNotSorted, a.String())
	}
	if fingerprintOf(myArray) != fingerprintOf(input) {
		return nil, nil, errors.Wrap(errNotPermutation, a.String())
	}

	result := &runResult{
		algorithm: a,
		size:      len(myArray),
		duration:  d,
	}
	if len(myArray) > 0 {
		result.min = myArray[0]
		result.max = myArray[len(myArray)-1]
	}
	return result, myArray, nil
}

func (h *Harness) dump(myArray []uint64, rate uint) error {
	var sink Sink = MakeWriterSink(h.out)
	if rate > 0 {
		sink = MakeRateLimiter(h.clock, rate, sink)
	}
	return drain(sink, myArray)
}
