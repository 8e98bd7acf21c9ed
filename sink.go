package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Sink receives the values of a sorted array, smallest first.
type Sink interface {
	Write(value uint64) error
}

// WriterSink prints one value per line and re-checks the ordering of what
// it has printed.
type WriterSink struct {
	w     io.Writer
	order orderValidator[uint64]
}

func MakeWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (sink *WriterSink) Write(value uint64) error {
	if !sink.order.accept(value) {
		return errors.Wrapf(errNotSorted, "sink check failed at %d", value)
	}
	_, err := fmt.Fprintln(sink.w, value)
	return err
}

// drain writes every element of myArray to sink in order.
func drain(sink Sink, myArray []uint64) error {
	for _, v := range myArray {
		if err := sink.Write(v); err != nil {
			return err
		}
	}
	return nil
}
