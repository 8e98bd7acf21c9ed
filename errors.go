package main

import "github.com/pkg/errors"

const (
	exitOK         = 0
	exitValidation = 1
	exitUsage      = 2
)

var (
	errNotSorted      = errors.New("array not properly sorted")
	errNotPermutation = errors.New("array is not a permutation of the input")
)

// usageError marks a problem with the command line. The caller prints the
// usage text and exits with exitUsage.
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

func usageErrorf(format string, args ...interface{}) error {
	return &usageError{err: errors.Errorf(format, args...)}
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var uerr *usageError
	if errors.As(err, &uerr) {
		return exitUsage
	}
	return exitValidation
}
