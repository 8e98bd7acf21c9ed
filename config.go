package main

import (
	"math"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	flagAlgorithm = "algorithm"
	flagSize      = "size"
	flagMax       = "max"
	flagSeed      = "seed"
	flagPrint     = "print"
	flagRate      = "rate"
	flagLogLevel  = "log-level"
)

type config struct {
	Algorithms []Algorithm
	Size       int
	Max        uint64
	Seed       int64
	Print      bool
	Rate       uint
	LogLevel   zapcore.Level
}

// loadConfig reads the bound flags and env vars from v and validates them.
// Every failure is a usage error.
func loadConfig(v *viper.Viper) (*config, error) {
	names := v.GetStringSlice(flagAlgorithm)
	if len(names) == 0 {
		return nil, usageErrorf("flag is mandatory: --%s", flagAlgorithm)
	}
	algorithms, err := parseAlgorithms(names)
	if err != nil {
		return nil, &usageError{err: err}
	}
	if len(algorithms) == 0 {
		return nil, usageErrorf("flag is mandatory: --%s", flagAlgorithm)
	}

	size := v.GetInt(flagSize)
	if size == 0 {
		return nil, usageErrorf("flag is mandatory: --%s", flagSize)
	}
	if size < 0 {
		return nil, usageErrorf("--%s must be a positive integer, got %d", flagSize, size)
	}

	max := v.GetUint64(flagMax)
	if max >= math.MaxInt64 {
		return nil, usageErrorf("--%s must be below %d", flagMax, uint64(math.MaxInt64))
	}

	rate := v.GetInt(flagRate)
	if rate < 0 {
		return nil, usageErrorf("--%s must not be negative, got %d", flagRate, rate)
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(v.GetString(flagLogLevel))); err != nil {
		return nil, usageErrorf("--%s: %s", flagLogLevel, err)
	}

	return &config{
		Algorithms: algorithms,
		Size:       size,
		Max:        max,
		Seed:       v.GetInt64(flagSeed),
		Print:      v.GetBool(flagPrint),
		Rate:       uint(rate),
		LogLevel:   level,
	}, nil
}
