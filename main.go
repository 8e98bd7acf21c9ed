package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const programName = "arraysort"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and maps the outcome to an exit code.
// Usage text and the report both go to stdout; logs go to stderr.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newCommand(stdout, stderr, clock.New())
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return exitOK
	}

	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintf(stdout, "ERROR: %s\n", uerr)
		_ = cmd.Usage()
	} else {
		fmt.Fprintf(stdout, "ERROR: %s\n", errors.Cause(err))
	}
	return exitCode(err)
}

func newCommand(stdout, stderr io.Writer, c clock.Clock) *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   programName + " --algorithm <name> --size <n>",
		Short: "Implementation and comparison of sorting algorithms",
		Long: `Generates a random array of non-negative integers, sorts it with the
selected algorithm, checks the result and reports the execution time.

Algorithms: ` + strings.Join(algorithmNames[:], " | ") + ` | all`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageErrorf("unexpected arguments: %s", strings.Join(args, " "))
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			log := newLogger(stderr, cfg.LogLevel)
			defer func() { _ = log.Sync() }()
			return MakeHarness(log, c, stdout).Run(cfg)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := cmd.Flags()
	flags.StringSliceP(flagAlgorithm, "a", nil, "sorting algorithm ("+strings.Join(algorithmNames[:], "|")+"|all), repeatable")
	flags.IntP(flagSize, "s", 0, "size of the array to be sorted")
	flags.Uint64P(flagMax, "m", defaultMaxValue, "largest value that may be generated")
	flags.Int64(flagSeed, 0, "random seed, 0 picks one from the clock")
	flags.BoolP(flagPrint, "p", false, "print the sorted array, one value per line")
	flags.IntP(flagRate, "r", 0, "values printed per 100ms, 0 means unlimited")
	flags.String(flagLogLevel, "warn", "log level (debug, info, warn, error)")

	v.SetEnvPrefix(strings.ToUpper(programName))
	v.AutomaticEnv()
	// This normalizes "-" to an underscore in env names.
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	flags.VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil {
			panic(err)
		}
	})

	return cmd
}
