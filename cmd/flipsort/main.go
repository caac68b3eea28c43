// Command flipsort is the interactive driver for the pancake-sorting
// search library. It reads a starting stack as a comma-separated list of
// distinct integers 1..N (top pancake first), runs Uniform Cost Search and
// A* back-to-back on independent copies, and prints each optimal flip path
// together with a head-to-head comparison of the two strategies.
//
// Usage:
//
//	flipsort                        # prompt for the starting stack
//	flipsort --stack 4,1,5,2,3      # non-interactive
//	flipsort --algo astar           # run a single strategy
//	flipsort --stack 4,1,5,2,3 -v   # debug-log every expansion
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmarkou/flipsort/search"
	"github.com/dmarkou/flipsort/stack"
)

const (
	algoUCS   = "ucs"
	algoAStar = "astar"
	algoBoth  = "both"
)

type options struct {
	stackCSV string
	algo     string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "flipsort",
		Short: "Solve the pancake-stack sorting puzzle with UCS and A*",
		Long: `flipsort finds the minimal sequence of prefix reversals (spatula flips)
that sorts a pancake stack, using Uniform Cost Search and A* with the
adjacent-pancake heuristic, and compares the two runs.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoot(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.stackCSV, "stack", "",
		"starting stack as comma-separated integers 1..N, top first (prompts if empty)")
	cmd.Flags().StringVar(&opts.algo, "algo", algoBoth,
		"strategy to run: ucs, astar, or both")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"debug-log every node expansion")

	return cmd
}

func runRoot(cmd *cobra.Command, opts *options) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)

	if opts.algo != algoUCS && opts.algo != algoAStar && opts.algo != algoBoth {
		return fmt.Errorf("unknown --algo %q: want %s, %s, or %s", opts.algo, algoUCS, algoAStar, algoBoth)
	}

	initial, err := resolveStack(cmd, opts.stackCSV)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styleStack.Render(initial.String()))

	var ucs, astar *timedRun
	if opts.algo == algoUCS || opts.algo == algoBoth {
		ucs, err = runTimed(cmd, logger, "UCS", search.UCS, initial)
		if err != nil {
			return err
		}
	}
	if opts.algo == algoAStar || opts.algo == algoBoth {
		astar, err = runTimed(cmd, logger, "A*", search.AStar, initial)
		if err != nil {
			return err
		}
	}
	if ucs != nil && astar != nil {
		printComparison(cmd.OutOrStdout(), ucs, astar)
	}

	return nil
}

// resolveStack parses the --stack flag when present, otherwise enters the
// interactive prompt loop on the command's stdin.
func resolveStack(cmd *cobra.Command, csv string) (stack.Stack, error) {
	if csv != "" {
		s, err := parseStack(csv)
		if err != nil {
			return nil, fmt.Errorf("--stack: %w", err)
		}

		return s, nil
	}

	return promptStack(cmd.InOrStdin(), cmd.OutOrStdout())
}

// timedRun couples a strategy's result with its wall-clock duration,
// measured around the search call only.
type timedRun struct {
	name    string
	res     *search.Result
	elapsed time.Duration
}

// runTimed executes one strategy on its own copy of the initial stack,
// timing the call and printing the run report.
func runTimed(
	cmd *cobra.Command,
	logger *slog.Logger,
	name string,
	solve func([]int, ...search.Option) (*search.Result, error),
	initial stack.Stack,
) (*timedRun, error) {
	var searchOpts []search.Option
	if logger.Enabled(cmd.Context(), slog.LevelDebug) {
		searchOpts = append(searchOpts, search.WithOnExpand(func(s stack.Stack, cost int) {
			logger.Debug("expanding node", "algo", name, "stack", s.String(), "cost", cost)
		}))
	}

	start := time.Now()
	res, err := solve(initial.Clone(), searchOpts...)
	elapsed := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	run := &timedRun{name: name, res: res, elapsed: elapsed}
	printRun(cmd.OutOrStdout(), run)

	return run, nil
}

// newLogger builds the CLI logger: debug level when verbose, warnings only
// otherwise (the normal output path is the styled report, not the log).
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
