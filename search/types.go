// Package search defines configuration options, sentinel errors, and the
// Result type shared by the UCS and A* entry points.
package search

import (
	"errors"

	"github.com/dmarkou/flipsort/stack"
)

// Sentinel errors for search execution.
var (
	// ErrInvalidStack is returned when the initial stack is not a permutation
	// of 1..N. It wraps the specific stack package sentinel, so both
	// errors.Is(err, ErrInvalidStack) and errors.Is(err, stack.ErrDuplicateValue)
	// hold for a duplicate-value input.
	ErrInvalidStack = errors.New("search: invalid initial stack")

	// ErrExhausted is returned if the frontier empties before the goal is
	// extracted. Every permutation is sortable by prefix reversals, so this
	// cannot occur for validated input; the sentinel exists so a future
	// bounded variant has a defined failure mode.
	ErrExhausted = errors.New("search: frontier exhausted before reaching the goal")

	// ErrBrokenPath is returned by Result.Flips when adjacent path stacks do
	// not differ by exactly one flip.
	ErrBrokenPath = errors.New("search: adjacent path stacks do not differ by one flip")
)

// Heuristic estimates the remaining number of flips for a stack.
// It must never overestimate (admissible); consistency is additionally
// required for the engine's closed-set pruning to stay optimal.
type Heuristic func(s stack.Stack) int

// Hook observes search progress. It receives the stack involved and its
// path cost (flips from the initial stack). Hooks must not retain or
// mutate the stack.
type Hook func(s stack.Stack, cost int)

// Option configures a search run via functional arguments.
type Option func(*Options)

// Options holds callbacks to customize a search run. Hooks carry no
// semantic weight: the returned Result is identical with or without them.
type Options struct {
	// OnExpand is called when a node is extracted from the frontier and
	// moved to the closed set, the goal node included.
	OnExpand Hook

	// OnGenerate is called for every candidate successor the moment it is
	// generated, before the frontier/closed merge decides its fate.
	OnGenerate Hook
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnExpand:   func(stack.Stack, int) {},
		OnGenerate: func(stack.Stack, int) {},
	}
}

// WithOnExpand registers a callback to run when a node is extracted for
// expansion.
func WithOnExpand(fn Hook) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnGenerate registers a callback to run for every generated candidate,
// discarded candidates included.
func WithOnGenerate(fn Hook) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGenerate = fn
		}
	}
}

// Result holds the outcome of a completed search run:
//   - Path: stacks from the initial permutation to the sorted goal, inclusive.
//   - Cost: minimal number of flips; always len(Path)-1.
//   - Generated: count of candidate nodes created during the run, the root
//     and discarded candidates included. Generated is comparable between UCS
//     and A* on the same instance and is always ≥ 1.
type Result struct {
	Path      []stack.Stack
	Cost      int
	Generated int
}

// Flips returns the flip length applied at each step of Path, so that
// Path[i].Flip(k[i]) == Path[i+1]. Returns ErrBrokenPath if Path was
// tampered with; engine-produced results never fail.
func (r *Result) Flips() ([]int, error) {
	if len(r.Path) == 0 {
		return nil, ErrBrokenPath
	}
	ks := make([]int, 0, len(r.Path)-1)
	for i := 0; i+1 < len(r.Path); i++ {
		k, ok := stack.FlipLength(r.Path[i], r.Path[i+1])
		if !ok {
			return nil, ErrBrokenPath
		}
		ks = append(ks, k)
	}

	return ks, nil
}

// Goal returns the final stack of the path (the sorted permutation).
func (r *Result) Goal() stack.Stack {
	return r.Path[len(r.Path)-1]
}
