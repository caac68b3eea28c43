package search

import "github.com/dmarkou/flipsort/stack"

// UCS finds a minimal flip sequence sorting initial using Uniform Cost
// Search: the frontier is ordered by path cost alone, so the first time the
// sorted stack is extracted it has been reached by a cheapest route.
//
// initial must be a permutation of 1..N for some N ≥ 1; otherwise UCS
// returns ErrInvalidStack wrapping the specific stack sentinel. An already
// sorted stack yields Cost 0, a single-element Path, and Generated 1.
//
// Complexity: worst case O(N! · N) generated nodes with O(log F) per
// frontier operation; memory O(N!) in the worst case. No internal bound is
// enforced — callers wanting a wall-clock limit must impose their own
// around the call.
func UCS(initial []int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return run(stack.Stack(initial), zeroHeuristic, o)
}
