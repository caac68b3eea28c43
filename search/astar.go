package search

import "github.com/dmarkou/flipsort/stack"

// AStar finds a minimal flip sequence sorting initial using A*: the
// frontier is ordered by path cost plus AdjacencyGaps, computed once per
// generated candidate and stored on the node. Because the heuristic is
// admissible and consistent, AStar returns the same minimal cost as UCS
// while never generating more nodes on the same instance.
//
// initial must be a permutation of 1..N for some N ≥ 1; otherwise AStar
// returns ErrInvalidStack wrapping the specific stack sentinel. An already
// sorted stack yields Cost 0, a single-element Path, and Generated 1.
//
// Substituting a different heuristic requires re-verifying consistency:
// the engine never re-opens closed stacks, which is only sound when the
// heuristic satisfies the triangle inequality across single flips.
func AStar(initial []int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return run(stack.Stack(initial), AdjacencyGaps, o)
}
