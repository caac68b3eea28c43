package search

import "github.com/dmarkou/flipsort/stack"

// AdjacencyGaps counts the adjacent pairs of s whose sizes are not
// consecutive integers in either direction: |s[i]-s[i+1]| ≠ 1.
//
// Each flip can close at most one gap (only the pair straddling the spatula
// changes adjacency), so the count never overestimates the remaining flips
// — the heuristic is admissible. For the same reason a single unit-cost
// flip changes the count by at most one, making it consistent, which the
// engine's never-reopen closed set relies on.
//
// Note the gap count of the fully reversed stack is 0: every neighboring
// pair still differs by exactly 1.
func AdjacencyGaps(s stack.Stack) int {
	gaps := 0
	var d int
	for i := 0; i+1 < len(s); i++ {
		d = s[i] - s[i+1]
		if d != 1 && d != -1 {
			gaps++
		}
	}

	return gaps
}

// zeroHeuristic turns the shared engine into plain Uniform Cost Search.
func zeroHeuristic(stack.Stack) int { return 0 }
