// Package search_test contains unit tests for the adjacent-pancake
// heuristic: the gap-counting rule, admissibility spot checks, and the
// single-flip consistency bound.
package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmarkou/flipsort/search"
	"github.com/dmarkou/flipsort/stack"
)

func TestAdjacencyGaps_Values(t *testing.T) {
	// Sorted stacks have no gaps.
	assert.Equal(t, 0, search.AdjacencyGaps(stack.Stack{1, 2, 3, 4}))
	// The fully reversed stack also has none: every pair still differs by 1.
	assert.Equal(t, 0, search.AdjacencyGaps(stack.Stack{4, 3, 2, 1}))
	// (1,3) gap, (3,2) no gap, (2,4) gap.
	assert.Equal(t, 2, search.AdjacencyGaps(stack.Stack{1, 3, 2, 4}))
	// Single pancake: no pairs, no gaps.
	assert.Equal(t, 0, search.AdjacencyGaps(stack.Stack{1}))
	// (4,1), (1,5), (5,2) gaps; (2,3) consecutive.
	assert.Equal(t, 3, search.AdjacencyGaps(stack.Stack{4, 1, 5, 2, 3}))
}

// TestAdjacencyGaps_ConsistentUnderFlips verifies the property the closed
// set relies on: one flip changes the gap count by at most one.
func TestAdjacencyGaps_ConsistentUnderFlips(t *testing.T) {
	stacks := []stack.Stack{
		{4, 1, 5, 2, 3},
		{2, 4, 6, 1, 3, 5},
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
	}
	for _, s := range stacks {
		before := search.AdjacencyGaps(s)
		for k := 2; k <= len(s); k++ {
			after := search.AdjacencyGaps(s.Flip(k))
			diff := before - after
			if diff < 0 {
				diff = -diff
			}
			assert.LessOrEqual(t, diff, 1, "flip(%d) on %v changed gaps by %d", k, s, diff)
		}
	}
}

// TestAdjacencyGaps_Admissible checks h(s) ≤ true minimal flip count on
// every permutation of four pancakes, using the BFS oracle.
func TestAdjacencyGaps_Admissible(t *testing.T) {
	for _, p := range permutations(4) {
		h := search.AdjacencyGaps(p)
		opt := oracleCost(t, p)
		assert.LessOrEqual(t, h, opt, "heuristic overestimates on %v", p)
	}
}
