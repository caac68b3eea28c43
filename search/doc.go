// Package search provides the best-first search engine for the pancake
// sorting puzzle, with two strategies instantiated from one shared template:
// Uniform Cost Search and A* with the adjacent-pancake heuristic.
//
// What
//
//   - UCS(initial): optimal flip sequence ordering the frontier by path
//     cost alone.
//   - AStar(initial): optimal flip sequence ordering the frontier by
//     path cost plus AdjacencyGaps, computed once per generated candidate.
//   - Both return a Result containing:
//   - Path: the stacks from the initial permutation to the sorted goal
//   - Cost: the minimal number of flips (len(Path)-1)
//   - Generated: every candidate node created during the run, discarded
//     candidates included (comparable across the two strategies)
//   - Supports functional hooks at two stages:
//   - OnExpand   (a node is extracted from the frontier and closed)
//   - OnGenerate (a candidate successor is created)
//
// Why
//
//   - UCS needs no domain knowledge and is optimal by extraction order.
//   - A* prunes with an admissible, consistent heuristic and never
//     generates more nodes than UCS on the same instance.
//   - One engine, two priority functions: the template stays honest about
//     sharing the frontier, closed-set, and replacement semantics.
//
// Frontier semantics
//
//	The open set holds at most one live node per distinct stack. Successors
//	whose stack is already closed are discarded and never re-opened — safe
//	for UCS by extraction order and for A* because AdjacencyGaps is
//	consistent (a single flip changes the gap count by at most one, matching
//	the unit edge cost). A successor that improves on a resident frontier
//	node replaces it wholesale; nodes are never mutated in place.
//
// Determinism
//
//	The frontier breaks priority ties by insertion order (FIFO), so repeated
//	runs on the same stack return byte-identical paths.
//
// Complexity (N = stack size)
//
//   - Each expansion generates exactly N-1 successors (flip lengths 2..N).
//   - Worst case visits all N! permutations; the frontier map and the
//     lazily-pruned binary heap keep membership O(1) and extraction
//     O(log F) for frontier size F.
//
// Usage
//
//	res, err := search.AStar([]int{4, 1, 5, 2, 3})
//	if err != nil {
//	    // ErrInvalidStack wrapping one of the stack package sentinels
//	}
//	fmt.Println(res.Cost, res.Generated)
//	for _, s := range res.Path {
//	    fmt.Println(s)
//	}
//
// Options
//
//   - WithOnExpand(fn):   hook when a node is extracted for expansion.
//   - WithOnGenerate(fn): hook for every generated candidate.
//
// Errors
//
//   - ErrInvalidStack if the initial stack is not a permutation of 1..N
//     (wraps stack.ErrEmptyStack, stack.ErrDuplicateValue, or
//     stack.ErrValueOutOfRange).
//   - ErrExhausted if the frontier empties before the goal is reached;
//     unreachable for valid input, since every permutation can be sorted
//     by prefix reversals.
package search
