// Package flipsort solves the pancake-stack sorting puzzle: given a stack
// of N distinctly sized pancakes, find the shortest sequence of prefix
// reversals (spatula flips) that sorts the stack smallest-on-top.
//
// 🥞 What is flipsort?
//
//	A small, focused search library built from two subpackages:
//		• stack/  — the Stack value type, the Flip(k) operator, validation,
//		            and the sorted goal stack
//		• search/ — the best-first search engine with two strategies on a
//		            shared template: Uniform Cost Search and A* with the
//		            adjacent-pancake heuristic
//
// ✨ Why choose flipsort?
//
//   - Optimal solutions – both strategies always return a minimal flip count
//   - Deterministic – priority ties break FIFO, so results are reproducible
//   - Pure Go – no cgo, sequential, allocation-conscious frontier
//   - Observable – hook callbacks (OnExpand, OnGenerate) for custom logic
//
// Quick example, sorting the stack 3,1,2 (listed top to bottom):
//
//	[3 1 2] → flip(3) → [2 1 3] → flip(2) → [1 2 3]   (cost 2)
//
// A ready-made interactive driver lives under cmd/flipsort:
//
//	go run ./cmd/flipsort --stack 4,1,5,2,3
//
// It runs both strategies back-to-back and prints a head-to-head comparison
// of path, cost, generated nodes, and elapsed time.
package flipsort
