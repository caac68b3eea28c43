// Package stack provides the pancake Stack value type and the single
// state-transition operator of the puzzle: the prefix-reversal Flip.
//
// What
//
//   - Stack: an ordered sequence of N distinct pancake sizes in [1,N],
//     listed top of the stack first. Always treated as an immutable value;
//     every operation returns a fresh Stack.
//   - Flip(k): reverse the first k pancakes (2 ≤ k ≤ N), the only move the
//     puzzle allows. Flip(1) is a no-op and is never part of the move set.
//   - Validate: reject sequences that are not a permutation of 1..N
//     (empty input, duplicates, values out of range).
//   - Sorted(n): the goal stack 1..n, smallest pancake on top.
//   - Key: a canonical string encoding of a Stack, suitable as a map key
//     for frontier/closed membership tests.
//   - FlipLength: recover the unique k turning one stack into another, or
//     report that no single flip does.
//
// Why
//
//	Every search strategy in flipsort manipulates the same value type; the
//	puzzle's correctness hinges on value equality of whole permutations, so
//	Stack carries no identity beyond its contents.
//
// Determinism
//
//	All operations are pure; Flip on equal stacks with equal k yields equal
//	stacks. Key is injective over permutations, so map membership by Key is
//	exactly value equality.
//
// Errors
//
//   - ErrEmptyStack       if a stack has no pancakes.
//   - ErrDuplicateValue   if a pancake size appears more than once.
//   - ErrValueOutOfRange  if a pancake size falls outside [1,N].
//
// Flip panics on k outside [2,N]; an out-of-range flip length is a
// programmer error, not a runtime condition.
package stack
