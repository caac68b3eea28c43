// Package stack defines the Stack permutation type, its validation, and the
// prefix-reversal flip operator shared by every search strategy.
//
// This file declares Stack, the sentinel validation errors, and all value
// operations (Flip, Clone, Equal, IsSorted, Sorted, Key, String, FlipLength).
package stack

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for stack validation.
var (
	// ErrEmptyStack indicates that the provided stack has no pancakes.
	ErrEmptyStack = errors.New("stack: stack is empty")

	// ErrDuplicateValue indicates that a pancake size appears more than once.
	ErrDuplicateValue = errors.New("stack: duplicate pancake size")

	// ErrValueOutOfRange indicates a pancake size outside [1,N]. Since a valid
	// stack of length N holds N distinct sizes, an out-of-range size also
	// implies some size in 1..N is missing.
	ErrValueOutOfRange = errors.New("stack: pancake size out of range")
)

// Stack is one permutation of pancake sizes, listed top of the stack first.
// It is a value type: two stacks are equal iff their sequences are equal
// element-wise, and no operation in this package mutates its receiver.
type Stack []int

// Validate checks that s is a permutation of 1..len(s).
// It returns ErrEmptyStack, ErrDuplicateValue, or ErrValueOutOfRange,
// wrapped with the offending value for context.
//
// A duplicate-free sequence of length N with every value in [1,N] is
// necessarily a full permutation, so no separate missing-value pass is needed.
func Validate(s Stack) error {
	n := len(s)
	if n == 0 {
		return ErrEmptyStack
	}
	seen := make([]bool, n+1)
	for _, v := range s {
		if v < 1 || v > n {
			return fmt.Errorf("%w: %d not in [1,%d]", ErrValueOutOfRange, v, n)
		}
		if seen[v] {
			return fmt.Errorf("%w: %d appears more than once", ErrDuplicateValue, v)
		}
		seen[v] = true
	}

	return nil
}

// Clone returns an independent copy of s.
func (s Stack) Clone() Stack {
	out := make(Stack, len(s))
	copy(out, s)

	return out
}

// Flip returns a new stack with the order of the first k pancakes reversed
// and the remaining len(s)-k pancakes untouched. k must lie in [2,len(s)];
// Flip panics otherwise (flip length is chosen by the caller's loop, never
// by external input).
func (s Stack) Flip(k int) Stack {
	if k < 2 || k > len(s) {
		panic(fmt.Sprintf("stack: flip length %d out of range [2,%d]", k, len(s)))
	}
	out := s.Clone()
	for i, j := 0, k-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// Equal reports whether s and t hold the same pancakes in the same order.
func (s Stack) Equal(t Stack) bool {
	if len(s) != len(t) {
		return false
	}
	for i, v := range s {
		if t[i] != v {
			return false
		}
	}

	return true
}

// IsSorted reports whether s is already the goal stack 1..N.
func (s Stack) IsSorted() bool {
	for i, v := range s {
		if v != i+1 {
			return false
		}
	}

	return true
}

// Sorted returns the goal stack for size n: 1..n ascending, smallest on top.
func Sorted(n int) Stack {
	out := make(Stack, n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}

// Key returns a canonical encoding of s ("4,1,5,2,3") that is injective over
// permutations, for use as a frontier/closed map key.
func (s Stack) Key() string {
	var b strings.Builder
	// 2 bytes per element covers single digits plus separators; Builder grows
	// as needed for larger sizes.
	b.Grow(2 * len(s))
	for i, v := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// String renders s in the usual Go slice form, e.g. "[4 1 5 2 3]".
func (s Stack) String() string {
	return fmt.Sprint([]int(s))
}

// FlipLength returns the unique k in [2,len(from)] such that
// from.Flip(k) equals to, and ok=true; ok=false if no single flip turns
// from into to (including the case from == to).
func FlipLength(from, to Stack) (k int, ok bool) {
	if len(from) != len(to) {
		return 0, false
	}
	// A flip of length k leaves positions k..N-1 untouched, so k-1 is the
	// last position where the stacks differ.
	k = 0
	for i := len(from) - 1; i >= 0; i-- {
		if from[i] != to[i] {
			k = i + 1
			break
		}
	}
	if k < 2 {
		return 0, false
	}
	// Verify the prefix is exactly reversed, not merely permuted.
	for i := 0; i < k; i++ {
		if to[i] != from[k-1-i] {
			return 0, false
		}
	}

	return k, true
}
