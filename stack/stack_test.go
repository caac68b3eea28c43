// Package stack_test contains unit tests for the Stack value type:
// validation sentinels, the flip operator, equality, canonical keys,
// and single-flip recovery.
package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarkou/flipsort/stack"
)

// ------------------------------------------------------------------------
// 1. Validation: permutation checks and sentinel errors.
// ------------------------------------------------------------------------

func TestValidate_Empty(t *testing.T) {
	assert.ErrorIs(t, stack.Validate(stack.Stack{}), stack.ErrEmptyStack, "empty stack must error")
	assert.ErrorIs(t, stack.Validate(nil), stack.ErrEmptyStack, "nil stack must error")
}

func TestValidate_Duplicate(t *testing.T) {
	err := stack.Validate(stack.Stack{1, 2, 2})
	assert.ErrorIs(t, err, stack.ErrDuplicateValue, "repeated size must error")
	assert.Contains(t, err.Error(), "2", "error should name the offending value")
}

func TestValidate_OutOfRange(t *testing.T) {
	// 5 cannot appear in a stack of length 3.
	assert.ErrorIs(t, stack.Validate(stack.Stack{1, 5, 2}), stack.ErrValueOutOfRange)
	// Zero and negatives are never legal sizes.
	assert.ErrorIs(t, stack.Validate(stack.Stack{0, 1}), stack.ErrValueOutOfRange)
	assert.ErrorIs(t, stack.Validate(stack.Stack{-1, 1}), stack.ErrValueOutOfRange)
}

func TestValidate_MissingValueSurfacesAsOutOfRange(t *testing.T) {
	// {1,3,4} of length 3 misses 2; 4 is out of [1,3], which is the same defect.
	assert.ErrorIs(t, stack.Validate(stack.Stack{1, 3, 4}), stack.ErrValueOutOfRange)
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, stack.Validate(stack.Stack{1}))
	assert.NoError(t, stack.Validate(stack.Stack{4, 1, 5, 2, 3}))
}

// ------------------------------------------------------------------------
// 2. Flip: prefix reversal semantics.
// ------------------------------------------------------------------------

func TestFlip_ReversesPrefixOnly(t *testing.T) {
	s := stack.Stack{4, 1, 5, 2, 3}
	got := s.Flip(3)
	assert.Equal(t, stack.Stack{5, 1, 4, 2, 3}, got, "first 3 reversed, tail untouched")
	assert.Equal(t, stack.Stack{4, 1, 5, 2, 3}, s, "receiver must not be mutated")
}

func TestFlip_FullStack(t *testing.T) {
	s := stack.Stack{3, 1, 2}
	assert.Equal(t, stack.Stack{2, 1, 3}, s.Flip(3))
}

func TestFlip_IsAnInvolution(t *testing.T) {
	s := stack.Stack{4, 1, 5, 2, 3}
	for k := 2; k <= len(s); k++ {
		assert.True(t, s.Flip(k).Flip(k).Equal(s), "flip(%d) twice must restore the stack", k)
	}
}

func TestFlip_PanicsOnBadLength(t *testing.T) {
	s := stack.Stack{2, 1}
	assert.Panics(t, func() { s.Flip(1) }, "flip(1) is a no-op and is excluded")
	assert.Panics(t, func() { s.Flip(3) }, "flip beyond the stack must panic")
}

// ------------------------------------------------------------------------
// 3. Value semantics: Clone, Equal, IsSorted, Sorted, Key, String.
// ------------------------------------------------------------------------

func TestClone_Independent(t *testing.T) {
	s := stack.Stack{2, 1, 3}
	c := s.Clone()
	c[0] = 9
	assert.Equal(t, stack.Stack{2, 1, 3}, s, "mutating a clone must not touch the original")
}

func TestEqual(t *testing.T) {
	assert.True(t, stack.Stack{1, 2}.Equal(stack.Stack{1, 2}))
	assert.False(t, stack.Stack{1, 2}.Equal(stack.Stack{2, 1}))
	assert.False(t, stack.Stack{1, 2}.Equal(stack.Stack{1, 2, 3}), "length mismatch is never equal")
}

func TestIsSortedAndSorted(t *testing.T) {
	assert.True(t, stack.Sorted(5).IsSorted())
	assert.True(t, stack.Stack{1}.IsSorted())
	assert.False(t, stack.Stack{2, 1}.IsSorted())
	assert.Equal(t, stack.Stack{1, 2, 3, 4}, stack.Sorted(4))
}

func TestKey_CanonicalAndInjective(t *testing.T) {
	assert.Equal(t, "4,1,5,2,3", stack.Stack{4, 1, 5, 2, 3}.Key())
	// The separator keeps multi-digit sizes unambiguous: [1,12] vs [11,2].
	assert.NotEqual(t, stack.Stack{1, 12}.Key(), stack.Stack{11, 2}.Key())
}

func TestString(t *testing.T) {
	assert.Equal(t, "[3 1 2]", stack.Stack{3, 1, 2}.String())
}

// ------------------------------------------------------------------------
// 4. FlipLength: recovering the move between two stacks.
// ------------------------------------------------------------------------

func TestFlipLength_RecoversEveryFlip(t *testing.T) {
	s := stack.Stack{4, 1, 5, 2, 3}
	for k := 2; k <= len(s); k++ {
		got, ok := stack.FlipLength(s, s.Flip(k))
		require.True(t, ok, "flip(%d) must be recoverable", k)
		assert.Equal(t, k, got)
	}
}

func TestFlipLength_RejectsNonFlips(t *testing.T) {
	_, ok := stack.FlipLength(stack.Stack{1, 2, 3}, stack.Stack{1, 2, 3})
	assert.False(t, ok, "identical stacks are zero flips, not one")

	_, ok = stack.FlipLength(stack.Stack{1, 2, 3}, stack.Stack{1, 3, 2})
	assert.False(t, ok, "swapping a non-prefix pair is not a flip")

	// [1,2,3,4] → [2,1,4,3] needs two flips, and the changed prefix of
	// length 4 is not a reversal.
	_, ok = stack.FlipLength(stack.Stack{1, 2, 3, 4}, stack.Stack{2, 1, 4, 3})
	assert.False(t, ok)

	_, ok = stack.FlipLength(stack.Stack{1, 2}, stack.Stack{1, 2, 3})
	assert.False(t, ok, "length mismatch can never be one flip")
}
