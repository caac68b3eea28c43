package search

import (
	"fmt"

	"github.com/dmarkou/flipsort/stack"
)

// run drives the shared best-first template behind both UCS and A*:
// extract the lowest-priority frontier node, close it, test the goal,
// otherwise expand every flip successor and merge it into the frontier.
// The heuristic h is the only point of variation between the strategies.
func run(initial stack.Stack, h Heuristic, o Options) (*Result, error) {
	// Fail fast on non-permutation input rather than search garbage; the
	// check may be redundant with an outer validator, and that is fine.
	if err := stack.Validate(initial); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStack, err)
	}

	n := len(initial)
	r := &runner{
		h:         h,
		opts:      o,
		size:      n,
		goal:      stack.Sorted(n).Key(),
		open:      newFrontier(),
		closed:    make(map[string]bool),
		generated: 1, // the root counts as a generated node
	}

	// Root node: cost 0, path of one stack. The initial stack is copied so
	// the run owns its state independently of the caller.
	root := &node{stack: initial.Clone(), heur: h(initial)}
	root.priority = root.cost + root.heur
	r.open.push(root.stack.Key(), root)

	return r.process()
}

// runner holds the mutable state of a single search run. Nothing is shared
// between runs; the whole struct is discarded once process returns.
type runner struct {
	h         Heuristic
	opts      Options
	size      int    // stack size N; flip lengths range over 2..N
	goal      string // key of the sorted stack
	open      *frontier
	closed    map[string]bool
	generated int
}

// process loops until the goal stack is extracted from the frontier.
// Termination is guaranteed: the state space is finite (N! stacks), every
// edge costs one, and closed stacks are never re-expanded.
func (r *runner) process() (*Result, error) {
	for {
		key, cur, ok := r.open.pop()
		if !ok {
			// Unreachable for a validated permutation; see ErrExhausted.
			return nil, ErrExhausted
		}

		// Close first, then goal-test: the goal is detected on extraction,
		// not on generation, which is what makes the result cost-optimal.
		r.closed[key] = true
		r.opts.OnExpand(cur.stack, cur.cost)
		if key == r.goal {
			return &Result{Path: cur.path(), Cost: cur.cost, Generated: r.generated}, nil
		}

		r.expand(cur)
	}
}

// expand generates the N-1 flip successors of cur and merges each into the
// frontier under the replacement policy. Every candidate counts toward the
// generated statistic, the discarded ones included, so the number stays
// comparable between strategies.
func (r *runner) expand(cur *node) {
	nextCost := cur.cost + 1
	var next stack.Stack
	var key string
	for k := 2; k <= r.size; k++ {
		next = cur.stack.Flip(k)
		r.generated++
		r.opts.OnGenerate(next, nextCost)

		// Closed stacks are never re-opened, even if this route is cheaper;
		// extraction order (UCS) and heuristic consistency (A*) guarantee
		// the first expansion already used a minimal route.
		key = next.Key()
		if r.closed[key] {
			continue
		}

		cand := &node{stack: next, cost: nextCost, heur: r.h(next), parent: cur}
		cand.priority = cand.cost + cand.heur

		// Keep a strictly better resident; otherwise insert or replace.
		if old, resident := r.open.lookup(key); resident && old.priority < cand.priority {
			continue
		}
		r.open.push(key, cand)
	}
}
