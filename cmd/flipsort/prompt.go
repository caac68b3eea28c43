package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmarkou/flipsort/stack"
)

const promptText = `
Please select the starting stack.
The stack must contain all integers from 1 to the desired number,
separated by commas, e.g. 4,1,5,2,3.
The first number is the pancake on top of the stack.
> `

// parseStack turns a comma-separated list like "4,1,5,2,3" into a validated
// Stack. Whitespace around numbers is tolerated.
func parseStack(csv string) (stack.Stack, error) {
	fields := strings.Split(csv, ",")
	s := make(stack.Stack, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", f)
		}
		s = append(s, v)
	}
	if err := stack.Validate(s); err != nil {
		return nil, err
	}

	return s, nil
}

// promptStack reads lines from in until one parses and validates as a
// permutation, echoing the specific error and re-prompting on failure.
func promptStack(in io.Reader, out io.Writer) (stack.Stack, error) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, promptText)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("reading input: %w", err)
			}

			return nil, io.ErrUnexpectedEOF
		}
		s, err := parseStack(scanner.Text())
		if err != nil {
			fmt.Fprintln(out, styleError.Render(fmt.Sprintf("Invalid stack: %v. Try again.", err)))
			continue
		}

		return s, nil
	}
}
