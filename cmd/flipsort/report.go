package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Report styling. Warm diner colors: butter for headings, syrup for values.
var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	styleLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleValue = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("180"))
	styleStack = lipgloss.NewStyle().Foreground(lipgloss.Color("117"))
	styleError = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styleBox   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("220")).
			Padding(0, 1)
)

// printRun renders one strategy's report: the arrow-separated optimal path,
// its cost, the generated-node count, and the elapsed wall-clock time.
func printRun(out io.Writer, run *timedRun) {
	var b strings.Builder
	b.WriteString(styleTitle.Render(run.name+" results") + "\n")

	b.WriteString(styleLabel.Render("Optimal path: "))
	for i, s := range run.res.Path {
		if i > 0 {
			b.WriteString(" -> ")
		}
		b.WriteString(styleStack.Render(s.String()))
	}
	b.WriteByte('\n')

	if flips, err := run.res.Flips(); err == nil && len(flips) > 0 {
		b.WriteString(styleLabel.Render("Flip lengths: ") + styleValue.Render(fmt.Sprint(flips)) + "\n")
	}
	b.WriteString(styleLabel.Render("Path cost: ") + styleValue.Render(fmt.Sprintf("%d", run.res.Cost)) + "\n")
	b.WriteString(styleLabel.Render("Nodes generated: ") + styleValue.Render(fmt.Sprintf("%d", run.res.Generated)) + "\n")
	b.WriteString(styleLabel.Render("Time elapsed: ") + styleValue.Render(run.elapsed.String()))

	fmt.Fprintln(out, styleBox.Render(b.String()))
}

// printComparison renders the head-to-head summary of the two runs.
func printComparison(out io.Writer, ucs, astar *timedRun) {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Head-to-head") + "\n")

	switch {
	case astar.elapsed < ucs.elapsed:
		b.WriteString(fmt.Sprintf("A* was %s faster than UCS.\n", styleValue.Render((ucs.elapsed - astar.elapsed).String())))
	case astar.elapsed > ucs.elapsed:
		b.WriteString(fmt.Sprintf("UCS was %s faster than A*.\n", styleValue.Render((astar.elapsed - ucs.elapsed).String())))
	default:
		b.WriteString("Both strategies took the same time.\n")
	}

	delta := ucs.res.Generated - astar.res.Generated
	b.WriteString(fmt.Sprintf("A* generated %s fewer nodes than UCS (%d vs %d).",
		styleValue.Render(fmt.Sprintf("%d", delta)), astar.res.Generated, ucs.res.Generated))

	fmt.Fprintln(out, styleBox.Render(b.String()))
}
