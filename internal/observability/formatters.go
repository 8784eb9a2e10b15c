// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/mhollis/mention-monitor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSamplingConfig outputs the budget a selection run will use.
func (p *Printer) PrintSamplingConfig(population int, cfg types.SamplingConfig) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Population:    %d\n", population))
	sb.WriteString(fmt.Sprintf("Sample size:   %d\n", cfg.SampleSize))
	sb.WriteString(fmt.Sprintf("Top engaged:   %d\n", cfg.TopEngaged))
	sb.WriteString(fmt.Sprintf("Most recent:   %d\n", cfg.MostRecent))
	sb.WriteString(fmt.Sprintf("Lowest rated:  %d\n", cfg.LowestRated))
	sb.WriteString(fmt.Sprintf("Most detailed: %d", cfg.MostDetailed))

	p.printBox("SAMPLING BUDGET", sb.String())
}

// PrintSample outputs a human-readable preview of a selected sample.
func (p *Printer) PrintSample(sample []types.Mention) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Selected: %d mentions\n", len(sample)))

	shown := len(sample)
	if shown > maxItemsToShow {
		shown = maxItemsToShow
	}
	for i := 0; i < shown; i++ {
		m := sample[i]
		label := m.Title
		if label == "" {
			label = m.ID
		}
		sb.WriteString(fmt.Sprintf("\n%d. %s", i+1, label))
		if m.Engagement != nil {
			sb.WriteString(fmt.Sprintf(" [eng %.0f]", *m.Engagement))
		}
		if m.Rating != nil {
			sb.WriteString(fmt.Sprintf(" [%.0f/5]", *m.Rating))
		}
	}
	if len(sample) > shown {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(sample)-shown))
	}

	p.printBox("REPRESENTATIVE SAMPLE", sb.String())
}

// PrintOpportunity outputs the chosen top opportunity, or a placeholder
// when no candidates were available.
func (p *Printer) PrintOpportunity(opp *types.Opportunity) {
	if opp == nil {
		p.printBox("TOP OPPORTUNITY", "No candidates to score")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", opp.Title))
	if opp.Platform != "" {
		sb.WriteString(fmt.Sprintf("Platform: %s\n", opp.Platform))
	}
	sb.WriteString(fmt.Sprintf("Score:    %.0f\n", opp.Score))
	sb.WriteString(fmt.Sprintf("Reason:   %s", opp.Reason))

	p.printBox("TOP OPPORTUNITY", sb.String())
}
