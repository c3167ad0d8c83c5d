// Package observability provides formatted output for the operator CLI commands.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/icebutcher-assistant/internal/matching"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
)

// Printer handles formatted output for the CLI
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRanking outputs the best-scoring catalog names for a query.
// showAll lists every ranked name instead of the first few.
func (p *Printer) PrintRanking(query string, ranked []matching.ScoredName, showAll bool) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Query: %q\n", query))
	sb.WriteString(fmt.Sprintf("Names ranked: %d\n", len(ranked)))

	count := len(ranked)
	if !showAll {
		count = min(count, maxItemsToShow)
	}
	if count > 0 {
		sb.WriteString("\n")
	}
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("#%-3d %6.2f  %s\n", i+1, ranked[i].Score, ranked[i].Name))
	}

	if len(ranked) > count {
		sb.WriteString(fmt.Sprintf("... and %d more names\n", len(ranked)-count))
	}

	p.printBox("CATALOG MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPromptSummary outputs the size of a composed prompt and how many
// catalog entries went into it.
func (p *Printer) PrintPromptSummary(prompt string, matches int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Catalog entries: %d\n", matches))
	sb.WriteString(fmt.Sprintf("Prompt lines:    %d\n", strings.Count(prompt, "\n")+1))
	sb.WriteString(fmt.Sprintf("Prompt bytes:    %d", len(prompt)))

	p.printBox("COMPOSED PROMPT", sb.String())
}
