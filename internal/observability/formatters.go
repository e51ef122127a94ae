// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobsearch/internal/types"
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

// PrintSearchResult outputs a human-readable summary of a completed search.
func (p *Printer) PrintSearchResult(result *types.SearchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Jobs found: %d\n", result.TotalFound))
	if len(result.Sources) > 0 {
		sources := strings.Join(result.Sources, ", ")
		if len(sources) > 45 {
			sources = sources[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Sources:    %s\n", sources))
	}
	sb.WriteString("\n")

	count := min(len(result.Jobs), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := result.Jobs[i]
		title := job.Title
		if len(title) > 45 {
			title = title[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    %s", job.Location))
		if job.Salary != "" {
			sb.WriteString(fmt.Sprintf(" · %s", job.Salary))
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("    via %s", job.ATSSource))
		if job.DatePosted != "" {
			sb.WriteString(fmt.Sprintf(", %s", job.DatePosted))
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.Jobs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(result.Jobs)-maxItemsToShow))
	}

	p.printBox("SEARCH RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProviderErrors outputs the failures collected during the fan-out.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintProviderErrors(errs []string) {
	if len(errs) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL PROVIDERS HEALTHY")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d provider failures:\n\n", len(errs)))

	for i, e := range errs {
		if len(e) > 50 {
			e = e[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", e))
		if i < len(errs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("PROVIDER FAILURES", sb.String())
}

// PrintSuggestions outputs company directory suggestions.
func (p *Printer) PrintSuggestions(suggestions []types.CompanySuggestion) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(suggestions), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := suggestions[i]
		sb.WriteString(fmt.Sprintf("• %s (%s)\n", s.Name, s.Domain))
		sb.WriteString(fmt.Sprintf("  %s · %s\n", s.Industry, s.Location))
	}
	if len(suggestions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(suggestions)-maxItemsToShow))
	}

	p.printBox("COMPANY SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCareerPages outputs the career page pointers for a company.
func (p *Printer) PrintCareerPages(jobs []types.JobResult) {
	if len(jobs) == 0 {
		return
	}

	var sb strings.Builder
	for i, job := range jobs {
		url := job.SourceURL
		if len(url) > 50 {
			url = url[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", job.Title))
		sb.WriteString(fmt.Sprintf("  %s\n", url))
		if i < len(jobs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CAREER PAGES", strings.TrimSuffix(sb.String(), "\n"))
}
