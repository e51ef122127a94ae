package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobsearch/internal/types"
)

func TestPrintSearchResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.SearchResult{
		Success:    true,
		TotalFound: 2,
		Sources:    []string{"jsearch", "greenhouse"},
		Jobs: []types.JobResult{
			{
				Title:      "Senior Engineer",
				Location:   "Austin, TX",
				Salary:     "$150K",
				ATSSource:  "Greenhouse",
				DatePosted: "2 days ago",
			},
			{
				Title:     "Product Designer",
				Location:  "Remote",
				ATSSource: "JSearch",
			},
		},
	}

	p.PrintSearchResult(result)
	output := buf.String()

	assert.Contains(t, output, "SEARCH RESULTS")
	assert.Contains(t, output, "Jobs found: 2")
	assert.Contains(t, output, "jsearch, greenhouse")
	assert.Contains(t, output, "Senior Engineer")
	assert.Contains(t, output, "$150K")
	assert.Contains(t, output, "2 days ago")
}

func TestPrintSearchResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSearchResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintSearchResult_TruncatesLongList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.SearchResult{TotalFound: 8}
	for i := 0; i < 8; i++ {
		result.Jobs = append(result.Jobs, types.JobResult{
			Title: "Engineer", Location: "Remote", ATSSource: "Test",
		})
	}

	p.PrintSearchResult(result)
	assert.Contains(t, buf.String(), "and 3 more jobs")
}

func TestPrintProviderErrors(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProviderErrors([]string{"jsearch: rate limited", "diffbot: timeout"})
	output := buf.String()

	assert.Contains(t, output, "PROVIDER FAILURES")
	assert.Contains(t, output, "jsearch: rate limited")
	assert.Contains(t, output, "diffbot: timeout")
}

func TestPrintProviderErrors_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProviderErrors(nil)

	assert.Contains(t, buf.String(), "ALL PROVIDERS HEALTHY")
}

func TestPrintSuggestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestions([]types.CompanySuggestion{
		{Name: "Acme", Domain: "acme.com", Industry: "Widgets", Location: "Austin, TX"},
	})
	output := buf.String()

	assert.Contains(t, output, "COMPANY SUGGESTIONS")
	assert.Contains(t, output, "Acme (acme.com)")
	assert.Contains(t, output, "Widgets")
}

func TestPrintCareerPages(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCareerPages([]types.JobResult{
		{Title: "Various Open Positions", SourceURL: "https://jobs.netflix.com"},
	})
	output := buf.String()

	assert.Contains(t, output, "CAREER PAGES")
	assert.Contains(t, output, "Various Open Positions")
	assert.Contains(t, output, "https://jobs.netflix.com")
}

func TestBoxLinesHaveConsistentWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProviderErrors([]string{"short"})

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		runes := []rune(line)
		assert.Equal(t, boxWidth, len(runes), "line %q", line)
	}
}
