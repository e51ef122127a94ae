package normalize

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/jobsearch/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	job := types.JobResult{SourceURL: "https://example.com/jobs/1", ATSSource: "Greenhouse"}
	ApplyDefaults(&job, "Example")

	assert.Equal(t, types.DefaultTitle, job.Title)
	assert.Equal(t, types.DefaultCount, job.Count)
	assert.Equal(t, types.DefaultLocation, job.Location)
	assert.Equal(t, types.DefaultJobType, job.JobType)
	assert.Equal(t, "Example", job.Company)
	assert.NoError(t, job.Validate())
}

func TestApplyDefaults_KeepsExistingValues(t *testing.T) {
	job := types.JobResult{
		Title:    "Staff Engineer",
		Count:    "2",
		Location: "Remote",
		Company:  "Acme",
		JobType:  "Contract",
	}
	ApplyDefaults(&job, "Other")

	assert.Equal(t, "Staff Engineer", job.Title)
	assert.Equal(t, "2", job.Count)
	assert.Equal(t, "Remote", job.Location)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, "Contract", job.JobType)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 200))

	long := make([]byte, 300)
	for i := range long {
		long[i] = 'a'
	}
	assert.Len(t, Truncate(string(long), 200), 200)
	assert.Len(t, TruncateEllipsis(string(long), 200), 203)
	assert.Equal(t, "short", TruncateEllipsis("short", 200))
}

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	// "é" is two bytes; a budget landing mid-rune must back up rather
	// than emit a broken byte.
	s := "caf" + strings.Repeat("é", 10)

	for budget := 1; budget < len(s); budget++ {
		cut := Truncate(s, budget)
		assert.True(t, utf8.ValidString(cut), "budget %d produced invalid UTF-8", budget)
		assert.LessOrEqual(t, len(cut), budget)
		assert.True(t, strings.HasPrefix(s, cut))
	}

	// "日" is three bytes, so a budget of 6 lands inside the second rune.
	assert.Equal(t, "ca日", Truncate("ca日本", 6))
	assert.Equal(t, "ca日...", TruncateEllipsis("ca日本", 6))
}

func TestExtractSalary(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"dollar range", "We offer $120,000 - $160,000 plus equity", "$120,000 - $160,000"},
		{"single figure", "Base pay of $95,000 per year", "$95,000 per year"},
		{"k notation", "Compensation: 120k - 150k annually", "120k - 150k annually"},
		{"no salary", "Great benefits and remote-first culture", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSalary(tt.content))
		})
	}
}

func TestJoinLocation(t *testing.T) {
	assert.Equal(t, "Austin, TX", JoinLocation("Austin", "TX", "US"))
	assert.Equal(t, "US", JoinLocation("", "", "US"))
	assert.Equal(t, types.DefaultLocation, JoinLocation("", "", ""))
	assert.Equal(t, types.DefaultLocation, JoinLocation("Austin", "", ""))
}

func TestCleanCompany(t *testing.T) {
	assert.Equal(t, "Acme", CleanCompany("  Acme  ", "fallback"))
	assert.Equal(t, "fallback", CleanCompany("   ", "fallback"))
}
