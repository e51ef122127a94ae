package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validJob() JobResult {
	return JobResult{
		Title:     "Backend Engineer",
		Count:     "1",
		Location:  "San Francisco, CA",
		SourceURL: "https://boards.greenhouse.io/example/jobs/1",
		Company:   "Example",
		ATSSource: "Greenhouse",
	}
}

func TestJobResult_Validate(t *testing.T) {
	job := validJob()
	require.NoError(t, job.Validate())
}

func TestJobResult_Validate_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*JobResult)
	}{
		{"title", func(j *JobResult) { j.Title = "" }},
		{"count", func(j *JobResult) { j.Count = "" }},
		{"location", func(j *JobResult) { j.Location = "" }},
		{"sourceUrl", func(j *JobResult) { j.SourceURL = "" }},
		{"company", func(j *JobResult) { j.Company = "" }},
		{"atsSource", func(j *JobResult) { j.ATSSource = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := validJob()
			tt.mutate(&job)
			err := job.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.name)
		})
	}
}

func TestJobResult_JSONOmitsAbsentOptionals(t *testing.T) {
	job := validJob()
	data, err := json.Marshal(job)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "salary")
	assert.NotContains(t, string(data), "datePosted")
	assert.NotContains(t, string(data), "skills")
	assert.Contains(t, string(data), `"sourceUrl"`)
	assert.Contains(t, string(data), `"atsSource"`)
}

func TestSearchResult_ErrorsOmittedWhenEmpty(t *testing.T) {
	result := SearchResult{Success: true, Jobs: []JobResult{validJob()}, Sources: []string{"Greenhouse"}, TotalFound: 1}
	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "errors")
}
