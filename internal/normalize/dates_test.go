package normalize

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestHumanizeDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"today", now.Add(-2 * time.Hour).Format(time.RFC3339), "Today"},
		{"yesterday", now.Add(-30 * time.Hour).Format(time.RFC3339), "Yesterday"},
		{"two days ago", now.AddDate(0, 0, -2).Format(time.RFC3339), "2 days ago"},
		{"two weeks ago", now.AddDate(0, 0, -15).Format(time.RFC3339), "2 weeks ago"},
		{"three months ago", now.AddDate(0, -3, 0).Format(time.RFC3339), "3 months ago"},
		{"three years ago is stale", now.AddDate(-3, 0, 0).Format(time.RFC3339), ""},
		{"future maps to recently posted", now.Add(time.Hour).Format(time.RFC3339), RecentlyPosted},
		{"unparseable", "sometime last spring", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanizeDate(tt.raw, now))
		})
	}
}

func TestHumanizeDate_AlternateLayouts(t *testing.T) {
	twoDaysAgo := now.AddDate(0, 0, -2)

	layouts := []string{
		twoDaysAgo.Format(time.RFC1123Z),
		twoDaysAgo.Format("2006-01-02"),
		fmt.Sprintf("%d", twoDaysAgo.Unix()),
		fmt.Sprintf("%d", twoDaysAgo.UnixMilli()),
	}

	for _, raw := range layouts {
		assert.Equal(t, "2 days ago", HumanizeDate(raw, now), "layout %q", raw)
	}
}
