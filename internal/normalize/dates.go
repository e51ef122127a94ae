package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RecentlyPosted is reported for dates in the future, which usually means
// provider clock skew rather than a bad record.
const RecentlyPosted = "Recently posted"

// maxPostingAge is the staleness threshold beyond which a date is dropped.
const maxPostingAge = 2 * 365 * 24 * time.Hour

// dateLayouts are tried in order when parsing provider date strings.
var dateLayouts = []string{
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// HumanizeDate converts a raw provider date into a relative form such as
// "Today", "Yesterday", "3 days ago", "2 weeks ago", or "4 months ago".
// It returns "" when the date is unparseable or older than the staleness
// threshold, and "Recently posted" when the date is in the future.
func HumanizeDate(raw string, now time.Time) string {
	posted, ok := parseDate(strings.TrimSpace(raw))
	if !ok {
		return ""
	}

	elapsed := now.Sub(posted)
	if elapsed < 0 {
		return RecentlyPosted
	}
	if elapsed > maxPostingAge {
		return ""
	}

	days := int(elapsed.Hours() / 24)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	case days < 365:
		return fmt.Sprintf("%d months ago", days/30)
	default:
		// Parseable but over a year old: not worth surfacing.
		return ""
	}
}

func parseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}

	// Unix timestamps (seconds or milliseconds) show up in a few APIs.
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n > 1e12 {
			return time.UnixMilli(n), true
		}
		if n > 1e9 {
			return time.Unix(n, 0), true
		}
	}

	return time.Time{}, false
}
