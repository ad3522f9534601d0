package export

import (
	"strings"
	"time"
)

// Primary timestamp layout used by health export logs.
const exportTimeLayout = "2006-01-02 15:04:05 -0700"

// Secondary ISO-8601 layouts accepted as a fallback. Zone-less values are
// taken as UTC.
var isoTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an export timestamp to UTC, returning nil when
// neither the primary nor the fallback layout matches.
func ParseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if t, err := time.Parse(exportTimeLayout, s); err == nil {
		u := t.UTC()
		return &u
	}

	iso := strings.Replace(s, " ", "T", 1)
	for _, layout := range isoTimeLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			u := t.UTC()
			return &u
		}
	}
	return nil
}
