package services

import (
	"strings"
	"time"

	"societycal.app/apps/societycal/internal/dtos"
)

// startLayouts are tried in order against each candidate field value.
// Upstream sources emit anything from RFC3339 to bare dates.
var startLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseWhen parses a date-time string leniently, interpreting zone-less
// values in loc.
func parseWhen(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range startLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// startFallbacks is the field precedence after `start` and the
// date+start_time composition.
var startFallbacks = [][]string{
	{"startDate", "start_date"},
	{"event_date"},
	{"created_at"},
	{"updated_at"},
}

// resolveStart produces the canonical start instant for a record, taking the
// first field in precedence order that parses. A record that yields nothing
// parseable gets `now`, so malformed upstream data shows up as happening now
// instead of vanishing from the calendar.
func resolveStart(rec dtos.RawEventRecord, now time.Time, loc *time.Location) time.Time {
	if s, ok := rec.Field("start"); ok {
		if t, ok := parseWhen(s, loc); ok {
			return t
		}
	}

	if date, ok := rec.Field("date"); ok {
		composed := date
		if clock, ok := rec.Field("startTime", "start_time"); ok {
			composed = date + "T" + clock
		}
		if t, ok := parseWhen(composed, loc); ok {
			return t
		}
	}

	for _, keys := range startFallbacks {
		s, ok := rec.Field(keys...)
		if !ok {
			continue
		}
		if t, ok := parseWhen(s, loc); ok {
			return t
		}
	}

	return now
}
