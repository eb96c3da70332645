package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xhit/go-str2duration/v2"
	"societycal.app/apps/societycal/internal/dtos"
)

const defaultEventDuration = time.Hour

var (
	hoursPattern   = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:hour|hr|h)s?`)
	minutesPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:minute|min|m)s?`)
)

// resolveEnd produces the canonical end instant. An explicit end field that
// parses wins over any duration computation; otherwise the duration
// expression is interpreted, and anything unusable means start + 1 hour.
func resolveEnd(rec dtos.RawEventRecord, start time.Time, loc *time.Location) time.Time {
	if s, ok := rec.Field("end", "end_date", "endDate"); ok {
		if t, ok := parseWhen(s, loc); ok {
			return t
		}
	}

	if expr, ok := rec.Field("duration"); ok {
		if d, ok := parseDurationExpr(expr); ok {
			return start.Add(d)
		}
	}

	return start.Add(defaultEventDuration)
}

// parseDurationExpr interprets a free-form duration expression. Accepted
// notations, in order: clock form (HH:MM or HH:MM:SS), a bare number of
// minutes, Go-style durations ("1h30m"), and hour/minute prose
// ("1.5 hours", "90 min", "2 hours 15 minutes").
func parseDurationExpr(expr string) (time.Duration, bool) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, false
	}

	if strings.Contains(expr, ":") {
		return parseClockDuration(expr)
	}

	if minutes, err := strconv.ParseFloat(expr, 64); err == nil && minutes >= 0 {
		return time.Duration(minutes * float64(time.Minute)).Round(time.Second), true
	}

	if d, err := str2duration.ParseDuration(expr); err == nil {
		return d, true
	}

	return parseProseDuration(expr)
}

func parseClockDuration(expr string) (time.Duration, bool) {
	parts := strings.Split(expr, ":")
	//nolint:mnd //HH:MM or HH:MM:SS
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}

	units := []time.Duration{time.Hour, time.Minute, time.Second}

	var total time.Duration
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return 0, false
		}
		total += time.Duration(n) * units[i]
	}

	return total, true
}

func parseProseDuration(expr string) (time.Duration, bool) {
	var total time.Duration
	matched := false

	if m := hoursPattern.FindStringSubmatch(expr); m != nil {
		if hours, err := strconv.ParseFloat(m[1], 64); err == nil {
			// Fractional hours carry into minutes: 1.5 hours is 1h30m.
			total += time.Duration(hours * float64(time.Hour))
			matched = true
		}
	}

	if m := minutesPattern.FindStringSubmatch(expr); m != nil {
		if minutes, err := strconv.ParseFloat(m[1], 64); err == nil {
			total += time.Duration(minutes * float64(time.Minute))
			matched = true
		}
	}

	if !matched {
		return 0, false
	}

	return total.Round(time.Second), true
}
