package icsfeed

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

// maxOccurrencesPerEvent caps recurrence expansion so a runaway RRULE cannot
// flood the calendar.
const maxOccurrencesPerEvent = 1000

// extractEvents parses an ICS payload and emits one raw record per event
// occurrence inside [rangeStart, rangeEnd]. A VEVENT that cannot be read is
// logged and skipped; the rest of the feed still goes through.
func (client client) extractEvents(
	body []byte,
	rangeStart time.Time,
	rangeEnd time.Time,
) (any, error) {
	if len(body) == 0 {
		return nil, errors.New("empty ICS body")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	records := []any{}

	for _, ve := range cal.Events() {
		recs, err := client.expandVEvent(ve, rangeStart, rangeEnd)
		if err != nil {
			client.logger.Warn("skipping unreadable VEVENT", logging.ErrAttr(err))
			continue
		}

		records = append(records, recs...)
	}

	return records, nil
}

func (client client) expandVEvent(
	ve *ical.VEvent,
	rangeStart time.Time,
	rangeEnd time.Time,
) ([]any, error) {
	uidProp := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uidProp == nil || uidProp.Value == "" {
		return nil, errors.New("missing UID")
	}
	uid := uidProp.Value

	start, err := ve.GetStartAt()
	if err != nil {
		return nil, err
	}

	end, err := ve.GetEndAt()
	if err != nil || end.Before(start) {
		end = start.Add(time.Hour)
	}
	duration := end.Sub(start)

	var summary, description, location string
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		summary = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		description = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
		location = p.Value
	}

	record := func(id string, occStart time.Time) map[string]any {
		return map[string]any{
			"id":          id,
			"title":       summary,
			"start":       occStart.In(client.loc).Format(time.RFC3339),
			"end":         occStart.Add(duration).In(client.loc).Format(time.RFC3339),
			"description": description,
			"location":    location,
		}
	}

	rruleProp := ve.GetProperty(ical.ComponentPropertyRrule)
	if rruleProp == nil {
		if start.After(rangeEnd) || end.Before(rangeStart) {
			return []any{}, nil
		}
		return []any{record(uid, start)}, nil
	}

	rule, err := rrule.StrToRRule(rruleProp.Value)
	if err != nil {
		return nil, err
	}
	rule.DTStart(start)

	var set rrule.Set
	set.RRule(rule)

	for _, ex := range exDates(ve) {
		set.ExDate(ex.In(start.Location()))
	}

	occTimes := set.Between(
		rangeStart.In(start.Location()),
		rangeEnd.In(start.Location()),
		true,
	)
	if len(occTimes) > maxOccurrencesPerEvent {
		client.logger.Warn(
			"recurrence expansion truncated",
			slog.String("uid", uid),
			slog.Int("cap", maxOccurrencesPerEvent),
		)
		occTimes = occTimes[:maxOccurrencesPerEvent]
	}

	records := make([]any, 0, len(occTimes))
	for _, occStart := range occTimes {
		id := uid + "/" + occStart.Format(time.RFC3339)
		records = append(records, record(id, occStart))
	}

	return records, nil
}

func exDates(ve *ical.VEvent) []time.Time {
	var out []time.Time

	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if t, err := parseICSTime(part); err == nil {
				out = append(out, t)
			}
		}
	}

	return out
}

func parseICSTime(v string) (time.Time, error) {
	if strings.HasSuffix(v, "Z") {
		return time.Parse("20060102T150405Z", v)
	}
	if strings.Contains(v, "T") {
		return time.ParseInLocation("20060102T150405", v, time.Local)
	}
	return time.ParseInLocation("20060102", v, time.Local)
}
