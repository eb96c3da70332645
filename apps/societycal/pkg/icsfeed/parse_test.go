package icsfeed

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

func testClient() client {
	return client{
		logger: logging.NewNopLogger(),
		window: defaultWindow,
		loc:    time.UTC,
	}
}

func ics(lines ...string) []byte {
	all := append(
		[]string{"BEGIN:VCALENDAR", "VERSION:2.0", "PRODID:-//test//EN"},
		lines...,
	)
	all = append(all, "END:VCALENDAR", "")

	return []byte(strings.Join(all, "\r\n"))
}

func TestExtractSingleEvent(t *testing.T) {
	body := ics(
		"BEGIN:VEVENT",
		"UID:agm@example.org",
		"SUMMARY:Annual General Meeting",
		"DESCRIPTION:Budget and elections",
		"LOCATION:Room 101",
		"DTSTART:20250205T140000Z",
		"DTEND:20250205T153000Z",
		"END:VEVENT",
	)

	rangeStart := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	payload, err := testClient().extractEvents(body, rangeStart, rangeEnd)
	require.Nil(t, err)

	records, ok := payload.([]any)
	require.True(t, ok)
	require.Len(t, records, 1)

	record, ok := records[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "agm@example.org", record["id"])
	assert.Equal(t, "Annual General Meeting", record["title"])
	assert.Equal(t, "2025-02-05T14:00:00Z", record["start"])
	assert.Equal(t, "2025-02-05T15:30:00Z", record["end"])
	assert.Equal(t, "Budget and elections", record["description"])
	assert.Equal(t, "Room 101", record["location"])
}

func TestExtractOutsideWindow(t *testing.T) {
	body := ics(
		"BEGIN:VEVENT",
		"UID:old@example.org",
		"SUMMARY:Last Year's Ball",
		"DTSTART:20240205T190000Z",
		"DTEND:20240205T230000Z",
		"END:VEVENT",
	)

	rangeStart := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	payload, err := testClient().extractEvents(body, rangeStart, rangeEnd)
	require.Nil(t, err)

	assert.Empty(t, payload.([]any))
}

func TestExtractMissingEnd(t *testing.T) {
	body := ics(
		"BEGIN:VEVENT",
		"UID:open@example.org",
		"SUMMARY:Open Mic",
		"DTSTART:20250210T200000Z",
		"END:VEVENT",
	)

	rangeStart := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	payload, err := testClient().extractEvents(body, rangeStart, rangeEnd)
	require.Nil(t, err)

	records := payload.([]any)
	require.Len(t, records, 1)

	record := records[0].(map[string]any)
	assert.Equal(t, "2025-02-10T20:00:00Z", record["start"])
	assert.Equal(t, "2025-02-10T21:00:00Z", record["end"])
}

func TestExpandWeeklyRecurrence(t *testing.T) {
	body := ics(
		"BEGIN:VEVENT",
		"UID:training@example.org",
		"SUMMARY:Weekly Training",
		"DTSTART:20250203T180000Z",
		"DTEND:20250203T190000Z",
		"RRULE:FREQ=WEEKLY;COUNT=3",
		"END:VEVENT",
	)

	rangeStart := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	payload, err := testClient().extractEvents(body, rangeStart, rangeEnd)
	require.Nil(t, err)

	records := payload.([]any)
	require.Len(t, records, 3)

	starts := make([]string, 0, len(records))
	ids := make([]string, 0, len(records))
	for _, r := range records {
		record := r.(map[string]any)
		starts = append(starts, record["start"].(string))
		ids = append(ids, record["id"].(string))

		assert.Equal(t, "Weekly Training", record["title"])
	}

	assert.Equal(t, []string{
		"2025-02-03T18:00:00Z",
		"2025-02-10T18:00:00Z",
		"2025-02-17T18:00:00Z",
	}, starts)
	assert.Equal(t, []string{
		"training@example.org/2025-02-03T18:00:00Z",
		"training@example.org/2025-02-10T18:00:00Z",
		"training@example.org/2025-02-17T18:00:00Z",
	}, ids)
}

func TestExpandHonorsExdate(t *testing.T) {
	body := ics(
		"BEGIN:VEVENT",
		"UID:training@example.org",
		"SUMMARY:Weekly Training",
		"DTSTART:20250203T180000Z",
		"DTEND:20250203T190000Z",
		"RRULE:FREQ=WEEKLY;COUNT=3",
		"EXDATE:20250210T180000Z",
		"END:VEVENT",
	)

	rangeStart := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	payload, err := testClient().extractEvents(body, rangeStart, rangeEnd)
	require.Nil(t, err)

	records := payload.([]any)
	require.Len(t, records, 2)

	starts := make([]string, 0, len(records))
	for _, r := range records {
		starts = append(starts, r.(map[string]any)["start"].(string))
	}

	assert.Equal(t, []string{
		"2025-02-03T18:00:00Z",
		"2025-02-17T18:00:00Z",
	}, starts)
}

func TestExtractSkipsEventWithoutUID(t *testing.T) {
	body := ics(
		"BEGIN:VEVENT",
		"SUMMARY:Anonymous Event",
		"DTSTART:20250205T140000Z",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:kept@example.org",
		"SUMMARY:Kept Event",
		"DTSTART:20250206T140000Z",
		"DTEND:20250206T150000Z",
		"END:VEVENT",
	)

	rangeStart := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	payload, err := testClient().extractEvents(body, rangeStart, rangeEnd)
	require.Nil(t, err)

	records := payload.([]any)
	require.Len(t, records, 1)
	assert.Equal(t, "kept@example.org", records[0].(map[string]any)["id"])
}

func TestExtractEmptyBody(t *testing.T) {
	_, err := testClient().extractEvents(nil, time.Now(), time.Now())
	assert.NotNil(t, err)
}

func TestParseICSTime(t *testing.T) {
	got, err := parseICSTime("20250205T140000Z")
	require.Nil(t, err)
	assert.Equal(t, time.Date(2025, 2, 5, 14, 0, 0, 0, time.UTC), got)

	got, err = parseICSTime("20250205T140000")
	require.Nil(t, err)
	assert.Equal(t, 14, got.Hour())

	got, err = parseICSTime("20250205")
	require.Nil(t, err)
	assert.Equal(t, 5, got.Day())
}
