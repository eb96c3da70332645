package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"societycal.app/apps/societycal/internal/models"
)

func event(id string, hour, min int) models.CalendarEvent {
	start := time.Date(2025, 2, 5, hour, min, 0, 0, time.UTC)

	//nolint:exhaustruct //other fields are optional
	return models.CalendarEvent{
		ID:    id,
		Start: start,
		End:   start.Add(time.Hour),
	}
}

func TestGroupByTimeOfDayOrderAndBoundaries(t *testing.T) {
	events := []models.CalendarEvent{
		event("evening", 17, 0),
		event("late-morning", 11, 59),
		event("afternoon", 16, 59),
		event("early", 0, 0),
		event("noon", 12, 0),
	}

	groups := models.GroupByTimeOfDay(events, time.UTC)

	assert.Len(t, groups, 3)
	assert.Equal(t, models.Morning, groups[0].Title)
	assert.Equal(t, models.Afternoon, groups[1].Title)
	assert.Equal(t, models.Evening, groups[2].Title)

	assert.Equal(t, "early", groups[0].Items[0].ID)
	assert.Equal(t, "late-morning", groups[0].Items[1].ID)
	assert.Equal(t, "noon", groups[1].Items[0].ID)
	assert.Equal(t, "afternoon", groups[1].Items[1].ID)
	assert.Equal(t, "evening", groups[2].Items[0].ID)
}

func TestGroupByTimeOfDayComplete(t *testing.T) {
	events := []models.CalendarEvent{
		event("a", 9, 30),
		event("b", 20, 15),
		event("c", 13, 0),
		event("d", 9, 0),
	}

	groups := models.GroupByTimeOfDay(events, time.UTC)

	seen := map[string]int{}
	total := 0
	for _, group := range groups {
		for i := 1; i < len(group.Items); i++ {
			assert.False(t, group.Items[i].Start.Before(group.Items[i-1].Start))
		}
		for _, item := range group.Items {
			seen[item.ID]++
			total++
		}
	}

	assert.Equal(t, len(events), total)
	for _, e := range events {
		assert.Equal(t, 1, seen[e.ID])
	}
}

func TestGroupByTimeOfDayEmptyBucketsOmitted(t *testing.T) {
	groups := models.GroupByTimeOfDay([]models.CalendarEvent{event("a", 18, 0)}, time.UTC)

	assert.Len(t, groups, 1)
	assert.Equal(t, models.Evening, groups[0].Title)
}

func TestGroupByTimeOfDayEmptyInput(t *testing.T) {
	assert.Empty(t, models.GroupByTimeOfDay(nil, time.UTC))
	assert.Empty(t, models.GroupByTimeOfDay([]models.CalendarEvent{}, time.UTC))
}

func TestGroupByTimeOfDayUsesLocation(t *testing.T) {
	// 11:30 UTC is 12:30 in UTC+1, so the bucket flips with the location.
	utcPlusOne := time.FixedZone("UTC+1", 3600)
	events := []models.CalendarEvent{event("a", 11, 30)}

	groups := models.GroupByTimeOfDay(events, time.UTC)
	assert.Equal(t, models.Morning, groups[0].Title)

	groups = models.GroupByTimeOfDay(events, utcPlusOne)
	assert.Equal(t, models.Afternoon, groups[0].Title)
}

func TestOnDay(t *testing.T) {
	e := event("a", 10, 0)

	assert.True(t, e.OnDay(time.Date(2025, 2, 5, 23, 0, 0, 0, time.UTC), time.UTC))
	assert.False(t, e.OnDay(time.Date(2025, 2, 6, 0, 0, 0, 0, time.UTC), time.UTC))
}
