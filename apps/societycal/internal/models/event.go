package models

import (
	"sort"
	"time"
)

// CalendarEvent is the canonical, fully-resolved event used by the rendering
// layer. Instances are built fresh on every ingestion pass and never mutated.
type CalendarEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	HostedBy    string    `json:"hostedBy"`
}

const DefaultTitle = "Untitled Event"

// TimeGroup is one time-of-day partition of a same-day event set, used for
// the "+N more" disclosure view.
type TimeGroup struct {
	Title string          `json:"title"`
	Items []CalendarEvent `json:"items"`
}

const (
	Morning   = "MORNING"
	Afternoon = "AFTERNOON"
	Evening   = "EVENING"
)

const (
	afternoonHour = 12
	eveningHour   = 17
)

// GroupByTimeOfDay partitions events assumed to share a calendar day into
// MORNING/AFTERNOON/EVENING groups, in that fixed order. The whole set is
// sorted ascending by start first, so each group is chronological. Empty
// groups are omitted. Same-day membership is the caller's contract and is
// not verified here.
func GroupByTimeOfDay(events []CalendarEvent, loc *time.Location) []TimeGroup {
	if len(events) == 0 {
		return []TimeGroup{}
	}

	if loc == nil {
		loc = time.Local
	}

	sorted := make([]CalendarEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	titles := []string{Morning, Afternoon, Evening}
	buckets := make(map[string][]CalendarEvent, len(titles))

	for _, event := range sorted {
		hour := event.Start.In(loc).Hour()

		var title string
		switch {
		case hour < afternoonHour:
			title = Morning
		case hour < eveningHour:
			title = Afternoon
		default:
			title = Evening
		}

		buckets[title] = append(buckets[title], event)
	}

	groups := []TimeGroup{}
	for _, title := range titles {
		if items := buckets[title]; len(items) > 0 {
			groups = append(groups, TimeGroup{Title: title, Items: items})
		}
	}

	return groups
}

// OnDay reports whether the event starts on the given calendar day in loc.
func (event CalendarEvent) OnDay(day time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}

	start := event.Start.In(loc)
	day = day.In(loc)

	return start.Year() == day.Year() && start.YearDay() == day.YearDay()
}
