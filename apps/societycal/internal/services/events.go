package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"societycal.app/apps/societycal/internal/models"
	"societycal.app/apps/societycal/pkg/icsfeed"
	"societycal.app/apps/societycal/pkg/noticeboard"
	"societycal.app/apps/societycal/pkg/societyapi"
)

// EventService aggregates all configured sources into the canonical event
// list and owns the single in-memory cache cell the system is allowed: the
// previous result plus its fetch timestamp. Events are replaced wholesale on
// refresh, never mutated.
type EventService struct {
	logger *slog.Logger
	api    societyapi.Client
	feed   icsfeed.Client
	board  noticeboard.Client
	loc    *time.Location
	ttl    time.Duration

	mu        sync.Mutex
	events    []models.CalendarEvent
	fetchedAt time.Time
}

// Calendar returns the cached events while they are fresh, refetching all
// sources otherwise.
func (service *EventService) Calendar(ctx context.Context) []models.CalendarEvent {
	service.mu.Lock()
	fresh := !service.fetchedAt.IsZero() &&
		time.Since(service.fetchedAt) < service.ttl
	events := service.events
	service.mu.Unlock()

	if fresh {
		return events
	}

	return service.Refresh(ctx)
}

// Refresh refetches every source and replaces the cache cell. A source that
// fails contributes nothing for this pass; the calendar never fails as a
// whole.
func (service *EventService) Refresh(ctx context.Context) []models.CalendarEvent {
	events := []models.CalendarEvent{}

	for _, source := range service.sources() {
		payload, err := source.fetch(ctx)
		if err != nil {
			service.logger.Warn(
				"event source fetch failed",
				slog.String("source", source.name),
				logging.ErrAttr(err),
			)
			continue
		}

		events = append(events, Ingest(service.logger, payload, service.loc)...)
	}

	service.mu.Lock()
	service.events = events
	service.fetchedAt = time.Now()
	service.mu.Unlock()

	return events
}

// DayGroups returns the time-of-day overflow groups for the events starting
// on the given calendar day.
func (service *EventService) DayGroups(
	ctx context.Context,
	day time.Time,
) []models.TimeGroup {
	sameDay := []models.CalendarEvent{}
	for _, event := range service.Calendar(ctx) {
		if event.OnDay(day, service.loc) {
			sameDay = append(sameDay, event)
		}
	}

	return models.GroupByTimeOfDay(sameDay, service.loc)
}

// Location is the display location events are bucketed in.
func (service *EventService) Location() *time.Location {
	return service.loc
}

type eventSource struct {
	name  string
	fetch func(ctx context.Context) (any, error)
}

func (service *EventService) sources() []eventSource {
	sources := []eventSource{}

	if service.api != nil {
		sources = append(sources, eventSource{"societyapi", service.api.GetEvents})
	}
	if service.feed != nil {
		sources = append(sources, eventSource{"icsfeed", service.feed.GetEvents})
	}
	if service.board != nil {
		sources = append(sources, eventSource{"noticeboard", service.board.GetEvents})
	}

	return sources
}
