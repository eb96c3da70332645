package jobs

import (
	"context"
	"log/slog"
	"time"

	"societycal.app/apps/societycal/internal/services"
)

// RefreshJob refetches every event source on a schedule so the calendar is
// warm before anyone opens it.
type RefreshJob struct {
	events *services.EventService
	every  time.Duration
}

func NewRefreshJob(events *services.EventService, every time.Duration) RefreshJob {
	return RefreshJob{
		events: events,
		every:  every,
	}
}

func (j RefreshJob) ID() string {
	return "refresh"
}

func (j RefreshJob) RunEvery() time.Duration {
	return j.every
}

func (j RefreshJob) Run(ctx context.Context, logger *slog.Logger) error {
	events := j.events.Refresh(ctx)
	logger.Debug("refreshed calendar", slog.Int("event_count", len(events)))
	return nil
}
