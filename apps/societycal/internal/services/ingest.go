package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"societycal.app/apps/societycal/internal/dtos"
	"societycal.app/apps/societycal/internal/models"
)

// Ingest maps a decoded upstream payload into canonical events. A payload
// that is not a list yields an empty result, and a record that cannot be
// mapped is logged and dropped, so one bad record never aborts the batch.
// Input order is preserved; sorting is the caller's concern.
func Ingest(logger *slog.Logger, payload any, loc *time.Location) []models.CalendarEvent {
	if loc == nil {
		loc = time.Local
	}

	items, ok := payload.([]any)
	if !ok {
		return []models.CalendarEvent{}
	}

	events := make([]models.CalendarEvent, 0, len(items))
	for i, item := range items {
		rec, err := asRecord(item)
		if err != nil {
			logger.Warn(
				"dropping unmappable event record",
				slog.Int("index", i),
				logging.ErrAttr(err),
			)
			continue
		}

		events = append(events, mapRecord(rec, loc))
	}

	return events
}

func asRecord(item any) (dtos.RawEventRecord, error) {
	switch rec := item.(type) {
	case dtos.RawEventRecord:
		return rec, nil
	case map[string]any:
		return dtos.RawEventRecord(rec), nil
	default:
		return nil, fmt.Errorf("event record is %T, not an object", item)
	}
}

func mapRecord(rec dtos.RawEventRecord, loc *time.Location) models.CalendarEvent {
	id, ok := rec.Field("id")
	if !ok {
		id = uuid.New().String()
	}

	start := resolveStart(rec, time.Now().In(loc), loc)

	return models.CalendarEvent{
		ID:          id,
		Title:       rec.FieldOr(models.DefaultTitle, "title", "name"),
		Start:       start,
		End:         resolveEnd(rec, start, loc),
		Description: rec.FieldOr("", "description"),
		Location:    rec.FieldOr("", "location", "venue"),
		HostedBy:    rec.FieldOr("", "hosted_by", "hostedBy", "society_id", "organizer"),
	}
}
