package services

import (
	"log/slog"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/threading"
	"societycal.app/apps/societycal/pkg/icsfeed"
	"societycal.app/apps/societycal/pkg/noticeboard"
	"societycal.app/apps/societycal/pkg/societyapi"
	"societycal.app/internal/config"
)

type Services struct {
	Events       *EventService
	RefreshState *RefreshStateService
}

func New(
	logger *slog.Logger,
	config config.Config,
	jobQueue *threading.JobQueue,
	apiClient societyapi.Client,
	feedClient icsfeed.Client,
	boardClient noticeboard.Client,
	loc *time.Location,
	cacheTTL time.Duration,
) *Services {
	events := &EventService{
		logger: logger,
		api:    apiClient,
		feed:   feedClient,
		board:  boardClient,
		loc:    loc,
		ttl:    cacheTTL,
	}

	return &Services{
		Events:       events,
		RefreshState: NewRefreshStateService(logger, []string{config.WebURL}, jobQueue),
	}
}
