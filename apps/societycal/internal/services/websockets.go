package services

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	wstools "github.com/xdoubleu/essentia/v2/pkg/communication/wstools"
	"github.com/xdoubleu/essentia/v2/pkg/threading"
	"societycal.app/apps/societycal/internal/dtos"
)

// RefreshStateService owns the /state websocket. Subscribers get the refresh
// job's current state on connect and a push whenever the job starts or
// finishes, so the calendar page can show a live "updating" indicator.
type RefreshStateService struct {
	allowedOrigins []string
	handler        *wstools.WebSocketHandler[dtos.SubscribeMessageDto]
	jobQueue       *threading.JobQueue
}

func NewRefreshStateService(
	logger *slog.Logger,
	allowedOrigins []string,
	jobQueue *threading.JobQueue,
) *RefreshStateService {
	handler := wstools.CreateWebSocketHandler[dtos.SubscribeMessageDto](
		logger,
		1,
		100, //nolint:mnd //no magic number
	)

	return &RefreshStateService{
		allowedOrigins: allowedOrigins,
		handler:        &handler,
		jobQueue:       jobQueue,
	}
}

func (service *RefreshStateService) Handler() http.HandlerFunc {
	return service.handler.Handler()
}

// Watch opens a topic for the given job and returns the queue callback that
// pushes the job's state changes to subscribers.
func (service *RefreshStateService) Watch(
	jobID string,
) func(string, bool, *time.Time) {
	topic, err := service.handler.AddTopic(
		jobID,
		service.allowedOrigins,
		service.currentState,
	)
	if err != nil {
		panic(err)
	}

	return func(_ string, isRunning bool, lastRunTime *time.Time) {
		topic.EnqueueEvent(dtos.RefreshStateDto{
			IsRefreshing: isRunning,
			LastRefresh:  lastRunTime,
		})
	}
}

func (service *RefreshStateService) currentState(
	_ context.Context,
	topic *wstools.Topic,
) (any, error) {
	isRefreshing, lastRefresh := service.jobQueue.FetchState(topic.Name)

	return dtos.RefreshStateDto{
		IsRefreshing: isRefreshing,
		LastRefresh:  lastRefresh,
	}, nil
}
