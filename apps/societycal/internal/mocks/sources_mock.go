package mocks

import (
	"context"

	"societycal.app/apps/societycal/pkg/icsfeed"
	"societycal.app/apps/societycal/pkg/noticeboard"
	"societycal.app/apps/societycal/pkg/societyapi"
)

// MockSource replays a fixed payload, standing in for any of the source
// clients.
type MockSource struct {
	Payload any
	Err     error
}

func (m MockSource) GetEvents(_ context.Context) (any, error) {
	return m.Payload, m.Err
}

func NewMockSocietyAPIClient(payload any) societyapi.Client {
	return MockSource{Payload: payload, Err: nil}
}

func NewMockFeedClient(payload any) icsfeed.Client {
	return MockSource{Payload: payload, Err: nil}
}

func NewMockNoticeboardClient(payload any) noticeboard.Client {
	return MockSource{Payload: payload, Err: nil}
}
