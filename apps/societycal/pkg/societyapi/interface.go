package societyapi

import "context"

// Client fetches the raw events listing from the society platform. The
// returned payload is the decoded JSON body as-is; shape validation is the
// ingestion pipeline's job.
type Client interface {
	GetEvents(ctx context.Context) (any, error)
}
