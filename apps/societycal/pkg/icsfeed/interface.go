package icsfeed

import "context"

// Client fetches a published ICS feed and flattens its events, recurrences
// included, into raw event records.
type Client interface {
	GetEvents(ctx context.Context) (any, error)
}
