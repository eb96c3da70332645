package noticeboard

import "context"

// Client scrapes a society noticeboard page into raw event records.
type Client interface {
	GetEvents(ctx context.Context) (any, error)
}
