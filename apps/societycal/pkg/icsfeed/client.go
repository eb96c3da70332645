package icsfeed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	neturl "net/url"
	"time"
)

const (
	fetchTimeout  = 15 * time.Second
	defaultWindow = 90 * 24 * time.Hour
)

type client struct {
	logger *slog.Logger
	url    string
	window time.Duration
	loc    *time.Location
}

// New builds a feed client for a single ICS URL. Recurring events are
// expanded over [now, now+window); a zero window means 90 days.
func New(logger *slog.Logger, url string, window time.Duration, loc *time.Location) Client {
	if window <= 0 {
		window = defaultWindow
	}
	if loc == nil {
		loc = time.Local
	}

	return client{
		logger: logger,
		url:    url,
		window: window,
		loc:    loc,
	}
}

func (client client) GetEvents(ctx context.Context) (any, error) {
	body, err := client.fetch(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().In(client.loc)

	return client.extractEvents(body, now, now.Add(client.window))
}

func (client client) fetch(ctx context.Context) ([]byte, error) {
	u, err := neturl.Parse(client.url)
	if err != nil {
		return nil, fmt.Errorf("invalid feed url: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme: %s", u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "societycal.app/1.0")
	req.Header.Set("Accept", "text/calendar")

	httpClient := &http.Client{Timeout: fetchTimeout}

	res, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("non-200 from feed: %d", res.StatusCode)
	}

	return io.ReadAll(res.Body)
}
