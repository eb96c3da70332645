package societyapi

import (
	"context"
	"fmt"
	"net/http"
	neturl "net/url"
	"time"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
)

const EventsEndpoint = "events"

type client struct {
	baseURL string
}

func New(baseURL string) Client {
	return client{
		baseURL: baseURL,
	}
}

func (client client) GetEvents(ctx context.Context) (any, error) {
	u, err := neturl.Parse(fmt.Sprintf("%s/%s", client.baseURL, EventsEndpoint))
	if err != nil {
		return nil, fmt.Errorf("invalid events url: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme: %s", u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "societycal.app/1.0")
	req.Header.Set("Accept", "application/json")

	httpClient := &http.Client{
		//nolint:mnd //upstream platforms can be slow, but not this slow
		Timeout: 10 * time.Second,
	}

	res, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("non-200 from events endpoint: %d", res.StatusCode)
	}

	var payload any
	err = httptools.ReadJSON(res.Body, &payload)
	if err != nil && err.Error() != "body must not be empty" {
		return nil, err
	}

	return payload, nil
}
