package noticeboard

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gocolly/colly/v2"
)

type client struct {
	logger  *slog.Logger
	pageURL string
}

func New(logger *slog.Logger, pageURL string) Client {
	return client{
		logger:  logger,
		pageURL: pageURL,
	}
}

// GetEvents scrapes every .event-card node on the noticeboard page. Cards
// are hand-authored by society admins, so fields are frequently missing or
// free-form; the records go out as-is and the ingestion pipeline does the
// salvaging.
func (client client) GetEvents(_ context.Context) (any, error) {
	c := colly.NewCollector()

	records := []any{}

	c.OnHTML(".event-card", func(h *colly.HTMLElement) {
		record := map[string]any{}

		set := func(key string, value string) {
			value = strings.TrimSpace(value)
			if value != "" {
				record[key] = value
			}
		}

		set("id", h.Attr("data-event-id"))
		set("name", h.ChildText(".event-title"))
		set("date", h.ChildAttr("time", "datetime"))
		set("start_time", h.ChildText(".event-time"))
		set("duration", h.ChildText(".event-duration"))
		set("description", h.ChildText(".event-description"))
		set("venue", h.ChildText(".event-venue"))
		set("organizer", h.ChildText(".event-society"))

		records = append(records, record)
	})

	err := c.Visit(client.pageURL)
	if err != nil {
		return nil, err
	}

	client.logger.Debug("scraped noticeboard", slog.Int("card_count", len(records)))

	return records, nil
}
