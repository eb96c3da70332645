//nolint:mnd //no magic number
package config

import (
	"log/slog"

	"github.com/xdoubleu/essentia/v2/pkg/config"
)

type Config struct {
	Env            string
	Port           int
	Throttle       bool
	WebURL         string
	SentryDsn      string
	SampleRate     float64
	Release        string
	EventsURL      string
	IcsURL         string
	NoticeboardURL string
	DisplayTZ      string
	CacheTTL       string
	RefreshEvery   string
}

func New(logger *slog.Logger) Config {
	var cfg Config

	parser := config.New(logger)

	cfg.Env = parser.EnvStr("ENV", config.ProdEnv)
	cfg.Port = parser.EnvInt("PORT", 8000)
	cfg.Throttle = parser.EnvBool("THROTTLE", true)
	cfg.WebURL = parser.EnvStr("WEB_URL", "http://localhost:8000")
	cfg.SentryDsn = parser.EnvStr("SENTRY_DSN", "")
	cfg.SampleRate = parser.EnvFloat("SAMPLE_RATE", 1.0)
	cfg.Release = parser.EnvStr("RELEASE", config.DevEnv)

	cfg.EventsURL = parser.EnvStr("EVENTS_URL", "")
	cfg.IcsURL = parser.EnvStr("ICS_URL", "")
	cfg.NoticeboardURL = parser.EnvStr("NOTICEBOARD_URL", "")

	cfg.DisplayTZ = parser.EnvStr("DISPLAY_TZ", "")
	cfg.CacheTTL = parser.EnvStr("CACHE_TTL", "5m")
	cfg.RefreshEvery = parser.EnvStr("REFRESH_EVERY", "15m")

	return cfg
}
