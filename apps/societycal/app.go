//nolint:revive //it is what it is
package societycal

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"time"
	_ "time/tzdata"

	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"github.com/xdoubleu/essentia/v2/pkg/threading"
	"github.com/xhit/go-str2duration/v2"
	"societycal.app/apps/societycal/internal/jobs"
	"societycal.app/apps/societycal/internal/services"
	"societycal.app/apps/societycal/pkg/icsfeed"
	"societycal.app/apps/societycal/pkg/noticeboard"
	"societycal.app/apps/societycal/pkg/societyapi"
	"societycal.app/internal/config"
)

//go:embed templates/html/**/*html
var htmlTemplates embed.FS

type SocietyCal struct {
	logger    *slog.Logger
	ctx       context.Context
	ctxCancel context.CancelFunc
	Config    config.Config
	clients   Clients
	Services  *services.Services
	tpl       *template.Template
	jobQueue  *threading.JobQueue
	loc       *time.Location
}

func New(
	logger *slog.Logger,
	cfg config.Config,
) *SocietyCal {
	loc := displayLocation(logger, cfg)

	//nolint:exhaustruct //nil clients are skipped
	clients := Clients{}
	if cfg.EventsURL != "" {
		clients.API = societyapi.New(cfg.EventsURL)
	}
	if cfg.IcsURL != "" {
		clients.Feed = icsfeed.New(logger, cfg.IcsURL, 0, loc)
	}
	if cfg.NoticeboardURL != "" {
		clients.Board = noticeboard.New(logger, cfg.NoticeboardURL)
	}

	return NewInner(logger, cfg, clients)
}

func NewInner(
	logger *slog.Logger,
	cfg config.Config,
	clients Clients,
) *SocietyCal {
	tpl := template.Must(template.ParseFS(htmlTemplates, "templates/html/**/*.html"))

	//nolint:mnd //no magic number
	jobQueue := threading.NewJobQueue(logger, 1, 100)

	//nolint:exhaustruct //other fields are optional
	app := &SocietyCal{
		logger:   logger,
		clients:  clients,
		Config:   cfg,
		tpl:      tpl,
		jobQueue: jobQueue,
		loc:      displayLocation(logger, cfg),
	}

	app.setContext()

	app.Services = services.New(
		logger,
		cfg,
		jobQueue,
		clients.API,
		clients.Feed,
		clients.Board,
		app.loc,
		parseConfigDuration(logger, cfg.CacheTTL, 5*time.Minute),
	)

	app.setJobs()

	return app
}

func (app *SocietyCal) setJobs() {
	refreshEvery := parseConfigDuration(
		app.logger,
		app.Config.RefreshEvery,
		15*time.Minute,
	)

	job := jobs.NewRefreshJob(app.Services.Events, refreshEvery)

	err := app.jobQueue.AddJob(job, app.Services.RefreshState.Watch(job.ID()))
	if err != nil {
		panic(err)
	}
}

func (app *SocietyCal) setContext() {
	ctx, cancel := context.WithCancel(context.Background())
	app.ctx = ctx
	app.ctxCancel = cancel
}

func (app *SocietyCal) GetName() string {
	return "societycal"
}

func displayLocation(logger *slog.Logger, cfg config.Config) *time.Location {
	if cfg.DisplayTZ == "" {
		return time.Local
	}

	loc, err := time.LoadLocation(cfg.DisplayTZ)
	if err != nil {
		logger.Warn(
			"unknown DISPLAY_TZ, using local time",
			slog.String("tz", cfg.DisplayTZ),
			logging.ErrAttr(err),
		)
		return time.Local
	}

	return loc
}

func parseConfigDuration(
	logger *slog.Logger,
	value string,
	fallback time.Duration,
) time.Duration {
	d, err := str2duration.ParseDuration(value)
	if err != nil {
		logger.Warn(
			"invalid duration in config",
			slog.String("value", value),
			logging.ErrAttr(err),
		)
		return fallback
	}

	return d
}
