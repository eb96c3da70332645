package main

import (
	"log/slog"
	"net/http"

	"societycal.app/apps/societycal"
	"societycal.app/internal/config"
)

type Apps struct {
	apps []App
}

type App interface {
	Routes(prefix string, mux *http.ServeMux)
	GetName() string
}

func NewApps(
	logger *slog.Logger,
	cfg config.Config,
) *Apps {
	apps := &Apps{
		apps: []App{},
	}

	apps.addApp(societycal.New(logger, cfg))

	return apps
}

func (apps *Apps) Routes(mux *http.ServeMux) {
	for _, app := range apps.apps {
		app.Routes(app.GetName(), mux)
	}
}

func (apps *Apps) addApp(app App) {
	apps.apps = append(apps.apps, app)
}
