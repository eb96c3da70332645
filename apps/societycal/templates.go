package societycal

import (
	"fmt"
	"net/http"

	tpltools "github.com/xdoubleu/essentia/v2/pkg/tpl"
	"societycal.app/apps/societycal/internal/models"
)

func (app *SocietyCal) templateRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET /%s/{$}", prefix),
		app.rootHandler,
	)
}

type CalendarTemplateData struct {
	Events []models.CalendarEvent
}

func (app *SocietyCal) rootHandler(w http.ResponseWriter, r *http.Request) {
	data := CalendarTemplateData{
		Events: app.Services.Events.Calendar(r.Context()),
	}

	tpltools.RenderWithPanic(app.tpl, w, "calendar.html", data)
}
