package societycal

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"
)

func (app *SocietyCal) eventsRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET %s/events", prefix),
		app.eventsHandler,
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/events/refresh", prefix),
		app.refreshHandler,
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/days/{date}/groups", prefix),
		app.dayGroupsHandler,
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/state", prefix),
		app.Services.RefreshState.Handler(),
	)
}

func (app *SocietyCal) eventsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, app.Services.Events.Calendar(r.Context()))
}

func (app *SocietyCal) refreshHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, app.Services.Events.Refresh(r.Context()))
}

// dayGroupsHandler serves the "+N more" disclosure view: the clicked day's
// events bucketed by time of day.
func (app *SocietyCal) dayGroupsHandler(w http.ResponseWriter, r *http.Request) {
	date, err := parse.URLParam[string](r, "date", nil)
	if err != nil {
		panic(err)
	}

	day, err := time.ParseInLocation("2006-01-02", date, app.loc)
	if err != nil {
		httptools.FailedValidationResponse(w, r, map[string]string{
			"date": "must be a YYYY-MM-DD date",
		})
		return
	}

	writeJSON(w, app.Services.Events.DayGroups(r.Context(), day))
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		panic(err)
	}
}
