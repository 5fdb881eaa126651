package localevents

import (
	"fmt"
	"net/http"

	"dashboard.xdoubleu.com/apps/localevents/internal/models"
	tpltools "github.com/xdoubleu/essentia/v2/pkg/tpl"
)

type rootTemplateData struct {
	Events  []models.Event
	FeedURL string
	Days    int
}

func (app *LocalEvents) templateRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET /%s/{$}", prefix),
		app.Services.Auth.TemplateAccess(app.rootHandler),
	)
}

func (app *LocalEvents) rootHandler(w http.ResponseWriter, r *http.Request) {
	days := app.Services.Events.DaysAhead()

	events, err := app.Services.Events.GetEvents(r.Context(), days, nil)
	if err != nil {
		panic(err)
	}

	tpltools.RenderWithPanic(app.tpl, w, "root.html", rootTemplateData{
		Events:  events,
		FeedURL: fmt.Sprintf("/%s/events.ics", app.GetName()),
		Days:    days,
	})
}
