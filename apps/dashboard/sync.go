package dashboard

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/xdoubleu/essentia/v2/pkg/parse"
)

func (app *Dashboard) syncRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET %s/sync", prefix),
		app.Services.WebSocket.Handler(),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/sync/{id}/refresh", prefix),
		app.Services.Auth.Access(app.refreshSyncHandler),
	)
}

func (app *Dashboard) refreshSyncHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	if !slices.Contains(app.jobQueue.FetchJobIDs(), id) {
		errorJSON(w, http.StatusNotFound, fmt.Sprintf("unknown sync job '%s'", id), nil)
		return
	}

	_, lastRunTime := app.jobQueue.FetchState(id)
	app.Services.WebSocket.UpdateState(id, true, lastRunTime)

	app.jobQueue.ForceRun(id)

	writeJSON(w, http.StatusAccepted, app.Services.WebSocket.State(id))
}
