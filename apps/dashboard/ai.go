package dashboard

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"dashboard.xdoubleu.com/apps/dashboard/internal/services"
	"github.com/xdoubleu/essentia/v2/pkg/parse"
)

func (app *Dashboard) aiRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET %s/ai/events", prefix),
		app.Services.Auth.Access(app.searchEventsHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/ai/{kind}", prefix),
		app.Services.Auth.Access(app.suggestionHandler),
	)
}

func (app *Dashboard) suggestionHandler(w http.ResponseWriter, r *http.Request) {
	kind, err := parse.URLParam[string](r, "kind", nil)
	if err != nil {
		panic(err)
	}

	suggestion, ok := services.ParseSuggestion(kind)
	if !ok {
		errorJSON(w, http.StatusNotFound, fmt.Sprintf("unknown suggestion '%s'", kind), nil)
		return
	}

	writeJSON(w, http.StatusOK, suggestionResponse{
		Suggestion: app.Services.Dashboard.Suggest(r.Context(), suggestion),
	})
}

func (app *Dashboard) searchEventsHandler(w http.ResponseWriter, r *http.Request) {
	keywords := strings.TrimSpace(r.URL.Query().Get("keywords"))
	if keywords == "" {
		errorJSON(w, http.StatusBadRequest, "Keywords parameter required", nil)
		return
	}

	location := strings.TrimSpace(r.URL.Query().Get("location"))
	if location == "" {
		location = app.Config.WeatherCity
	}

	writeJSON(w, http.StatusOK, suggestionResponse{
		Suggestion: app.Services.AI.SearchEvents(
			r.Context(),
			keywords,
			location,
			time.Now().In(app.Config.Location()),
		),
	})
}
