package localevents

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"dashboard.xdoubleu.com/apps/localevents/internal/dtos"
	"dashboard.xdoubleu.com/apps/localevents/internal/helper"
	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
)

const (
	webSearchSource = "web_search"
	defaultLocation = "your area"
)

func (app *LocalEvents) eventsRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET %s/events", prefix),
		app.Services.Auth.Access(app.getEventsHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/events", prefix),
		app.Services.Auth.Access(app.createEventHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/events/search", prefix),
		app.Services.Auth.Access(app.searchEventsHandler),
	)
}

func (app *LocalEvents) getEventsHandler(w http.ResponseWriter, r *http.Request) {
	days, ok := app.readDays(w, r)
	if !ok {
		return
	}

	keywords := helper.SplitKeywords(r.URL.Query().Get("keywords"))

	events, err := app.Services.Events.GetEvents(r.Context(), days, keywords)
	if err != nil {
		panic(err)
	}

	categories, err := app.Services.Events.GetCategories(r.Context())
	if err != nil {
		panic(err)
	}

	writeJSON(w, http.StatusOK, eventsResponse{
		Events:     events,
		Total:      len(events),
		Categories: categories,
		Types:      app.Services.Events.GetTypes(),
		Filters: eventsFilters{
			Days:     days,
			Keywords: keywords,
		},
	})
}

func (app *LocalEvents) createEventHandler(w http.ResponseWriter, r *http.Request) {
	var createEventDto dtos.CreateEventDto

	err := httptools.ReadJSON(r.Body, &createEventDto)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	if ok, errs := createEventDto.Validate(); !ok {
		errorJSON(w, http.StatusBadRequest, "Invalid event", errs)
		return
	}

	event, err := app.Services.Events.AddEvent(r.Context(), &createEventDto)
	if err != nil {
		panic(err)
	}

	writeJSON(w, http.StatusCreated, event)
}

func (app *LocalEvents) searchEventsHandler(w http.ResponseWriter, r *http.Request) {
	keywords := strings.TrimSpace(r.URL.Query().Get("keywords"))
	if keywords == "" {
		errorJSON(w, http.StatusBadRequest, "Keywords parameter required", nil)
		return
	}

	location := strings.TrimSpace(r.URL.Query().Get("location"))
	if location == "" {
		location = app.Config.WeatherCity
	}
	if location == "" {
		location = defaultLocation
	}

	app.logger.Info(fmt.Sprintf("Searching web for events: %s in %s", keywords, location))

	events := app.Services.Search.SearchWeb(r.Context(), keywords, location)

	writeJSON(w, http.StatusOK, searchResponse{
		Keywords: keywords,
		Location: location,
		Events:   events,
		Total:    len(events),
		Source:   webSearchSource,
	})
}

// readDays parses the days query parameter and answers 400 when it is not
// zero or a positive number.
func (app *LocalEvents) readDays(w http.ResponseWriter, r *http.Request) (int, bool) {
	value := r.URL.Query().Get("days")
	if value == "" {
		return app.Services.Events.DaysAhead(), true
	}

	days, err := strconv.Atoi(value)
	if err != nil || days < 0 {
		errorJSON(w, http.StatusBadRequest, "days must be zero or a positive number", nil)
		return 0, false
	}

	return days, true
}
