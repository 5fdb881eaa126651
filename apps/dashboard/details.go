package dashboard

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"dashboard.xdoubleu.com/apps/dashboard/internal/services"
	"dashboard.xdoubleu.com/internal/constants"
	"dashboard.xdoubleu.com/internal/models"
	"github.com/xdoubleu/essentia/v2/pkg/contexttools"
)

func (app *Dashboard) detailsRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET %s/weather/details", prefix),
		app.Services.Auth.Access(app.weatherDetailsHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/garmin/details", prefix),
		app.Services.Auth.Access(app.garminDetailsHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/sleep/analysis", prefix),
		app.Services.Auth.Access(app.sleepAnalysisHandler),
	)
}

func (app *Dashboard) weatherDetailsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, app.Services.Weather.GetWeatherDetails(r.Context()))
}

func (app *Dashboard) garminDetailsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, app.Services.Fitness.GetDetails(r.Context()))
}

func (app *Dashboard) sleepAnalysisHandler(w http.ResponseWriter, r *http.Request) {
	user := contexttools.GetValue[models.User](r.Context(), constants.UserContextKey)
	if user == nil {
		panic(errors.New("not signed in"))
	}

	days := services.DefaultSleepDays
	if value := r.URL.Query().Get("days"); value != "" {
		var err error
		days, err = strconv.Atoi(value)
		if err != nil || days < 1 || days > services.MaxSleepDays {
			errorJSON(
				w,
				http.StatusBadRequest,
				fmt.Sprintf("days must be a number between 1 and %d", services.MaxSleepDays),
				nil,
			)
			return
		}
	}

	writeJSON(w, http.StatusOK, app.Services.Sleep.GetSleepAnalysis(r.Context(), user.ID, days))
}
