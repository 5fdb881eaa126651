package dashboard

import (
	"fmt"
	"net/http"
)

func (app *Dashboard) dashboardRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET %s/dashboard", prefix),
		app.Services.Auth.Access(app.getDashboardHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/dashboard/quick", prefix),
		app.Services.Auth.Access(app.getQuickDashboardHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/refresh", prefix),
		app.Services.Auth.Access(app.getDashboardHandler),
	)
}

func (app *Dashboard) getDashboardHandler(w http.ResponseWriter, r *http.Request) {
	app.logger.Info("fetching dashboard data")
	writeJSON(w, http.StatusOK, app.Services.Dashboard.Get(r.Context(), true))
}

func (app *Dashboard) getQuickDashboardHandler(w http.ResponseWriter, r *http.Request) {
	app.logger.Info("fetching quick dashboard data")
	writeJSON(w, http.StatusOK, app.Services.Dashboard.Get(r.Context(), false))
}
