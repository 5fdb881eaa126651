package dashboard

import (
	"fmt"
	"net/http"

	"dashboard.xdoubleu.com/apps/dashboard/internal/models"
	tpltools "github.com/xdoubleu/essentia/v2/pkg/tpl"
)

type rootTemplateData struct {
	Dashboard models.Dashboard
	Todos     []models.Todo
	Weather   models.WeatherDetails
}

func (app *Dashboard) templateRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET /%s/{$}", prefix),
		app.Services.Auth.TemplateAccess(app.rootHandler),
	)
}

func (app *Dashboard) rootHandler(w http.ResponseWriter, r *http.Request) {
	data := app.Services.Dashboard.Get(r.Context(), false)

	tpltools.RenderWithPanic(app.tpl, w, "root.html", rootTemplateData{
		Dashboard: data,
		Todos:     app.Services.Todos.GetTodos(r.Context()),
		Weather:   data.Weather.Details(),
	})
}
