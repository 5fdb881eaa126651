package dashboard

import (
	"fmt"
	"net/http"
)

func (app *Dashboard) apiRoutes(prefix string, mux *http.ServeMux) {
	apiPrefix := fmt.Sprintf("/%s/api", prefix)
	app.dashboardRoutes(apiPrefix, mux)
	app.aiRoutes(apiPrefix, mux)
	app.detailsRoutes(apiPrefix, mux)
	app.todosRoutes(apiPrefix, mux)
	app.syncRoutes(apiPrefix, mux)
}

func (app *Dashboard) Routes(prefix string, mux *http.ServeMux) {
	app.templateRoutes(prefix, mux)
	app.apiRoutes(prefix, mux)
}
