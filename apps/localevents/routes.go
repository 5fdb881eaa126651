package localevents

import (
	"fmt"
	"net/http"
)

func (app *LocalEvents) apiRoutes(prefix string, mux *http.ServeMux) {
	apiPrefix := fmt.Sprintf("/%s/api", prefix)
	app.eventsRoutes(apiPrefix, mux)
}

func (app *LocalEvents) Routes(prefix string, mux *http.ServeMux) {
	app.templateRoutes(prefix, mux)
	app.feedRoutes(prefix, mux)
	app.apiRoutes(prefix, mux)
}
