package localevents

import (
	"fmt"
	"net/http"

	"dashboard.xdoubleu.com/apps/localevents/internal/helper"
)

func (app *LocalEvents) feedRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(fmt.Sprintf("GET /%s/events.ics", prefix), app.feedHandler)
}

func (app *LocalEvents) feedHandler(w http.ResponseWriter, r *http.Request) {
	days, ok := app.readDays(w, r)
	if !ok {
		return
	}

	feed, err := app.Services.Feed.Feed(
		r.Context(),
		days,
		helper.SplitKeywords(r.URL.Query().Get("keywords")),
	)
	if err != nil {
		panic(err)
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	_, err = w.Write([]byte(feed))
	if err != nil {
		app.logger.Error("Failed to write events feed", "error", err)
	}
}
