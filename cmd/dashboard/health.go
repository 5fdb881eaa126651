package main

import (
	"net/http"

	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
)

type healthResponse struct {
	Status   string   `json:"status"`
	Env      string   `json:"env"`
	Release  string   `json:"release"`
	Warnings []string `json:"warnings"`
}

func (app *Application) healthHandler(w http.ResponseWriter, r *http.Request) {
	err := httptools.WriteJSON(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Env:      app.config.Env,
		Release:  app.config.Release,
		Warnings: app.config.Validate(),
	}, nil)
	if err != nil {
		httptools.HandleError(w, r, err)
	}
}
