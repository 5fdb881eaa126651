package localevents

import (
	"net/http"

	"dashboard.xdoubleu.com/apps/localevents/internal/models"
	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Errors map[string]string `json:"errors,omitempty"`
}

type eventsFilters struct {
	Days     int      `json:"days"`
	Keywords []string `json:"keywords"`
}

type eventsResponse struct {
	Events     []models.Event `json:"events"`
	Total      int            `json:"total"`
	Categories []string       `json:"categories"`
	Types      []string       `json:"types"`
	Filters    eventsFilters  `json:"filters"`
}

type searchResponse struct {
	Keywords string            `json:"keywords"`
	Location string            `json:"location"`
	Events   []models.WebEvent `json:"events"`
	Total    int               `json:"total"`
	Source   string            `json:"source"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	err := httptools.WriteJSON(w, status, data, nil)
	if err != nil {
		panic(err)
	}
}

func errorJSON(w http.ResponseWriter, status int, message string, errs map[string]string) {
	writeJSON(w, status, errorResponse{Error: message, Errors: errs})
}
