package dashboard

import (
	"net/http"

	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Errors map[string]string `json:"errors,omitempty"`
}

type suggestionResponse struct {
	Suggestion string `json:"suggestion"`
}

type deleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
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
