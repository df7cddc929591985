package api

import (
	"encoding/json"
	"net/http"

	"github.com/nhalm/canonlog"
)

func renderJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func renderError(w http.ResponseWriter, r *http.Request, statusCode int, err error, message string) {
	canonlog.AddRequestError(r.Context(), err)
	if statusCode >= 500 && statusCode != http.StatusBadGateway {
		message = "An internal error occurred"
	}
	renderJSON(w, statusCode, NewErrorResponse(message))
}

func Success(w http.ResponseWriter, data any) {
	renderJSON(w, http.StatusOK, data)
}

func BadRequest(w http.ResponseWriter, r *http.Request, err error, message string) {
	renderError(w, r, http.StatusBadRequest, err, message)
}

func BadGateway(w http.ResponseWriter, r *http.Request, err error, message string) {
	renderError(w, r, http.StatusBadGateway, err, message)
}

func InternalError(w http.ResponseWriter, r *http.Request, err error, message string) {
	renderError(w, r, http.StatusInternalServerError, err, message)
}
