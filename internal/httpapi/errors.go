package httpapi

import (
	"errors"
	"net/http"

	"github.com/okezie/bankclients/internal/errs"
)

// errorResponse is the standard error payload for the API.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeErr(w http.ResponseWriter, status int, msg, code string) {
	toJSON(w, status, errorResponse{Error: msg, Code: code})
}

func invalidInput(w http.ResponseWriter, msg string) {
	writeErr(w, http.StatusBadRequest, msg, "invalid_input")
}

func notFound(w http.ResponseWriter, msg string) {
	writeErr(w, http.StatusNotFound, msg, "not_found")
}

// writeServiceErr maps domain sentinels onto the status codes and detail
// messages of the public API. notFoundMsg and insufficientMsg carry the
// operation-specific wording.
func writeServiceErr(w http.ResponseWriter, err error, notFoundMsg, insufficientMsg string) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		notFound(w, notFoundMsg)
	case errors.Is(err, errs.ErrInsufficientFunds):
		writeErr(w, http.StatusBadRequest, insufficientMsg, "insufficient_funds")
	case errors.Is(err, errs.ErrDuplicateClient):
		writeErr(w, http.StatusBadRequest, "Client already exists.", "duplicate_client")
	case errors.Is(err, errs.ErrInvalid):
		invalidInput(w, "Name and Salary are required.")
	default:
		writeErr(w, http.StatusInternalServerError, "internal error", "")
	}
}
