package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/citykeeper/internal/common"
)

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Message: msg})
}

// writeError maps a service error to a status code. Validation failures,
// conflicts, unknown accounts and bad credentials are all client errors;
// token problems are 401; anything unrecognized is a 500 with a generic body.
func writeError(w http.ResponseWriter, err error) {
	var verr *common.ValidationError

	switch {
	case errors.As(err, &verr),
		errors.Is(err, common.ErrConflict),
		errors.Is(err, common.ErrNotFound),
		errors.Is(err, common.ErrInvalidCredentials):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		writeMessage(w, http.StatusUnauthorized, err.Error())
	default:
		writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}
