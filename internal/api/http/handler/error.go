package handler

import (
	"errors"
	"net/http"

	"github.com/expenso/expenso-server/internal/model"
)

// handleError maps a domain error to an HTTP response. notFound is the
// message used for model.ErrNotFound, which handlers phrase per
// resource. Anything unrecognized becomes a generic 500 with no
// internals in the body.
func handleError(w http.ResponseWriter, err error, notFound string) {
	var vErr *model.ValidationError

	switch {
	case errors.As(err, &vErr):
		respondError(w, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, model.ErrEmailTaken):
		respondError(w, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, model.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, model.ErrInvalidReference):
		respondError(w, http.StatusBadRequest, "Invalid category")
	case errors.Is(err, model.ErrNotFound):
		respondError(w, http.StatusNotFound, notFound)
	default:
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
