package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AleksandrYakovlevgtn/shareit/internal/domain"
	"github.com/AleksandrYakovlevgtn/shareit/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("failed to encode response body", "error", err)
		}
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses:
// NotFoundError -> 404, BookingError/StateError -> 400,
// ForbiddenError -> 403, everything else -> 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		notFound  *domain.NotFoundError
		booking   *domain.BookingError
		forbidden *domain.ForbiddenError
		state     *domain.StateError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &booking):
		status = http.StatusBadRequest
	case errors.As(err, &state):
		status = http.StatusBadRequest
	case errors.As(err, &forbidden):
		status = http.StatusForbidden
	}

	if status == http.StatusInternalServerError {
		logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	} else {
		logger.Debug("request rejected", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: message})
}
