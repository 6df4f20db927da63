package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"library-service-backend/internal/domain"
	"library-service-backend/internal/logger"
	"library-service-backend/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps domain error kinds onto HTTP statuses. Validation and
// conflict failures are client errors; an external-collaborator failure is a
// server error even though the primary operation may already be committed.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusBadRequest, map[string]string{validationErr.Field: validationErr.Message})
		return
	}

	var notFoundErr *domain.NotFoundError
	if errors.As(err, &notFoundErr) {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": notFoundErr.Error()})
		return
	}

	var conflictErr *domain.ConflictError
	if errors.As(err, &conflictErr) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": conflictErr.Message})
		return
	}

	var externalErr *domain.ExternalServiceError
	if errors.As(err, &externalErr) {
		logger.Error("External service failure", "service", externalErr.Service, "error", externalErr.Err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"detail": "payment service unavailable"})
		return
	}

	if errors.Is(err, service.ErrInvalidCredentials) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": err.Error()})
		return
	}

	logger.Error("Unhandled request error", "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "internal server error"})
}
