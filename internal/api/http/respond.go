package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"moto-rental-backend/internal/domain"
	"moto-rental-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// respondServiceError translates domain errors into HTTP statuses. Unknown
// errors (including the invalid-plan defect) surface as 500.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrCourierNotFound),
		errors.Is(err, domain.ErrMotorcycleNotFound),
		errors.Is(err, domain.ErrRentalNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrCourierAlreadyExists),
		errors.Is(err, domain.ErrMotorcycleAlreadyExists):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrLicenseNotEligible),
		errors.Is(err, domain.ErrMotorcycleUnavailable),
		errors.Is(err, domain.ErrMotorcycleHasRentals),
		errors.Is(err, domain.ErrRentalAlreadyReturned),
		errors.Is(err, domain.ErrInvalidImageFormat):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("Request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
