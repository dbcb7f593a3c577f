package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"moto-rental-backend/internal/domain"
	"moto-rental-backend/internal/service"
)

type RentalHandler struct {
	svc service.RentalService
}

func NewRentalHandler(svc service.RentalService) *RentalHandler {
	return &RentalHandler{svc: svc}
}

type createRentalRequest struct {
	MotorcycleID string `json:"motorcycle_id"`
	CourierID    string `json:"courier_id"`
	Plan         int    `json:"plan"`
	// Optional; defaults to the day after the request, the earliest allowed
	// start. The expected end date is always start + plan duration.
	StartDate string `json:"start_date,omitempty"`
}

type returnRentalRequest struct {
	ReturnDate string `json:"return_date"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.MotorcycleID == "" {
		respondError(w, http.StatusBadRequest, "motorcycle_id is required")
		return
	}
	if req.CourierID == "" {
		respondError(w, http.StatusBadRequest, "courier_id is required")
		return
	}

	plan := domain.RentalPlan(req.Plan)
	if !plan.Valid() {
		respondError(w, http.StatusBadRequest, "plan must be one of 7, 15, 30, 45 or 50 days")
		return
	}

	startDate := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
	if req.StartDate != "" {
		parsed, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "start_date must be formatted as yyyy-mm-dd")
			return
		}
		startDate = parsed
	}
	expectedEndDate := startDate.AddDate(0, 0, plan.Days())

	rental, err := h.svc.Create(r.Context(), req.MotorcycleID, req.CourierID, plan, startDate, expectedEndDate)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	rental, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req returnRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	returnDate, err := time.Parse(dateLayout, req.ReturnDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "return_date must be formatted as yyyy-mm-dd")
		return
	}

	rental, err := h.svc.Return(r.Context(), id, returnDate)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}
