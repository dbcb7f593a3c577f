package http

import (
	"encoding/json"
	"net/http"
	"regexp"
	"time"

	"github.com/gorilla/mux"

	"moto-rental-backend/internal/domain"
	"moto-rental-backend/internal/service"
)

var platePattern = regexp.MustCompile(`^[A-Z0-9-]{1,10}$`)

type MotorcycleHandler struct {
	svc service.MotorcycleService
}

func NewMotorcycleHandler(svc service.MotorcycleService) *MotorcycleHandler {
	return &MotorcycleHandler{svc: svc}
}

type registerMotorcycleRequest struct {
	ID    string `json:"id"`
	Plate string `json:"plate"`
	Year  int32  `json:"year"`
	Model string `json:"model"`
}

type updateMotorcycleRequest struct {
	Plate string `json:"plate"`
	Model string `json:"model"`
}

func (h *MotorcycleHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerMotorcycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ID == "" {
		respondError(w, http.StatusBadRequest, "id is required")
		return
	}
	if req.Model == "" || len(req.Model) > 100 {
		respondError(w, http.StatusBadRequest, "model is required and must be at most 100 characters")
		return
	}
	if !platePattern.MatchString(req.Plate) {
		respondError(w, http.StatusBadRequest, "plate must contain only uppercase letters, digits and dashes")
		return
	}
	currentYear := int32(time.Now().UTC().Year())
	if req.Year < 1900 || req.Year > currentYear+1 {
		respondError(w, http.StatusBadRequest, "year is out of range")
		return
	}

	created, err := h.svc.Create(r.Context(), &domain.Motorcycle{
		ID:    req.ID,
		Plate: req.Plate,
		Year:  req.Year,
		Model: req.Model,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *MotorcycleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	moto, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, moto)
}

func (h *MotorcycleHandler) List(w http.ResponseWriter, r *http.Request) {
	motos, err := h.svc.List(r.Context(), r.URL.Query().Get("plate"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if motos == nil {
		motos = []domain.Motorcycle{}
	}
	respondJSON(w, http.StatusOK, motos)
}

func (h *MotorcycleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req updateMotorcycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !platePattern.MatchString(req.Plate) {
		respondError(w, http.StatusBadRequest, "plate must contain only uppercase letters, digits and dashes")
		return
	}
	if req.Model == "" || len(req.Model) > 100 {
		respondError(w, http.StatusBadRequest, "model is required and must be at most 100 characters")
		return
	}

	moto, err := h.svc.Update(r.Context(), id, req.Plate, req.Model)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, moto)
}

func (h *MotorcycleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
