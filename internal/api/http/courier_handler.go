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

const dateLayout = "2006-01-02"

var (
	cnpjPattern = regexp.MustCompile(`^\d{14}$`)
	cnhPattern  = regexp.MustCompile(`^\d{11}$`)
)

type CourierHandler struct {
	svc service.CourierService
}

func NewCourierHandler(svc service.CourierService) *CourierHandler {
	return &CourierHandler{svc: svc}
}

type registerCourierRequest struct {
	ID          string `json:"id"`
	CNPJ        string `json:"cnpj"`
	Name        string `json:"name"`
	BirthDate   string `json:"birth_date"`
	CNHNumber   string `json:"cnh_number"`
	CNHType     string `json:"cnh_type"`
	CNHImageURL string `json:"cnh_image_url,omitempty"`
}

type updateCNHImageRequest struct {
	CNHImageURL string `json:"cnh_image_url"`
}

func (h *CourierHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerCourierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ID == "" {
		respondError(w, http.StatusBadRequest, "id is required")
		return
	}
	if req.Name == "" || len(req.Name) > 100 {
		respondError(w, http.StatusBadRequest, "name is required and must be at most 100 characters")
		return
	}
	if !cnpjPattern.MatchString(req.CNPJ) {
		respondError(w, http.StatusBadRequest, "cnpj must be 14 digits")
		return
	}
	if !cnhPattern.MatchString(req.CNHNumber) {
		respondError(w, http.StatusBadRequest, "cnh_number must be 11 digits")
		return
	}

	cnhType := domain.CNHType(req.CNHType)
	if !cnhType.Valid() {
		respondError(w, http.StatusBadRequest, "cnh_type must be A, B or AB")
		return
	}

	birthDate, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "birth_date must be formatted as yyyy-mm-dd")
		return
	}
	if birthDate.After(time.Now().UTC().AddDate(-18, 0, 0)) {
		respondError(w, http.StatusBadRequest, "courier must be at least 18 years old")
		return
	}

	courier := &domain.Courier{
		ID:        req.ID,
		CNPJ:      req.CNPJ,
		Name:      req.Name,
		BirthDate: birthDate,
		CNHNumber: req.CNHNumber,
		CNHType:   cnhType,
	}
	if req.CNHImageURL != "" {
		courier.CNHImageURL = &req.CNHImageURL
	}

	created, err := h.svc.Create(r.Context(), courier)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *CourierHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	courier, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, courier)
}

func (h *CourierHandler) List(w http.ResponseWriter, r *http.Request) {
	couriers, err := h.svc.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if couriers == nil {
		couriers = []domain.Courier{}
	}
	respondJSON(w, http.StatusOK, couriers)
}

func (h *CourierHandler) UpdateCNHImage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req updateCNHImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CNHImageURL == "" {
		respondError(w, http.StatusBadRequest, "cnh_image_url is required")
		return
	}

	courier, err := h.svc.UpdateCNHImage(r.Context(), id, req.CNHImageURL)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, courier)
}
