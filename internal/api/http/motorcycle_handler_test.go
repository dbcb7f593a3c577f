package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "moto-rental-backend/internal/api/http"
	"moto-rental-backend/internal/domain"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newMotorcycleRouter(svc *MockMotorcycleService) *mux.Router {
	handler := httpapi.NewMotorcycleHandler(svc)
	r := mux.NewRouter()
	r.HandleFunc("/api/motorcycles", handler.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/motorcycles", handler.List).Methods(http.MethodGet)
	r.HandleFunc("/api/motorcycles/{id}", handler.GetByID).Methods(http.MethodGet)
	r.HandleFunc("/api/motorcycles/{id}", handler.Update).Methods(http.MethodPut)
	r.HandleFunc("/api/motorcycles/{id}", handler.Delete).Methods(http.MethodDelete)
	return r
}

func TestMotorcycleHandler_Register(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockMotorcycleService)
		router := newMotorcycleRouter(svc)

		created := &domain.Motorcycle{ID: "moto-1", Plate: "ABC-1234", Year: 2024, Model: "CG 160"}
		svc.On("Create", mock.Anything, mock.AnythingOfType("*domain.Motorcycle")).Return(created, nil)

		body, _ := json.Marshal(map[string]interface{}{
			"id": "moto-1", "plate": "ABC-1234", "year": 2024, "model": "CG 160",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/motorcycles", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Bad Plate", func(t *testing.T) {
		svc := new(MockMotorcycleService)
		router := newMotorcycleRouter(svc)

		body, _ := json.Marshal(map[string]interface{}{
			"id": "moto-1", "plate": "abc 1234", "year": 2024, "model": "CG 160",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/motorcycles", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate Plate", func(t *testing.T) {
		svc := new(MockMotorcycleService)
		router := newMotorcycleRouter(svc)

		svc.On("Create", mock.Anything, mock.AnythingOfType("*domain.Motorcycle")).
			Return(nil, domain.ErrMotorcycleAlreadyExists)

		body, _ := json.Marshal(map[string]interface{}{
			"id": "moto-2", "plate": "ABC-1234", "year": 2024, "model": "CG 160",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/motorcycles", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestMotorcycleHandler_List(t *testing.T) {
	t.Run("Empty Result Is An Empty Array", func(t *testing.T) {
		svc := new(MockMotorcycleService)
		router := newMotorcycleRouter(svc)

		svc.On("List", mock.Anything, "ZZZ-0000").Return([]domain.Motorcycle(nil), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/motorcycles?plate=ZZZ-0000", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestMotorcycleHandler_Update(t *testing.T) {
	t.Run("Plate And Model", func(t *testing.T) {
		svc := new(MockMotorcycleService)
		router := newMotorcycleRouter(svc)

		updated := &domain.Motorcycle{ID: "moto-1", Plate: "XYZ-9876", Year: 2024, Model: "CG 160 Titan"}
		svc.On("Update", mock.Anything, "moto-1", "XYZ-9876", "CG 160 Titan").Return(updated, nil)

		body, _ := json.Marshal(map[string]string{"plate": "XYZ-9876", "model": "CG 160 Titan"})
		req := httptest.NewRequest(http.MethodPut, "/api/motorcycles/moto-1", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var res domain.Motorcycle
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "CG 160 Titan", res.Model)
	})

	t.Run("Missing Model", func(t *testing.T) {
		svc := new(MockMotorcycleService)
		router := newMotorcycleRouter(svc)

		body, _ := json.Marshal(map[string]string{"plate": "XYZ-9876"})
		req := httptest.NewRequest(http.MethodPut, "/api/motorcycles/moto-1", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Plate Taken", func(t *testing.T) {
		svc := new(MockMotorcycleService)
		router := newMotorcycleRouter(svc)

		svc.On("Update", mock.Anything, "moto-1", "XYZ-9876", "CG 160").
			Return(nil, domain.ErrMotorcycleAlreadyExists)

		body, _ := json.Marshal(map[string]string{"plate": "XYZ-9876", "model": "CG 160"})
		req := httptest.NewRequest(http.MethodPut, "/api/motorcycles/moto-1", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestMotorcycleHandler_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockMotorcycleService)
		router := newMotorcycleRouter(svc)

		svc.On("Delete", mock.Anything, "moto-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/motorcycles/moto-1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Blocked By Rentals", func(t *testing.T) {
		svc := new(MockMotorcycleService)
		router := newMotorcycleRouter(svc)

		svc.On("Delete", mock.Anything, "moto-1").Return(domain.ErrMotorcycleHasRentals)

		req := httptest.NewRequest(http.MethodDelete, "/api/motorcycles/moto-1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
