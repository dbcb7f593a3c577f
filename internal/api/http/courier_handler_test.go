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

func newCourierRouter(svc *MockCourierService) *mux.Router {
	handler := httpapi.NewCourierHandler(svc)
	r := mux.NewRouter()
	r.HandleFunc("/api/couriers", handler.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/couriers", handler.List).Methods(http.MethodGet)
	r.HandleFunc("/api/couriers/{id}", handler.GetByID).Methods(http.MethodGet)
	r.HandleFunc("/api/couriers/{id}/cnh-image", handler.UpdateCNHImage).Methods(http.MethodPut)
	return r
}

func validRegisterBody() map[string]string {
	return map[string]string{
		"id":         "courier-1",
		"cnpj":       "12345678000195",
		"name":       "Joao Silva",
		"birth_date": "1990-05-10",
		"cnh_number": "12345678901",
		"cnh_type":   "A",
	}
}

func TestCourierHandler_Register(t *testing.T) {
	post := func(router *mux.Router, payload map[string]string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, "/api/couriers", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("Success", func(t *testing.T) {
		svc := new(MockCourierService)
		router := newCourierRouter(svc)

		svc.On("Create", mock.Anything, mock.AnythingOfType("*domain.Courier")).
			Return(&domain.Courier{ID: "courier-1", CNHType: domain.CNHTypeA}, nil)

		rec := post(router, validRegisterBody())
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Invalid CNPJ", func(t *testing.T) {
		svc := new(MockCourierService)
		router := newCourierRouter(svc)

		body := validRegisterBody()
		body["cnpj"] = "12.345.678/0001-95"
		rec := post(router, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Invalid CNH Type", func(t *testing.T) {
		svc := new(MockCourierService)
		router := newCourierRouter(svc)

		body := validRegisterBody()
		body["cnh_type"] = "C"
		rec := post(router, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Underage", func(t *testing.T) {
		svc := new(MockCourierService)
		router := newCourierRouter(svc)

		body := validRegisterBody()
		body["birth_date"] = "2015-01-01"
		rec := post(router, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Duplicate", func(t *testing.T) {
		svc := new(MockCourierService)
		router := newCourierRouter(svc)

		svc.On("Create", mock.Anything, mock.AnythingOfType("*domain.Courier")).
			Return(nil, domain.ErrCourierAlreadyExists)

		rec := post(router, validRegisterBody())
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestCourierHandler_List(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockCourierService)
		router := newCourierRouter(svc)

		couriers := []domain.Courier{
			{ID: "courier-1", CNHType: domain.CNHTypeA},
			{ID: "courier-2", CNHType: domain.CNHTypeAB},
		}
		svc.On("List", mock.Anything).Return(couriers, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/couriers", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var res []domain.Courier
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Len(t, res, 2)
	})

	t.Run("Empty Result Is An Empty Array", func(t *testing.T) {
		svc := new(MockCourierService)
		router := newCourierRouter(svc)

		svc.On("List", mock.Anything).Return([]domain.Courier(nil), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/couriers", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestCourierHandler_UpdateCNHImage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockCourierService)
		router := newCourierRouter(svc)

		imageURL := "https://storage.example.com/cnh/courier-1.png"
		updated := &domain.Courier{ID: "courier-1", CNHImageURL: &imageURL}
		svc.On("UpdateCNHImage", mock.Anything, "courier-1", imageURL).Return(updated, nil)

		body, _ := json.Marshal(map[string]string{"cnh_image_url": imageURL})
		req := httptest.NewRequest(http.MethodPut, "/api/couriers/courier-1/cnh-image", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Invalid Format", func(t *testing.T) {
		svc := new(MockCourierService)
		router := newCourierRouter(svc)

		svc.On("UpdateCNHImage", mock.Anything, "courier-1", mock.Anything).
			Return(nil, domain.ErrInvalidImageFormat)

		body, _ := json.Marshal(map[string]string{"cnh_image_url": "https://storage.example.com/cnh/courier-1.jpg"})
		req := httptest.NewRequest(http.MethodPut, "/api/couriers/courier-1/cnh-image", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
