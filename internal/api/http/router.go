package http

import (
	"github.com/gorilla/mux"

	"moto-rental-backend/internal/security"
	"moto-rental-backend/internal/service"
)

// NewRouter builds the API router with all back-office routes registered.
func NewRouter(
	courierSvc service.CourierService,
	motorcycleSvc service.MotorcycleService,
	rentalSvc service.RentalService,
	tokens security.TokenManager,
) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(AuthMiddleware(tokens))

	courierHandler := NewCourierHandler(courierSvc)
	api.HandleFunc("/couriers", courierHandler.Register).Methods("POST")
	api.HandleFunc("/couriers", courierHandler.List).Methods("GET")
	api.HandleFunc("/couriers/{id}", courierHandler.GetByID).Methods("GET")
	api.HandleFunc("/couriers/{id}/cnh-image", courierHandler.UpdateCNHImage).Methods("PUT")

	motorcycleHandler := NewMotorcycleHandler(motorcycleSvc)
	api.HandleFunc("/motorcycles", motorcycleHandler.Register).Methods("POST")
	api.HandleFunc("/motorcycles", motorcycleHandler.List).Methods("GET")
	api.HandleFunc("/motorcycles/{id}", motorcycleHandler.GetByID).Methods("GET")
	api.HandleFunc("/motorcycles/{id}", motorcycleHandler.Update).Methods("PUT")
	api.HandleFunc("/motorcycles/{id}", motorcycleHandler.Delete).Methods("DELETE")

	rentalHandler := NewRentalHandler(rentalSvc)
	api.HandleFunc("/rentals", rentalHandler.Create).Methods("POST")
	api.HandleFunc("/rentals/{id}", rentalHandler.GetByID).Methods("GET")
	api.HandleFunc("/rentals/{id}/return", rentalHandler.Return).Methods("PUT")

	return router
}
