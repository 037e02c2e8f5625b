package api

import (
	"github.com/alexivanou/skytrip-api/internal/auth"
	"github.com/alexivanou/skytrip-api/internal/service"
	"github.com/alexivanou/skytrip-api/internal/stats"
	"github.com/gorilla/mux"
)

// NewRouter creates a new HTTP router
func NewRouter(service service.ServiceInterface, authProvider auth.Provider, statsCollector *stats.Collector) *mux.Router {
	handler := NewHandler(service)
	authHandler := NewAuthHandler(authProvider)

	router := mux.NewRouter()

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1
	v1 := router.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/airports/suggest", handler.SuggestAirports).Methods("GET")
	v1.HandleFunc("/airports/nearby", handler.NearbyAirports).Methods("GET")
	v1.HandleFunc("/hotels/suggest", handler.SuggestHotelDestinations).Methods("GET")
	v1.HandleFunc("/cars/suggest", handler.SuggestCarLocations).Methods("GET")
	v1.HandleFunc("/flights/search", handler.SearchFlights).Methods("GET")
	v1.HandleFunc("/flights/details", handler.FlightDetails).Methods("POST")
	v1.HandleFunc("/locales", handler.Locales).Methods("GET")
	v1.HandleFunc("/locale", handler.SetLocale).Methods("PUT")
	v1.HandleFunc("/stats", GetStats(statsCollector)).Methods("GET")

	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	v1.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	v1.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	v1.HandleFunc("/auth/me", authHandler.CurrentUser).Methods("GET")

	return router
}
