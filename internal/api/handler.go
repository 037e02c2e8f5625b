package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/alexivanou/skytrip-api/internal/model"
	"github.com/alexivanou/skytrip-api/internal/service"
	"github.com/alexivanou/skytrip-api/internal/sky"
	"github.com/alexivanou/skytrip-api/internal/stats"
	"github.com/go-playground/validator/v10"
)

// Handler handles HTTP requests
type Handler struct {
	service service.ServiceInterface
}

// NewHandler creates a new handler instance
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// suggestQuery extracts the q parameter shared by the suggest endpoints.
// Length gating happens in the service, which knows the configured minimum.
func suggestQuery(w http.ResponseWriter, r *http.Request) (string, bool) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		http.Error(w, "query parameter 'q' is required", http.StatusBadRequest)
		return "", false
	}
	return query, true
}

// SuggestAirports handles GET /api/v1/airports/suggest
func (h *Handler) SuggestAirports(w http.ResponseWriter, r *http.Request) {
	query, ok := suggestQuery(w, r)
	if !ok {
		return
	}

	if r.URL.Query().Get("grouped") == "true" {
		response, err := h.service.SuggestAirportsGrouped(r.Context(), query)
		if err != nil {
			log.Printf("Error suggesting airports: %v", err)
			writeServiceError(w, err)
			return
		}
		writeJSON(w, response)
		return
	}

	response, err := h.service.SuggestAirports(r.Context(), query)
	if err != nil {
		log.Printf("Error suggesting airports: %v", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, response)
}

// SuggestHotelDestinations handles GET /api/v1/hotels/suggest
func (h *Handler) SuggestHotelDestinations(w http.ResponseWriter, r *http.Request) {
	query, ok := suggestQuery(w, r)
	if !ok {
		return
	}

	response, err := h.service.SuggestHotelDestinations(r.Context(), query)
	if err != nil {
		log.Printf("Error suggesting hotel destinations: %v", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, response)
}

// SuggestCarLocations handles GET /api/v1/cars/suggest
func (h *Handler) SuggestCarLocations(w http.ResponseWriter, r *http.Request) {
	query, ok := suggestQuery(w, r)
	if !ok {
		return
	}

	response, err := h.service.SuggestCarLocations(r.Context(), query)
	if err != nil {
		log.Printf("Error suggesting car locations: %v", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, response)
}

// NearbyAirports handles GET /api/v1/airports/nearby
func (h *Handler) NearbyAirports(w http.ResponseWriter, r *http.Request) {
	latStr := r.URL.Query().Get("lat")
	lngStr := r.URL.Query().Get("lng")

	if latStr == "" || lngStr == "" {
		http.Error(w, "parameters 'lat' and 'lng' are required", http.StatusBadRequest)
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		http.Error(w, "invalid lat parameter", http.StatusBadRequest)
		return
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		http.Error(w, "invalid lng parameter", http.StatusBadRequest)
		return
	}

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		http.Error(w, "invalid coordinates range", http.StatusBadRequest)
		return
	}

	coords := model.Coordinates{Latitude: lat, Longitude: lng}
	response, err := h.service.NearbyAirports(r.Context(), coords)
	if err != nil {
		log.Printf("Error fetching nearby airports: %v", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, response)
}

// SearchFlights handles GET /api/v1/flights/search
func (h *Handler) SearchFlights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := model.FlightSearchParams{
		OriginSkyID:         q.Get("originSkyId"),
		DestinationSkyID:    q.Get("destinationSkyId"),
		OriginEntityID:      q.Get("originEntityId"),
		DestinationEntityID: q.Get("destinationEntityId"),
		Date:                q.Get("date"),
		ReturnDate:          q.Get("returnDate"),
		CabinClass:          q.Get("cabinClass"),
		SortBy:              q.Get("sortBy"),
		Currency:            q.Get("currency"),
		CountryCode:         q.Get("countryCode"),
	}
	params.Adults = intParam(q.Get("adults"), 1)
	params.Children = intParam(q.Get("children"), 0)
	params.Infants = intParam(q.Get("infants"), 0)

	response, err := h.service.SearchFlights(r.Context(), params)
	if err != nil {
		log.Printf("Error searching flights: %v", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, response)
}

// FlightDetails handles POST /api/v1/flights/details
func (h *Handler) FlightDetails(w http.ResponseWriter, r *http.Request) {
	var params model.FlightDetailsParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.service.FlightDetails(r.Context(), params)
	if err != nil {
		log.Printf("Error fetching flight details: %v", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, response)
}

// Locales handles GET /api/v1/locales
func (h *Handler) Locales(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.Locales(r.Context())
	if err != nil {
		log.Printf("Error getting locales: %v", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, response)
}

// SetLocale handles PUT /api/v1/locale
func (h *Handler) SetLocale(w http.ResponseWriter, r *http.Request) {
	var locale model.Locale
	if err := json.NewDecoder(r.Body).Decode(&locale); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if locale.ID == "" {
		http.Error(w, "locale id is required", http.StatusBadRequest)
		return
	}

	if err := h.service.SetLocale(r.Context(), locale); err != nil {
		log.Printf("Error setting locale: %v", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, locale)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// GetStats handles GET /api/v1/stats
func GetStats(collector *stats.Collector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := collector.Collect(r.Context())
		if err != nil {
			log.Printf("Error collecting statistics: %v", err)
			http.Error(w, "failed to collect statistics", http.StatusInternalServerError)
			return
		}
		writeJSON(w, snapshot)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// writeServiceError maps a service failure to a response status: validation
// failures become 400, upstream API failures 502, everything else 500.
func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrQueryTooShort) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var apiErr *sky.APIError
	if errors.As(err, &apiErr) {
		http.Error(w, apiErr.Message, http.StatusBadGateway)
		return
	}

	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func intParam(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	return fallback
}
