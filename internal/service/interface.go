package service

import (
	"context"

	"github.com/alexivanou/skytrip-api/internal/model"
)

// ServiceInterface defines the service interface for testing
type ServiceInterface interface {
	SuggestAirports(ctx context.Context, query string) (*model.AirportSuggestionsResponse, error)
	SuggestAirportsGrouped(ctx context.Context, query string) (*model.AirportSectionsResponse, error)
	SuggestHotelDestinations(ctx context.Context, query string) (*model.HotelDestinationsResponse, error)
	SuggestCarLocations(ctx context.Context, query string) (*model.CarLocationsResponse, error)
	NearbyAirports(ctx context.Context, coords model.Coordinates) (*model.NearbyAirportsResponse, error)
	SearchFlights(ctx context.Context, params model.FlightSearchParams) (*model.FlightSearchResponse, error)
	FlightDetails(ctx context.Context, params model.FlightDetailsParams) (*model.FlightDetailsData, error)
	Locales(ctx context.Context) (*model.LocalesResponse, error)
	SetLocale(ctx context.Context, locale model.Locale) error
}
