package service

import (
	"context"

	"github.com/alexivanou/skytrip-api/internal/config"
	"github.com/alexivanou/skytrip-api/internal/locale"
	"github.com/alexivanou/skytrip-api/internal/model"
	"github.com/go-playground/validator/v10"
)

// SkyClient is the upstream Sky-Scrapper API surface the service depends on
type SkyClient interface {
	SearchAirports(ctx context.Context, query, locale string) ([]model.AirportSuggestion, error)
	SearchHotelDestinations(ctx context.Context, query, locale string) ([]model.HotelDestination, error)
	SearchCarLocations(ctx context.Context, query string) ([]model.CarLocation, error)
	NearbyAirports(ctx context.Context, coords model.Coordinates, locale string) (*model.NearbyAirportsData, error)
	SearchFlights(ctx context.Context, params model.FlightSearchParams) (*model.FlightSearchData, error)
	FlightDetails(ctx context.Context, params model.FlightDetailsParams) (*model.FlightDetailsData, error)
}

// Service provides business logic for the API
type Service struct {
	sky            SkyClient
	locales        *locale.Provider
	validate       *validator.Validate
	minQueryLength int
}

// NewService creates a new service instance
func NewService(sky SkyClient, locales *locale.Provider, search config.SearchConfig) *Service {
	minLength := search.MinQueryLength
	if minLength <= 0 {
		minLength = defaultMinQueryLength
	}
	return &Service{
		sky:            sky,
		locales:        locales,
		validate:       validator.New(),
		minQueryLength: minLength,
	}
}

// Locales returns the active locale and the selectable list
func (s *Service) Locales(ctx context.Context) (*model.LocalesResponse, error) {
	return &model.LocalesResponse{
		Current:   s.locales.Current(),
		Available: s.locales.Available(),
	}, nil
}

// SetLocale makes locale the active selection and persists it
func (s *Service) SetLocale(ctx context.Context, loc model.Locale) error {
	return s.locales.Set(ctx, loc)
}
