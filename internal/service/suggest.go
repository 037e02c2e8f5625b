package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexivanou/skytrip-api/internal/classify"
	"github.com/alexivanou/skytrip-api/internal/model"
)

const defaultMinQueryLength = 2

// ErrQueryTooShort is returned when a suggest query fails the minimum-length
// gate. Callers treat it as invalid input, not a failure.
var ErrQueryTooShort = errors.New("query too short")

// validateQuery applies the minimum-length gate shared by all suggest operations
func (s *Service) validateQuery(query string) (string, error) {
	trimmed := strings.TrimSpace(query)
	if len([]rune(trimmed)) < s.minQueryLength {
		return "", fmt.Errorf("%w: need at least %d characters", ErrQueryTooShort, s.minQueryLength)
	}
	return trimmed, nil
}

// SuggestAirports searches airports and returns a single ranked list:
// airports first, then cities, then countries, each bucket capped.
func (s *Service) SuggestAirports(ctx context.Context, query string) (*model.AirportSuggestionsResponse, error) {
	trimmed, err := s.validateQuery(query)
	if err != nil {
		return nil, err
	}

	items, err := s.sky.SearchAirports(ctx, trimmed, s.locales.CurrentID())
	if err != nil {
		return nil, fmt.Errorf("failed to search airports: %w", err)
	}

	return &model.AirportSuggestionsResponse{
		Query:   trimmed,
		Results: classify.Airports(items),
	}, nil
}

// SuggestAirportsGrouped searches airports and returns labeled sections
// without truncation.
func (s *Service) SuggestAirportsGrouped(ctx context.Context, query string) (*model.AirportSectionsResponse, error) {
	trimmed, err := s.validateQuery(query)
	if err != nil {
		return nil, err
	}

	items, err := s.sky.SearchAirports(ctx, trimmed, s.locales.CurrentID())
	if err != nil {
		return nil, fmt.Errorf("failed to search airports: %w", err)
	}

	return &model.AirportSectionsResponse{
		Query:    trimmed,
		Sections: classify.AirportSections(items),
	}, nil
}

// SuggestHotelDestinations searches hotel destinations, keeping only
// hotel-relevant entity types ranked by relevance score.
func (s *Service) SuggestHotelDestinations(ctx context.Context, query string) (*model.HotelDestinationsResponse, error) {
	trimmed, err := s.validateQuery(query)
	if err != nil {
		return nil, err
	}

	localeID := s.locales.CurrentID()
	items, err := s.sky.SearchHotelDestinations(ctx, trimmed, localeID)
	if err != nil {
		return nil, fmt.Errorf("failed to search hotel destinations: %w", err)
	}

	return &model.HotelDestinationsResponse{
		Query:   trimmed,
		Results: classify.HotelDestinations(items, localeID),
	}, nil
}

// SuggestCarLocations searches car rental locations, cities and airports first
func (s *Service) SuggestCarLocations(ctx context.Context, query string) (*model.CarLocationsResponse, error) {
	trimmed, err := s.validateQuery(query)
	if err != nil {
		return nil, err
	}

	items, err := s.sky.SearchCarLocations(ctx, trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to search car locations: %w", err)
	}

	return &model.CarLocationsResponse{
		Query:   trimmed,
		Results: classify.CarLocations(items, s.locales.CurrentID()),
	}, nil
}

// NearbyAirports returns the airports around the given coordinates
func (s *Service) NearbyAirports(ctx context.Context, coords model.Coordinates) (*model.NearbyAirportsResponse, error) {
	data, err := s.sky.NearbyAirports(ctx, coords, s.locales.CurrentID())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch nearby airports: %w", err)
	}

	return &model.NearbyAirportsResponse{
		RequestCoordinates: coords,
		Current:            data.Current,
		Nearby:             data.Nearby,
		Recent:             data.Recent,
	}, nil
}
