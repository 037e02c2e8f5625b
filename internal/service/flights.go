package service

import (
	"context"
	"fmt"

	"github.com/alexivanou/skytrip-api/internal/model"
)

// SearchFlights validates the search parameters, injects the active locale
// as the market and runs the upstream flight search.
func (s *Service) SearchFlights(ctx context.Context, params model.FlightSearchParams) (*model.FlightSearchResponse, error) {
	if err := s.validate.Struct(params); err != nil {
		return nil, fmt.Errorf("invalid flight search params: %w", err)
	}

	if params.Market == "" {
		params.Market = s.locales.CurrentID()
	}

	data, err := s.sky.SearchFlights(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to search flights: %w", err)
	}

	return &model.FlightSearchResponse{
		SessionID:   data.SessionID,
		Context:     data.Context,
		Itineraries: data.Itineraries,
	}, nil
}

// FlightDetails validates the itinerary reference, injects the active locale
// and fetches pricing options for it.
func (s *Service) FlightDetails(ctx context.Context, params model.FlightDetailsParams) (*model.FlightDetailsData, error) {
	if err := s.validate.Struct(params); err != nil {
		return nil, fmt.Errorf("invalid flight details params: %w", err)
	}

	if params.Locale == "" {
		params.Locale = s.locales.CurrentID()
	}

	data, err := s.sky.FlightDetails(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch flight details: %w", err)
	}
	return data, nil
}
