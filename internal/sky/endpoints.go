package sky

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/alexivanou/skytrip-api/internal/model"
)

const (
	defaultCurrency    = "USD"
	defaultMarket      = "en-US"
	defaultCountryCode = "US"
	defaultCabinClass  = "economy"
	defaultSortBy      = "best"
)

// SearchAirports queries the airport autocomplete endpoint.
// The locale is passed through so the API localizes display names.
func (c *Client) SearchAirports(ctx context.Context, query, locale string) ([]model.AirportSuggestion, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("locale", orDefault(locale, defaultMarket))

	var resp struct {
		envelope
		Data []model.AirportSuggestion `json:"data"`
	}
	if err := c.get(ctx, "/api/v1/flights/searchAirport", params, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(resp.envelope); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// SearchHotelDestinations queries the hotel destination autocomplete endpoint
func (c *Client) SearchHotelDestinations(ctx context.Context, query, locale string) ([]model.HotelDestination, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("locale", orDefault(locale, defaultMarket))

	var resp struct {
		envelope
		Data []model.HotelDestination `json:"data"`
	}
	if err := c.get(ctx, "/api/v1/hotels/searchDestinationOrHotels", params, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(resp.envelope); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// SearchCarLocations queries the car rental location autocomplete endpoint.
// This endpoint does not accept a locale parameter.
func (c *Client) SearchCarLocations(ctx context.Context, query string) ([]model.CarLocation, error) {
	params := url.Values{}
	params.Set("query", query)

	var resp struct {
		envelope
		Data []model.CarLocation `json:"data"`
	}
	if err := c.get(ctx, "/api/v1/cars/searchLocation", params, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(resp.envelope); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// NearbyAirports queries airports around the given coordinates
func (c *Client) NearbyAirports(ctx context.Context, coords model.Coordinates, locale string) (*model.NearbyAirportsData, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	params.Set("locale", orDefault(locale, defaultMarket))

	var resp struct {
		envelope
		Data model.NearbyAirportsData `json:"data"`
	}
	if err := c.get(ctx, "/api/v1/flights/getNearByAirports", params, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(resp.envelope); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Locales fetches the languages supported by the API
func (c *Client) Locales(ctx context.Context) ([]model.Locale, error) {
	var resp struct {
		envelope
		Data []model.Locale `json:"data"`
	}
	if err := c.get(ctx, "/api/v1/getLocale", url.Values{}, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(resp.envelope); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// SearchFlights queries the flight search endpoint
func (c *Client) SearchFlights(ctx context.Context, p model.FlightSearchParams) (*model.FlightSearchData, error) {
	params := url.Values{}
	params.Set("originSkyId", p.OriginSkyID)
	params.Set("destinationSkyId", p.DestinationSkyID)
	params.Set("originEntityId", p.OriginEntityID)
	params.Set("destinationEntityId", p.DestinationEntityID)
	params.Set("date", p.Date)
	if p.ReturnDate != "" {
		params.Set("returnDate", p.ReturnDate)
	}
	params.Set("cabinClass", orDefault(p.CabinClass, defaultCabinClass))
	params.Set("adults", strconv.Itoa(p.Adults))
	if p.Children > 0 {
		params.Set("children", strconv.Itoa(p.Children))
	}
	if p.Infants > 0 {
		params.Set("infants", strconv.Itoa(p.Infants))
	}
	params.Set("sortBy", orDefault(p.SortBy, defaultSortBy))
	params.Set("currency", orDefault(p.Currency, defaultCurrency))
	params.Set("market", orDefault(p.Market, defaultMarket))
	params.Set("countryCode", orDefault(p.CountryCode, defaultCountryCode))

	var resp struct {
		envelope
		SessionID string                 `json:"sessionId"`
		Data      model.FlightSearchData `json:"data"`
	}
	if err := c.get(ctx, "/api/v1/flights/searchFlights", params, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(resp.envelope); err != nil {
		return nil, err
	}
	resp.Data.SessionID = resp.SessionID
	return &resp.Data, nil
}

// FlightDetails queries pricing options for a concrete itinerary
func (c *Client) FlightDetails(ctx context.Context, p model.FlightDetailsParams) (*model.FlightDetailsData, error) {
	legs, err := json.Marshal(p.Legs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode legs: %w", err)
	}

	params := url.Values{}
	params.Set("legs", string(legs))
	params.Set("adults", strconv.Itoa(p.Adults))
	params.Set("currency", orDefault(p.Currency, defaultCurrency))
	params.Set("locale", orDefault(p.Locale, defaultMarket))
	params.Set("market", orDefault(p.Market, defaultMarket))
	params.Set("cabinClass", orDefault(p.CabinClass, defaultCabinClass))
	params.Set("countryCode", orDefault(p.CountryCode, defaultCountryCode))

	var resp struct {
		envelope
		Data model.FlightDetailsData `json:"data"`
	}
	if err := c.get(ctx, "/api/v1/flights/getFlightDetails", params, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(resp.envelope); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
