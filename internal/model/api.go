package model

// AirportSuggestionsResponse is the ranked, flattened airport suggest response
type AirportSuggestionsResponse struct {
	Query   string              `json:"query"`
	Results []AirportSuggestion `json:"results"`
}

// AirportSection is one labeled group of airport suggestions
type AirportSection struct {
	Label string              `json:"label"`
	Items []AirportSuggestion `json:"items"`
}

// AirportSectionsResponse is the grouped airport suggest response
type AirportSectionsResponse struct {
	Query    string           `json:"query"`
	Sections []AirportSection `json:"sections"`
}

// HotelDestinationsResponse is the hotel destination suggest response
type HotelDestinationsResponse struct {
	Query   string             `json:"query"`
	Results []HotelDestination `json:"results"`
}

// CarLocationsResponse is the car rental location suggest response
type CarLocationsResponse struct {
	Query   string        `json:"query"`
	Results []CarLocation `json:"results"`
}

// NearbyAirportsResponse is the response for airports around a coordinate
type NearbyAirportsResponse struct {
	RequestCoordinates Coordinates     `json:"request_coordinates"`
	Current            CurrentAirport  `json:"current"`
	Nearby             []NearbyAirport `json:"nearby"`
	Recent             []NearbyAirport `json:"recent"`
}

// LocalesResponse lists the active and the selectable locales
type LocalesResponse struct {
	Current   Locale   `json:"current"`
	Available []Locale `json:"available"`
}

// FlightSearchResponse is the gateway flight search response
type FlightSearchResponse struct {
	SessionID   string              `json:"sessionId,omitempty"`
	Context     FlightSearchContext `json:"context"`
	Itineraries []FlightItinerary   `json:"itineraries"`
}
