package model

// Entity types returned by the airport search endpoint
const (
	EntityTypeAirport = "AIRPORT"
	EntityTypeCity    = "CITY"
	EntityTypeCountry = "COUNTRY"
)

// AirportPresentation holds the display strings for an airport entity
type AirportPresentation struct {
	Title           string `json:"title"`
	SuggestionTitle string `json:"suggestionTitle"`
	Subtitle        string `json:"subtitle"`
}

// FlightParams identifies an entity for flight search requests
type FlightParams struct {
	SkyID           string `json:"skyId"`
	EntityID        string `json:"entityId"`
	FlightPlaceType string `json:"flightPlaceType"`
	LocalizedName   string `json:"localizedName"`
}

// HotelParams identifies an entity for hotel search requests
type HotelParams struct {
	EntityID      string `json:"entityId"`
	EntityType    string `json:"entityType"`
	LocalizedName string `json:"localizedName"`
}

// AirportNavigation carries the routing identity of an airport entity
type AirportNavigation struct {
	EntityID            string       `json:"entityId"`
	EntityType          string       `json:"entityType"`
	LocalizedName       string       `json:"localizedName"`
	RelevantFlightParams FlightParams `json:"relevantFlightParams"`
	RelevantHotelParams  HotelParams  `json:"relevantHotelParams"`
}

// AirportSuggestion is a single result from the airport autocomplete endpoint
type AirportSuggestion struct {
	SkyID        string              `json:"skyId"`
	EntityID     string              `json:"entityId"`
	Presentation AirportPresentation `json:"presentation"`
	Navigation   AirportNavigation   `json:"navigation"`
}

// NearbyAirport is an airport near the requested coordinates
type NearbyAirport struct {
	Presentation AirportPresentation `json:"presentation"`
	Navigation   AirportNavigation   `json:"navigation"`
}

// CurrentAirport extends NearbyAirport with resolved identifiers
type CurrentAirport struct {
	NearbyAirport
	SkyID    string `json:"skyId"`
	EntityID string `json:"entityId"`
}

// NearbyAirportsData is the payload of the nearby-airports endpoint
type NearbyAirportsData struct {
	Current CurrentAirport  `json:"current"`
	Nearby  []NearbyAirport `json:"nearby"`
	Recent  []NearbyAirport `json:"recent"`
}
