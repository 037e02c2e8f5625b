package model

import "encoding/json"

// Entity types returned by the hotel destination endpoint
const (
	HotelEntityCity   = "city"
	HotelEntityRegion = "region"
	HotelEntityHotel  = "hotel"
	HotelEntityPOI    = "poi"
)

// HotelDestination is a single result from the hotel destination autocomplete endpoint
type HotelDestination struct {
	Hierarchy   string          `json:"hierarchy"`
	Location    string          `json:"location"` // "latitude, longitude"
	Score       float64         `json:"score"`
	EntityName  string          `json:"entityName"`
	EntityID    string          `json:"entityId"`
	EntityType  string          `json:"entityType"`
	SuggestItem string          `json:"suggestItem"` // HTML formatted with {strong} tags
	Class       string          `json:"class"`
	POIs        json.RawMessage `json:"pois"`
}
