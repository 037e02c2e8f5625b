package model

// Classes returned by the car location endpoint
const (
	CarClassCity    = "City"
	CarClassAirport = "Airport"
	CarClassRegion  = "Region"
)

// CarHighlight carries the matched-substring markup for a car location result
type CarHighlight struct {
	EntityName string `json:"entity_name"`
	Hierarchy  string `json:"hierarchy"`
}

// CarLocation is a single result from the car rental location autocomplete endpoint
type CarLocation struct {
	Hierarchy  string       `json:"hierarchy"`
	Location   string       `json:"location"` // "latitude, longitude"
	EntityName string       `json:"entityName"`
	Highlight  CarHighlight `json:"highlight"`
	EntityID   string       `json:"entityId"`
	Class      string       `json:"class"`
}
