package model

// Locale is an IETF-style language-region identifier with its display label
type Locale struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// DefaultLocale is used until the user picks another language
var DefaultLocale = Locale{ID: "en-US", Text: "English (US)"}

// Coordinates represents a geographic position fix
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy,omitempty"`
}
