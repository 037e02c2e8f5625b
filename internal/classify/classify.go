// Package classify turns raw autocomplete result lists into display order.
// Each search domain picks its own policy; no function mutates its input.
package classify

import (
	"sort"

	"github.com/alexivanou/skytrip-api/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Per-bucket caps for the flattened airport suggest policy
const (
	maxAirports  = 8
	maxCities    = 4
	maxCountries = 2
)

// Collator returns a locale-aware string collator for the given locale id,
// falling back to English when the tag cannot be parsed.
func Collator(localeID string) *collate.Collator {
	tag, err := language.Parse(localeID)
	if err != nil {
		tag = language.English
	}
	return collate.New(tag)
}

// Airports partitions suggestions into Airport / City / Country
// buckets, truncates them to 8 / 4 / 2 and concatenates airports first.
// Relative API order is preserved inside each bucket.
func Airports(items []model.AirportSuggestion) []model.AirportSuggestion {
	var airports, cities, countries []model.AirportSuggestion
	for _, item := range items {
		switch item.Navigation.EntityType {
		case model.EntityTypeAirport:
			airports = append(airports, item)
		case model.EntityTypeCity:
			cities = append(cities, item)
		case model.EntityTypeCountry:
			countries = append(countries, item)
		}
	}

	out := make([]model.AirportSuggestion, 0, len(items))
	out = append(out, truncate(airports, maxAirports)...)
	out = append(out, truncate(cities, maxCities)...)
	out = append(out, truncate(countries, maxCountries)...)
	return out
}

// AirportSections groups suggestions into labeled sections without
// truncation, each section preserving API order.
func AirportSections(items []model.AirportSuggestion) []model.AirportSection {
	sections := []model.AirportSection{
		{Label: "Airports"},
		{Label: "Cities"},
		{Label: "Countries"},
	}
	for _, item := range items {
		switch item.Navigation.EntityType {
		case model.EntityTypeAirport:
			sections[0].Items = append(sections[0].Items, item)
		case model.EntityTypeCity:
			sections[1].Items = append(sections[1].Items, item)
		case model.EntityTypeCountry:
			sections[2].Items = append(sections[2].Items, item)
		}
	}

	out := sections[:0]
	for _, s := range sections {
		if len(s.Items) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// carClassRank orders car location classes: cities first, then airports,
// then everything else.
func carClassRank(class string) int {
	switch class {
	case model.CarClassCity:
		return 0
	case model.CarClassAirport:
		return 1
	default:
		return 2
	}
}

// CarLocations orders car rental locations by class priority
// (City before Airport before others), breaking ties alphabetically by
// entity name under the given locale's collation rules.
func CarLocations(items []model.CarLocation, localeID string) []model.CarLocation {
	col := Collator(localeID)
	out := make([]model.CarLocation, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := carClassRank(out[i].Class), carClassRank(out[j].Class)
		if ri != rj {
			return ri < rj
		}
		return col.CompareString(out[i].EntityName, out[j].EntityName) < 0
	})
	return out
}

// hotelEntityAllowed reports whether an entity type makes sense as a hotel
// destination.
func hotelEntityAllowed(entityType string) bool {
	switch entityType {
	case model.HotelEntityCity, model.HotelEntityRegion, model.HotelEntityHotel, model.HotelEntityPOI:
		return true
	default:
		return false
	}
}

// HotelDestinations filters destinations to hotel-relevant entity types
// and orders them by descending relevance score, breaking ties
// alphabetically by entity name under the given locale's collation rules.
func HotelDestinations(items []model.HotelDestination, localeID string) []model.HotelDestination {
	col := Collator(localeID)
	out := make([]model.HotelDestination, 0, len(items))
	for _, item := range items {
		if hotelEntityAllowed(item.EntityType) {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return col.CompareString(out[i].EntityName, out[j].EntityName) < 0
	})
	return out
}

func truncate(items []model.AirportSuggestion, max int) []model.AirportSuggestion {
	if len(items) > max {
		return items[:max]
	}
	return items
}
