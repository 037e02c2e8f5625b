package model

// FlightSearchParams holds the parameters for a flight search request.
// Validation tags are enforced at the service boundary.
type FlightSearchParams struct {
	OriginSkyID         string `json:"originSkyId" validate:"required"`
	DestinationSkyID    string `json:"destinationSkyId" validate:"required"`
	OriginEntityID      string `json:"originEntityId" validate:"required"`
	DestinationEntityID string `json:"destinationEntityId" validate:"required"`
	Date                string `json:"date" validate:"required,datetime=2006-01-02"`
	ReturnDate          string `json:"returnDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CabinClass          string `json:"cabinClass,omitempty" validate:"omitempty,oneof=economy premium_economy business first"`
	Adults              int    `json:"adults" validate:"required,min=1,max=9"`
	Children            int    `json:"children,omitempty" validate:"omitempty,min=0,max=9"`
	Infants             int    `json:"infants,omitempty" validate:"omitempty,min=0,max=9"`
	SortBy              string `json:"sortBy,omitempty" validate:"omitempty,oneof=best cheapest fastest"`
	Currency            string `json:"currency,omitempty"`
	Market              string `json:"market,omitempty"`
	CountryCode         string `json:"countryCode,omitempty"`
}

// FlightLegRef identifies one leg of an itinerary for the details endpoint
type FlightLegRef struct {
	Origin      string `json:"origin" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
}

// FlightDetailsParams holds the parameters for a flight details request
type FlightDetailsParams struct {
	Legs        []FlightLegRef `json:"legs" validate:"required,min=1,dive"`
	Adults      int            `json:"adults" validate:"required,min=1,max=9"`
	Currency    string         `json:"currency,omitempty"`
	Locale      string         `json:"locale,omitempty"`
	Market      string         `json:"market,omitempty"`
	CabinClass  string         `json:"cabinClass,omitempty" validate:"omitempty,oneof=economy premium_economy business first"`
	CountryCode string         `json:"countryCode,omitempty"`
}

// FlightPrice is the priced total of an itinerary
type FlightPrice struct {
	Raw       float64 `json:"raw"`
	Formatted string  `json:"formatted"`
}

// FlightPlace is an endpoint of a leg
type FlightPlace struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DisplayCode   string `json:"displayCode"`
	City          string `json:"city"`
	IsHighlighted bool   `json:"isHighlighted"`
}

// FlightCarrier describes an airline
type FlightCarrier struct {
	ID          int    `json:"id"`
	LogoURL     string `json:"logoUrl"`
	Name        string `json:"name"`
	AlternateID string `json:"alternateId,omitempty"`
}

// FlightCarriers groups the carriers operating a leg
type FlightCarriers struct {
	Marketing     []FlightCarrier `json:"marketing"`
	OperationType string          `json:"operationType"`
}

// FlightSegment is one flown segment within a leg
type FlightSegment struct {
	ID                string        `json:"id"`
	Departure         string        `json:"departure"`
	Arrival           string        `json:"arrival"`
	DurationInMinutes int           `json:"durationInMinutes"`
	FlightNumber      string        `json:"flightNumber"`
	MarketingCarrier  FlightCarrier `json:"marketingCarrier"`
	OperatingCarrier  FlightCarrier `json:"operatingCarrier"`
}

// FlightLeg is one direction of travel within an itinerary
type FlightLeg struct {
	ID                string          `json:"id"`
	Origin            FlightPlace     `json:"origin"`
	Destination       FlightPlace     `json:"destination"`
	DurationInMinutes int             `json:"durationInMinutes"`
	StopCount         int             `json:"stopCount"`
	Departure         string          `json:"departure"`
	Arrival           string          `json:"arrival"`
	TimeDeltaInDays   int             `json:"timeDeltaInDays"`
	Carriers          FlightCarriers  `json:"carriers"`
	Segments          []FlightSegment `json:"segments"`
}

// FarePolicy describes the change/cancellation rules of a fare
type FarePolicy struct {
	IsChangeAllowed       bool `json:"isChangeAllowed"`
	IsPartiallyChangeable bool `json:"isPartiallyChangeable"`
	IsCancellationAllowed bool `json:"isCancellationAllowed"`
	IsPartiallyRefundable bool `json:"isPartiallyRefundable"`
}

// FlightItinerary is one bookable flight option
type FlightItinerary struct {
	ID                  string      `json:"id"`
	Price               FlightPrice `json:"price"`
	Legs                []FlightLeg `json:"legs"`
	IsSelfTransfer      bool        `json:"isSelfTransfer"`
	FarePolicy          FarePolicy  `json:"farePolicy"`
	Tags                []string    `json:"tags,omitempty"`
	HasFlexibleOptions  bool        `json:"hasFlexibleOptions"`
	Score               float64     `json:"score"`
}

// FlightSearchContext reports upstream polling progress
type FlightSearchContext struct {
	Status       string `json:"status"` // "incomplete" or "complete"
	TotalResults int    `json:"totalResults"`
}

// FlightSearchData is the payload of the flight search endpoint
type FlightSearchData struct {
	Context     FlightSearchContext `json:"context"`
	Itineraries []FlightItinerary   `json:"itineraries"`
	SessionID   string              `json:"sessionId,omitempty"`
}

// BookingAgent is one agent offering an itinerary in the details response
type BookingAgent struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	IsCarrier bool    `json:"isCarrier"`
	URL       string  `json:"url"`
	Price     float64 `json:"price"`
}

// PricingOption groups agents quoting the same total
type PricingOption struct {
	Agents     []BookingAgent `json:"agents"`
	TotalPrice float64        `json:"totalPrice"`
}

// FlightDetailsItinerary is the detailed view of one itinerary
type FlightDetailsItinerary struct {
	Legs             []FlightLeg     `json:"legs"`
	PricingOptions   []PricingOption `json:"pricingOptions"`
	DestinationImage string          `json:"destinationImage,omitempty"`
}

// FlightDetailsData is the payload of the flight details endpoint
type FlightDetailsData struct {
	Itinerary        FlightDetailsItinerary `json:"itinerary"`
	PollingCompleted bool                   `json:"pollingCompleted"`
}
