package amadeus

// Raw response shapes for the flight-offers search. The provider document
// is deeply nested and loosely structured; only the fields the normalizer
// consumes are modeled, all optional. Records missing itineraries or
// segments are skipped downstream, never rejected.

// RawOffer is one provider offer record.
type RawOffer struct {
	Price                  Price       `json:"price"`
	Itineraries            []Itinerary `json:"itineraries"`
	ValidatingAirlineCodes []string    `json:"validatingAirlineCodes"`
}

// Itinerary is one directional leg composed of ordered segments.
type Itinerary struct {
	// Duration is an ISO-8601 style token such as "PT10H30M".
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

// Segment is a single flight leg.
type Segment struct {
	CarrierCode string   `json:"carrierCode"`
	Departure   Endpoint `json:"departure"`
	Arrival     Endpoint `json:"arrival"`
}

// Endpoint is a departure or arrival point with its timestamp.
type Endpoint struct {
	IATACode string `json:"iataCode"`
	At       string `json:"at"`
}

// Price is the offer's price block. GrandTotal arrives as a decimal
// string from the provider.
type Price struct {
	GrandTotal string `json:"grandTotal"`
	Currency   string `json:"currency"`
}
