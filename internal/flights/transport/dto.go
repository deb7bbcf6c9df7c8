// Package transport defines the DTOs exposed by the flights bounded context.
package transport

// SearchRequest is the payload for a flight deal search.
//
// Origin and Destination accept either a bare IATA code ("SYD") or the
// "City (CODE)" convention ("Sydney (SYD)"); resolution happens in the
// service layer. Dates are calendar dates in ISO form.
type SearchRequest struct {
	Origin        string `json:"origin" validate:"required,min=2,max=100"`
	Destination   string `json:"destination" validate:"required,min=2,max=100"`
	DepartureDate string `json:"departureDate" validate:"required,datetime=2006-01-02"`
	ReturnDate    string `json:"returnDate" validate:"omitempty,datetime=2006-01-02"`
	MaxStops      int    `json:"maxStops" validate:"oneof=0 1"`
}

// FlightOffer is the canonical, normalized offer shape produced by the
// search pipeline. DurationHours is nil when the provider's duration
// string could not be parsed; this is distinct from a zero duration.
type FlightOffer struct {
	Airline       string   `json:"airline"`
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	DepartureTime string   `json:"departure_time"`
	ArrivalTime   string   `json:"arrival_time"`
	Stops         int      `json:"stops"`
	Price         float64  `json:"price"`
	Currency      string   `json:"currency"`
	DurationHours *float64 `json:"duration_hours,omitempty"`
}

// Preferences carries the user's search intent into downstream ranking.
// Origin and Destination keep the user's original free-form text, not the
// resolved codes, so the ranking model sees what the user typed.
type Preferences struct {
	Origin      string
	Destination string
	StartDate   string
	EndDate     string
	MaxStops    int
}

// SearchResponse is the result of a flight deal search. Offers preserve
// the provider's response order. Recommendation carries the ranking
// model's markdown reply verbatim and is empty when ranking is disabled
// or failed.
type SearchResponse struct {
	Offers         []FlightOffer `json:"offers"`
	Total          int           `json:"total"`
	Recommendation string        `json:"recommendation,omitempty"`
}
