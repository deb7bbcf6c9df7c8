// Package service provides business logic for the flight deal search
// pipeline: location resolution, offer search, and normalization.
package service

import (
	"context"
	"strconv"

	"flightdeal_backend/internal/flights/amadeus"
	"flightdeal_backend/internal/flights/transport"
	"flightdeal_backend/platform/logger"
)

// fallbackAirline is used when an offer carries neither a validating
// airline nor a segment carrier code.
const fallbackAirline = "N/A"

// OfferSearcher issues the upstream flight-offer search.
type OfferSearcher interface {
	Search(ctx context.Context, criteria amadeus.Criteria) ([]amadeus.RawOffer, error)
}

// Service handles flight deal searches.
type Service struct {
	client OfferSearcher
	log    *logger.Logger
}

// New creates a new flight search service.
func New(client OfferSearcher, log *logger.Logger) *Service {
	return &Service{client: client, log: log}
}

// Search resolves the request's locations, runs the upstream offer search,
// and normalizes the result. Offers preserve provider response order; an
// empty slice means "no results", which is not an error.
func (s *Service) Search(ctx context.Context, req transport.SearchRequest) ([]transport.FlightOffer, error) {
	criteria := amadeus.Criteria{
		Origin:        ResolveIATA(req.Origin),
		Destination:   ResolveIATA(req.Destination),
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		MaxStops:      req.MaxStops,
	}

	rawOffers, err := s.client.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}

	offers := Normalize(rawOffers, req.MaxStops)
	s.log.WithContext(ctx).SearchEvent(criteria.Origin, criteria.Destination, req.MaxStops, len(offers))

	return offers, nil
}

// Normalize maps raw provider records to canonical offers and enforces the
// stop-count constraint. Only the first itinerary (the outbound leg) is
// considered. Records with no itineraries or no segments are skipped.
// Filtering removes records but never reorders the remainder.
func Normalize(rawOffers []amadeus.RawOffer, maxStops int) []transport.FlightOffer {
	offers := make([]transport.FlightOffer, 0, len(rawOffers))

	for _, raw := range rawOffers {
		if len(raw.Itineraries) == 0 {
			continue
		}
		itinerary := raw.Itineraries[0]
		if len(itinerary.Segments) == 0 {
			continue
		}

		firstSeg := itinerary.Segments[0]
		lastSeg := itinerary.Segments[len(itinerary.Segments)-1]

		stops := len(itinerary.Segments) - 1
		if maxStops == 0 && stops > 0 {
			continue
		}
		if maxStops == 1 && stops > 1 {
			continue
		}

		airline := fallbackAirline
		if len(raw.ValidatingAirlineCodes) > 0 {
			airline = raw.ValidatingAirlineCodes[0]
		} else if firstSeg.CarrierCode != "" {
			airline = firstSeg.CarrierCode
		}

		offer := transport.FlightOffer{
			Airline:       airline,
			Origin:        firstSeg.Departure.IATACode,
			Destination:   lastSeg.Arrival.IATACode,
			DepartureTime: firstSeg.Departure.At,
			ArrivalTime:   lastSeg.Arrival.At,
			Stops:         stops,
			Price:         parsePrice(raw.Price.GrandTotal),
			Currency:      raw.Price.Currency,
		}
		if offer.Currency == "" {
			offer.Currency = amadeus.DefaultCurrency
		}
		if hours, ok := ParseDurationHours(itinerary.Duration); ok {
			offer.DurationHours = &hours
		}

		offers = append(offers, offer)
	}

	return offers
}

// parsePrice reads the provider's decimal price string, defaulting to 0
// when absent or malformed.
func parsePrice(grandTotal string) float64 {
	if grandTotal == "" {
		return 0
	}
	price, err := strconv.ParseFloat(grandTotal, 64)
	if err != nil {
		return 0
	}
	return price
}
