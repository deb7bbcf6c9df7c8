// Package ranking provides the offer-ranking bounded context.
// This file defines the public interfaces exposed to other domains.
package ranking

import (
	"context"

	"flightdeal_backend/internal/flights/transport"
)

// Recommender selects and explains the best offers from a candidate list.
// Other domains should depend on this interface, not the concrete
// implementation. The returned text is the model's reply, passed through
// unmodified.
type Recommender interface {
	Recommend(ctx context.Context, prefs transport.Preferences, offers []transport.FlightOffer) (string, error)
}
