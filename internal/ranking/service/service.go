// Package service provides business logic for offer ranking: prompt
// construction and the call to the text-completion model.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"flightdeal_backend/internal/flights/transport"
	"flightdeal_backend/platform/logger"
)

// Generator produces a text completion for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service ranks normalized offers via the text-completion collaborator.
type Service struct {
	client Generator
	log    *logger.Logger
}

// New creates a new ranking service.
func New(client Generator, log *logger.Logger) *Service {
	return &Service{client: client, log: log}
}

const promptTemplate = `You are a travel assistant that selects the best flight deals from a list of candidate flights.

User preferences:
- Origin: %s
- Destination: %s
- Earliest departure: %s
- Latest return: %s
- Maximum stops allowed: %d (0 = direct only, 1 = allow 1 stop)

Here is the list of candidate flights in JSON format:

%s

Please:
1. Choose up to 3 of the best options (balance of price and total duration).
2. Output a short markdown table with columns:
   - Airline
   - Origin
   - Destination
   - Stops
   - Price (with currency)
   - Duration (hours if available)
3. Then add a brief explanation in plain text (2-4 sentences) about why you picked these.

Reply ONLY in markdown.`

// BuildPrompt serializes the offers and user preferences into a single
// instruction block for the ranking model. The offer list is embedded as
// indented JSON so the model sees a machine-readable candidate list.
func BuildPrompt(prefs transport.Preferences, offers []transport.FlightOffer) (string, error) {
	offersJSON, err := json.MarshalIndent(offers, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize offers: %w", err)
	}

	prompt := fmt.Sprintf(promptTemplate,
		prefs.Origin,
		prefs.Destination,
		prefs.StartDate,
		prefs.EndDate,
		prefs.MaxStops,
		string(offersJSON),
	)

	return strings.TrimSpace(prompt), nil
}

// Recommend builds the selection prompt and returns the model's reply
// verbatim. The reply is never parsed or validated here; interpreting it
// is the caller's concern.
func (s *Service) Recommend(ctx context.Context, prefs transport.Preferences, offers []transport.FlightOffer) (string, error) {
	prompt, err := BuildPrompt(prefs, offers)
	if err != nil {
		return "", err
	}

	reply, err := s.client.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	s.log.WithContext(ctx).Debug("ranking recommendation produced", "offers", len(offers), "reply_len", len(reply))
	return reply, nil
}
