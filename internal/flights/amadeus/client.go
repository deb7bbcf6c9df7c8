// Package amadeus provides the HTTP client for the Amadeus flight-offer API.
//
// Two endpoints are consumed: the OAuth2 client-credentials token exchange
// and the flight-offers search. Raw response shapes are modeled with
// optional fields; records that do not match the expected shape are left
// for the normalizer to skip rather than treated as structural failures.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"flightdeal_backend/platform/apperr"
	"flightdeal_backend/platform/config"
	"flightdeal_backend/platform/logger"
)

const (
	tokenPath  = "/v1/security/oauth2/token"
	searchPath = "/v2/shopping/flight-offers"

	// DefaultCurrency is the fixed reporting currency requested from the
	// provider and assumed when a price block omits its currency.
	DefaultCurrency = "AUD"

	// maxResults caps the number of offers requested per search.
	maxResults = 20
)

// Criteria describes one offer search. ReturnDate may be empty for a
// one-way trip; a ReturnDate equal to DepartureDate is treated as absent.
type Criteria struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	MaxStops      int
}

// Client is the HTTP client for the Amadeus API.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	log          *logger.Logger

	// Token caching is opt-in via AMADEUS_TOKEN_TTL; with a zero TTL every
	// search fetches a fresh token, which is the baseline contract.
	tokenTTL    time.Duration
	tokenMu     sync.Mutex
	cachedToken string
	tokenExpiry time.Time
}

// NewClient creates a new Amadeus API client.
func NewClient(cfg config.AmadeusConfig, log *logger.Logger) *Client {
	timeout := cfg.GetAmadeusTimeout()
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:      strings.TrimRight(cfg.GetAmadeusBaseURL(), "/"),
		clientID:     cfg.GetAmadeusClientID(),
		clientSecret: cfg.GetAmadeusClientSecret(),
		httpClient:   &http.Client{Timeout: timeout},
		log:          log,
		tokenTTL:     cfg.GetAmadeusTokenTTL(),
	}
}

// AccessToken exchanges the configured client credentials for a bearer
// token. It fails with a configuration error when either credential is
// unset, and with an upstream auth error when the exchange fails at the
// transport level, returns a non-2xx status, or returns a body without an
// access_token field. No retry is performed.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return "", apperr.Configuration("AMADEUS_CLIENT_ID or AMADEUS_CLIENT_SECRET not set")
	}

	if c.tokenTTL > 0 {
		c.tokenMu.Lock()
		if c.cachedToken != "" && time.Now().Before(c.tokenExpiry) {
			token := c.cachedToken
			c.tokenMu.Unlock()
			return token, nil
		}
		c.tokenMu.Unlock()
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", apperr.UpstreamAuth("failed to create token request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.UpstreamError("amadeus", "token", err)
		return "", apperr.UpstreamAuth("amadeus token exchange failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		err := fmt.Errorf("amadeus token endpoint returned %d: %s", resp.StatusCode, string(body))
		c.log.UpstreamError("amadeus", "token", err)
		return "", apperr.UpstreamAuth("amadeus token exchange failed", err)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", apperr.UpstreamAuth("failed to decode token response", err)
	}
	if payload.AccessToken == "" {
		return "", apperr.UpstreamAuth("no access_token in response", nil)
	}

	if c.tokenTTL > 0 {
		c.tokenMu.Lock()
		c.cachedToken = payload.AccessToken
		c.tokenExpiry = time.Now().Add(c.tokenTTL)
		c.tokenMu.Unlock()
	}

	return payload.AccessToken, nil
}

// Search obtains an access token and issues an authenticated offer search.
// It fails with an upstream search error on transport failure or non-2xx
// response; a successful response with zero offers yields an empty slice.
func (c *Client) Search(ctx context.Context, criteria Criteria) ([]RawOffer, error) {
	token, err := c.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("originLocationCode", criteria.Origin)
	params.Set("destinationLocationCode", criteria.Destination)
	params.Set("departureDate", criteria.DepartureDate)
	params.Set("adults", "1")
	params.Set("currencyCode", DefaultCurrency)
	params.Set("max", fmt.Sprintf("%d", maxResults))

	// A return date equal to the departure date means a one-way trip.
	if criteria.ReturnDate != "" && criteria.ReturnDate != criteria.DepartureDate {
		params.Set("returnDate", criteria.ReturnDate)
	}

	// Provider-level filter hint; the normalizer re-enforces the constraint.
	if criteria.MaxStops == 0 {
		params.Set("nonStop", "true")
	}

	reqURL := c.baseURL + searchPath + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperr.UpstreamSearch("failed to create search request", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.UpstreamError("amadeus", "flight-offers", err)
		return nil, apperr.UpstreamSearch("amadeus flight offers search failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		err := fmt.Errorf("amadeus search endpoint returned %d: %s", resp.StatusCode, string(body))
		c.log.UpstreamError("amadeus", "flight-offers", err)
		return nil, apperr.UpstreamSearch("amadeus flight offers search failed", err)
	}

	var payload struct {
		Data []RawOffer `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperr.UpstreamSearch("failed to decode search response", err)
	}

	if payload.Data == nil {
		return []RawOffer{}, nil
	}
	return payload.Data, nil
}
