// Package client provides the HTTP client for the local Ollama
// text-completion service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"flightdeal_backend/platform/config"
	"flightdeal_backend/platform/logger"
)

// Client is the HTTP client for the Ollama /api/generate endpoint.
type Client struct {
	url        string
	model      string
	httpClient *http.Client
	log        *logger.Logger
}

// New creates a new Ollama client.
func New(cfg config.OllamaConfig, log *logger.Logger) *Client {
	timeout := cfg.GetOllamaTimeout()
	if timeout == 0 {
		timeout = 120 * time.Second
	}

	return &Client{
		url:        cfg.GetOllamaURL(),
		model:      cfg.GetOllamaModel(),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Generate sends a non-streaming completion request and returns the
// model's reply with surrounding whitespace trimmed.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	bodyBytes, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.UpstreamError("ollama", "generate", err)
		return "", fmt.Errorf("ollama generate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		err := fmt.Errorf("ollama returned %d: %s", resp.StatusCode, string(body))
		c.log.UpstreamError("ollama", "generate", err)
		return "", err
	}

	var payload generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode generate response: %w", err)
	}

	return strings.TrimSpace(payload.Response), nil
}
