// Package ranking provides the offer-ranking bounded context module.
// This file defines the module that encapsulates all ranking setup.
package ranking

import (
	"flightdeal_backend/internal/ranking/client"
	"flightdeal_backend/internal/ranking/service"
	"flightdeal_backend/platform/config"
	"flightdeal_backend/platform/logger"
)

// Module is the offer-ranking bounded context module.
type Module struct {
	service *service.Service
	enabled bool
}

// NewModule creates and initializes the ranking module.
// Returns a disabled module if the text-completion service is not
// configured (graceful degradation: searches still work, offers are
// returned without a recommendation).
func NewModule(cfg config.OllamaConfig, log *logger.Logger) *Module {
	if !cfg.IsOllamaEnabled() {
		log.Info("ranking module disabled: OLLAMA_URL not configured")
		return &Module{enabled: false}
	}

	ollamaClient := client.New(cfg, log)
	svc := service.New(ollamaClient, log)

	log.Info("ranking module initialized", "model", cfg.GetOllamaModel())

	return &Module{
		service: svc,
		enabled: true,
	}
}

// Recommender returns the ranking service for external use.
// Returns nil if the module is disabled.
func (m *Module) Recommender() Recommender {
	if m == nil || !m.enabled {
		return nil
	}
	return m.service
}

// IsEnabled returns true if the ranking module is configured and enabled.
func (m *Module) IsEnabled() bool {
	return m != nil && m.enabled
}
