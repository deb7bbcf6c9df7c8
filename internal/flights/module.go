// Package flights provides the flight-search bounded context module.
package flights

import (
	"flightdeal_backend/internal/flights/amadeus"
	"flightdeal_backend/internal/flights/handler"
	"flightdeal_backend/internal/flights/service"
	apphttp "flightdeal_backend/internal/http"
	"flightdeal_backend/internal/ranking"
	"flightdeal_backend/platform/config"
	"flightdeal_backend/platform/logger"
	"flightdeal_backend/platform/validator"
)

type Module struct {
	handler *handler.Handler
}

// NewModule wires the Amadeus client, search service, and HTTP handler.
// rec may be nil when the ranking module is disabled.
func NewModule(cfg config.AmadeusConfig, log *logger.Logger, val *validator.Validator, rec ranking.Recommender) *Module {
	client := amadeus.NewClient(cfg, log)
	svc := service.New(client, log)
	h := handler.New(svc, rec, val, log)

	return &Module{handler: h}
}

func (m *Module) Name() string {
	return "flights"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/flights")
	m.handler.RegisterRoutes(group)
}

var _ apphttp.Module = (*Module)(nil)
