package handler

import (
	"net/http"

	"flightdeal_backend/internal/flights/service"
	"flightdeal_backend/internal/flights/transport"
	"flightdeal_backend/internal/ranking"
	"flightdeal_backend/platform/httpkit"
	"flightdeal_backend/platform/logger"
	"flightdeal_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

type Handler struct {
	svc *service.Service
	rec ranking.Recommender
	val *validator.Validator
	log *logger.Logger
}

// New creates the flights handler. rec may be nil when ranking is
// disabled; searches then return offers without a recommendation.
func New(svc *service.Service, rec ranking.Recommender, val *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{svc: svc, rec: rec, val: val, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/search", h.Search)
}

// Search runs the full pipeline: resolve locations, search offers,
// normalize, then ask the ranking model to pick the best deals. A ranking
// failure does not discard search results.
func (h *Handler) Search(c *gin.Context) {
	var req transport.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	offers, err := h.svc.Search(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	resp := transport.SearchResponse{
		Offers: offers,
		Total:  len(offers),
	}

	if h.rec != nil && len(offers) > 0 {
		prefs := transport.Preferences{
			Origin:      req.Origin,
			Destination: req.Destination,
			StartDate:   req.DepartureDate,
			EndDate:     req.ReturnDate,
			MaxStops:    req.MaxStops,
		}
		recommendation, err := h.rec.Recommend(c.Request.Context(), prefs, offers)
		if err != nil {
			h.log.WithContext(c.Request.Context()).Error("ranking recommendation failed", "error", err)
		} else {
			resp.Recommendation = recommendation
		}
	}

	httpkit.OK(c, resp)
}
