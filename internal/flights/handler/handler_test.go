package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"flightdeal_backend/internal/flights/amadeus"
	"flightdeal_backend/internal/flights/service"
	"flightdeal_backend/internal/flights/transport"
	"flightdeal_backend/platform/apperr"
	"flightdeal_backend/platform/logger"
	"flightdeal_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

type fakeSearcher struct {
	offers []amadeus.RawOffer
	err    error
}

func (f *fakeSearcher) Search(_ context.Context, _ amadeus.Criteria) ([]amadeus.RawOffer, error) {
	return f.offers, f.err
}

type fakeRecommender struct {
	reply string
	err   error
	calls int
}

func (f *fakeRecommender) Recommend(_ context.Context, _ transport.Preferences, _ []transport.FlightOffer) (string, error) {
	f.calls++
	return f.reply, f.err
}

func directOffer() amadeus.RawOffer {
	return amadeus.RawOffer{
		ValidatingAirlineCodes: []string{"QF"},
		Price:                  amadeus.Price{GrandTotal: "320.00", Currency: "AUD"},
		Itineraries: []amadeus.Itinerary{{
			Duration: "PT3H",
			Segments: []amadeus.Segment{{
				CarrierCode: "QF",
				Departure:   amadeus.Endpoint{IATACode: "SYD", At: "2026-09-01T09:00:00"},
				Arrival:     amadeus.Endpoint{IATACode: "MEL", At: "2026-09-01T12:00:00"},
			}},
		}},
	}
}

func searchBody() []byte {
	body, _ := json.Marshal(transport.SearchRequest{
		Origin:        "Sydney (SYD)",
		Destination:   "Melbourne (MEL)",
		DepartureDate: "2026-09-01",
		MaxStops:      0,
	})
	return body
}

func newTestEngine(searcher *fakeSearcher, rec *fakeRecommender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.New("development")
	svc := service.New(searcher, log)

	var h *Handler
	if rec == nil {
		h = New(svc, nil, validator.New(), log)
	} else {
		h = New(svc, rec, validator.New(), log)
	}

	engine := gin.New()
	h.RegisterRoutes(engine.Group("/api/v1/flights"))
	return engine
}

func doSearch(t *testing.T, engine *gin.Engine, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/flights/search", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) transport.SearchResponse {
	t.Helper()
	var resp transport.SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v (%s)", err, w.Body.String())
	}
	return resp
}

func TestSearch_RankingFailureKeepsOffers(t *testing.T) {
	rec := &fakeRecommender{err: errors.New("connection refused")}
	engine := newTestEngine(&fakeSearcher{offers: []amadeus.RawOffer{directOffer()}}, rec)

	w := doSearch(t, engine, searchBody())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	resp := decodeResponse(t, w)
	if resp.Total != 1 || len(resp.Offers) != 1 {
		t.Fatalf("offers discarded on ranking failure: total=%d", resp.Total)
	}
	if resp.Recommendation != "" {
		t.Fatalf("expected empty recommendation, got %q", resp.Recommendation)
	}
	if rec.calls != 1 {
		t.Fatalf("expected 1 recommend call, got %d", rec.calls)
	}
}

func TestSearch_NilRecommenderStillReturnsOffers(t *testing.T) {
	engine := newTestEngine(&fakeSearcher{offers: []amadeus.RawOffer{directOffer()}}, nil)

	w := doSearch(t, engine, searchBody())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	resp := decodeResponse(t, w)
	if len(resp.Offers) != 1 || resp.Offers[0].Airline != "QF" {
		t.Fatalf("expected 1 QF offer, got %+v", resp.Offers)
	}
	if resp.Recommendation != "" {
		t.Fatalf("expected no recommendation with ranking disabled, got %q", resp.Recommendation)
	}
}

func TestSearch_RankingReplyPassedThrough(t *testing.T) {
	rec := &fakeRecommender{reply: "| Airline | Price |\n\nDirect and cheap."}
	engine := newTestEngine(&fakeSearcher{offers: []amadeus.RawOffer{directOffer()}}, rec)

	w := doSearch(t, engine, searchBody())
	resp := decodeResponse(t, w)
	if resp.Recommendation != rec.reply {
		t.Fatalf("reply not passed through verbatim: %q", resp.Recommendation)
	}
}

func TestSearch_EmptyResultSkipsRanking(t *testing.T) {
	rec := &fakeRecommender{reply: "should not be called"}
	engine := newTestEngine(&fakeSearcher{offers: []amadeus.RawOffer{}}, rec)

	w := doSearch(t, engine, searchBody())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for empty result, got %d", w.Code)
	}

	resp := decodeResponse(t, w)
	if resp.Total != 0 {
		t.Fatalf("expected no results, got %d", resp.Total)
	}
	if rec.calls != 0 {
		t.Fatalf("ranking must not run with zero offers, got %d calls", rec.calls)
	}
}

func TestSearch_ValidationFailure(t *testing.T) {
	engine := newTestEngine(&fakeSearcher{}, nil)

	body, _ := json.Marshal(transport.SearchRequest{
		Origin:        "Sydney (SYD)",
		Destination:   "Melbourne (MEL)",
		DepartureDate: "not-a-date",
		MaxStops:      0,
	})

	w := doSearch(t, engine, body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid date, got %d", w.Code)
	}
}

func TestSearch_UpstreamErrorMapped(t *testing.T) {
	searcher := &fakeSearcher{err: apperr.UpstreamSearch("flight offer search failed", errors.New("503 from upstream"))}
	engine := newTestEngine(searcher, nil)

	w := doSearch(t, engine, searchBody())
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 for upstream failure, got %d (%s)", w.Code, w.Body.String())
	}
}
