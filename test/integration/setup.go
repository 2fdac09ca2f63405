// Package integration provides helpers and integration tests for the travel
// search system. Integration tests verify that components work together
// correctly, from the HTTP layer down through the cache and rate limiter.
package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpadapter "github.com/wanderly/travel-search-api/internal/adapter/http"
	"github.com/wanderly/travel-search-api/internal/cache"
	"github.com/wanderly/travel-search-api/internal/cache/memory"
	"github.com/wanderly/travel-search-api/internal/domain"
	"github.com/wanderly/travel-search-api/internal/infrastructure/timeutil"
	"github.com/wanderly/travel-search-api/internal/ratelimit"
	"github.com/wanderly/travel-search-api/internal/usecase"
	"github.com/wanderly/travel-search-api/test/mock"
)

// TestServer wires the full application stack over in-memory fakes.
type TestServer struct {
	Echo     *echo.Echo
	Provider *mock.Provider
	Store    *memory.Store
	Clock    *timeutil.MockClock
	Limiter  *ratelimit.Limiter
}

// NewTestServer builds a server around the given mock provider.
func NewTestServer(provider *mock.Provider, cfg *usecase.Config) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	store := memory.NewStore()
	clock := timeutil.NewMockClockFromString("2025-03-15T10:00:00Z")
	limiter := ratelimit.New(ratelimit.DefaultPerSecond, ratelimit.DefaultPerMinute, clock)
	resultCache := cache.New(store, clock, zerolog.Nop())

	service := usecase.NewTravelSearchService(provider, resultCache, limiter, zerolog.Nop(), cfg)
	handler := httpadapter.NewTravelHandler(service)
	httpadapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:     e,
		Provider: provider,
		Store:    store,
		Clock:    clock,
		Limiter:  limiter,
	}
}

// GET performs a request against the server and returns the recorder.
func (s *TestServer) GET(t *testing.T, path string, query url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path+"?"+query.Encode(), nil)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

// DecodeJSON unmarshals a response body into out.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
}

// ExhaustLimiter records calls until the per-minute budget denies everything.
func (s *TestServer) ExhaustLimiter() {
	for i := 0; i < ratelimit.DefaultPerMinute; i++ {
		s.Limiter.RecordCall()
	}
}

// SampleFlights returns a small result set for provider stubs.
func SampleFlights() []domain.Flight {
	return []domain.Flight{
		{
			ID:              "offer-1",
			Origin:          "JFK",
			Destination:     "LHR",
			OriginCity:      "New York",
			DestinationCity: "London",
			CarrierCode:     "BA",
			Price:           domain.PriceInfo{Amount: 420.50, Currency: "USD"},
			CabinClass:      "ECONOMY",
			Source:          domain.ProvenanceLive,
		},
		{
			ID:              "offer-2",
			Origin:          "JFK",
			Destination:     "LHR",
			OriginCity:      "New York",
			DestinationCity: "London",
			Stops:           1,
			CarrierCode:     "AA",
			Price:           domain.PriceInfo{Amount: 380.00, Currency: "USD"},
			CabinClass:      "ECONOMY",
			Source:          domain.ProvenanceLive,
		},
	}
}
