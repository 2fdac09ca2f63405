package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/wanderly/travel-search-api/internal/domain"
)

func TestSearchLocationsValidationError(t *testing.T) {
	h := newHarness(t, nil)

	_, err := h.service.SearchLocations(context.Background(), domain.LocationQuery{Keyword: "x"})

	assert.ErrorIs(t, err, domain.ErrInvalidQuery)
}

func TestSearchLocationsLiveThenCached(t *testing.T) {
	h := newHarness(t, nil)
	live := []domain.Location{
		{Code: "LON", Name: "London", CityName: "London", CountryName: "United Kingdom", Type: domain.LocationTypeCity},
		{Code: "LHR", Name: "Heathrow", CityName: "London", CountryName: "United Kingdom", Type: domain.LocationTypeAirport},
	}
	h.provider.EXPECT().
		SearchLocations(gomock.Any(), gomock.Any()).
		Return(live, nil).
		Times(1)

	first, err := h.service.SearchLocations(context.Background(), domain.LocationQuery{Keyword: "Lond"})
	require.NoError(t, err)
	assert.Equal(t, domain.ProvenanceLive, first.Source)
	assert.Len(t, first.Locations, 2)

	// Location lookups are cached for a day.
	h.clock.AdvanceHours(12)
	second, err := h.service.SearchLocations(context.Background(), domain.LocationQuery{Keyword: "lond"})
	require.NoError(t, err)
	assert.Equal(t, domain.ProvenanceCached, second.Source)
	assert.Len(t, second.Locations, 2)
}

func TestSearchLocationsFallsBackToReferenceData(t *testing.T) {
	h := newHarness(t, nil)
	h.provider.EXPECT().
		SearchLocations(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrUpstreamUnavailable).
		Times(1)

	result, err := h.service.SearchLocations(context.Background(), domain.LocationQuery{Keyword: "sao"})

	require.NoError(t, err)
	assert.Equal(t, domain.ProvenanceFallback, result.Source)

	codes := make([]string, 0, len(result.Locations))
	for _, loc := range result.Locations {
		codes = append(codes, loc.Code)
	}
	assert.Contains(t, codes, "GRU")
	assert.Contains(t, codes, "SAO")
}

func TestSearchLocationsRateLimitedUsesFallback(t *testing.T) {
	h := newHarness(t, nil)
	h.exhaustLimiter()

	result, err := h.service.SearchLocations(context.Background(), domain.LocationQuery{Keyword: "paris"})

	require.NoError(t, err)
	assert.Equal(t, domain.ProvenanceFallback, result.Source)
	require.NotEmpty(t, result.Locations)
	codes := make([]string, 0, len(result.Locations))
	for _, loc := range result.Locations {
		codes = append(codes, loc.Code)
	}
	assert.Contains(t, codes, "PAR")
}

func TestSearchLocationsFallbackMayBeEmpty(t *testing.T) {
	h := newHarness(t, nil)
	h.exhaustLimiter()

	result, err := h.service.SearchLocations(context.Background(), domain.LocationQuery{Keyword: "zzzz"})

	require.NoError(t, err)
	assert.Equal(t, domain.ProvenanceFallback, result.Source)
	assert.Empty(t, result.Locations)
}
