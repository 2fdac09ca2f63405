package usecase

import (
	"context"
	"encoding/json"

	"github.com/wanderly/travel-search-api/internal/domain"
	"github.com/wanderly/travel-search-api/internal/refdata"
)

// SearchLocations implements TravelSearchService.
//
// Locations are the one query kind with a real fallback tier: when the live
// API cannot be used, the bundled reference table is filtered by substring
// match so autocomplete keeps working offline.
func (s *travelSearchService) SearchLocations(ctx context.Context, query domain.LocationQuery) (*domain.LocationSearchResult, error) {
	query.SetDefaults()
	if err := query.Validate(); err != nil {
		return nil, err
	}
	fingerprint := query.Fingerprint()

	if payload, ok := s.cache.Get(ctx, fingerprint); ok {
		var locations []domain.Location
		if err := json.Unmarshal(payload, &locations); err == nil {
			return &domain.LocationSearchResult{
				Locations: locations,
				Source:    domain.ProvenanceCached,
			}, nil
		}
		s.log.Warn().Str("fingerprint", fingerprint).Msg("Discarding undecodable cached location payload")
	}

	if !s.dedupe {
		return s.fetchLocations(ctx, query, fingerprint), nil
	}

	result, err, _ := s.group.Do(fingerprint, func() (interface{}, error) {
		return s.fetchLocations(ctx, query, fingerprint), nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.LocationSearchResult), nil
}

// fetchLocations runs the rate gate and live fetch, degrading to the static
// reference table.
func (s *travelSearchService) fetchLocations(ctx context.Context, query domain.LocationQuery, fingerprint string) *domain.LocationSearchResult {
	if !s.limiter.CanCall() {
		s.log.Warn().Str("fingerprint", fingerprint).Msg("Location search denied by call budget")
		return s.fallbackLocations(query)
	}

	s.limiter.RecordCall()
	locations, err := s.provider.SearchLocations(ctx, query)
	if err != nil {
		s.log.Error().Err(err).Str("fingerprint", fingerprint).Msg("Upstream location search failed")
		return s.fallbackLocations(query)
	}

	if len(locations) == 0 {
		return &domain.LocationSearchResult{
			Locations: []domain.Location{},
			Source:    domain.ProvenanceLive,
		}
	}

	if payload, err := json.Marshal(locations); err == nil {
		s.cache.Put(ctx, fingerprint, payload, LocationCacheTTL)
	}

	return &domain.LocationSearchResult{
		Locations: locations,
		Source:    domain.ProvenanceLive,
	}
}

// fallbackLocations filters the bundled reference table.
func (s *travelSearchService) fallbackLocations(query domain.LocationQuery) *domain.LocationSearchResult {
	locations := refdata.Search(query.Keyword)
	if locations == nil {
		locations = []domain.Location{}
	}
	return &domain.LocationSearchResult{
		Locations: locations,
		Source:    domain.ProvenanceFallback,
	}
}
