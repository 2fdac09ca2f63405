package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wanderly/travel-search-api/internal/domain"
)

// SearchHotels implements TravelSearchService.
func (s *travelSearchService) SearchHotels(ctx context.Context, query domain.HotelQuery) (*domain.HotelSearchResult, error) {
	query.SetDefaults()
	if err := query.Validate(); err != nil {
		return nil, err
	}
	fingerprint := query.Fingerprint()

	if payload, ok := s.cache.Get(ctx, fingerprint); ok {
		var hotels []domain.Hotel
		if err := json.Unmarshal(payload, &hotels); err == nil {
			retagHotels(hotels, domain.ProvenanceCached)
			return &domain.HotelSearchResult{
				Hotels: hotels,
				Source: domain.ProvenanceCached,
				Count:  len(hotels),
			}, nil
		}
		s.log.Warn().Str("fingerprint", fingerprint).Msg("Discarding undecodable cached hotel payload")
	}

	if !s.dedupe {
		return s.fetchHotels(ctx, query, fingerprint), nil
	}

	result, err, _ := s.group.Do(fingerprint, func() (interface{}, error) {
		return s.fetchHotels(ctx, query, fingerprint), nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.HotelSearchResult), nil
}

// fetchHotels runs the rate gate, live fetch, and degraded tail of the
// protocol. It never returns an error: every outcome is a tagged result.
func (s *travelSearchService) fetchHotels(ctx context.Context, query domain.HotelQuery, fingerprint string) *domain.HotelSearchResult {
	if !s.limiter.CanCall() {
		s.log.Warn().Str("fingerprint", fingerprint).Msg("Hotel search denied by call budget")
		return &domain.HotelSearchResult{
			Hotels:  []domain.Hotel{},
			Source:  domain.ProvenanceError,
			Warning: "Live hotel search is temporarily rate limited. Please try again in a moment.",
		}
	}

	s.limiter.RecordCall()
	hotels, err := s.provider.SearchHotels(ctx, query)
	if err != nil {
		s.log.Error().Err(err).Str("fingerprint", fingerprint).Msg("Upstream hotel search failed")
		return &domain.HotelSearchResult{
			Hotels:  []domain.Hotel{},
			Source:  domain.ProvenanceError,
			Warning: "Hotel search is temporarily unavailable. Please try again later.",
		}
	}

	if len(hotels) == 0 {
		return &domain.HotelSearchResult{
			Hotels: []domain.Hotel{},
			Source: domain.ProvenanceLive,
			Warning: fmt.Sprintf("No hotels found in %s for %s to %s.",
				query.CityCode, query.CheckInDate, query.CheckOutDate),
		}
	}

	if payload, err := json.Marshal(hotels); err == nil {
		s.cache.Put(ctx, fingerprint, payload, HotelCacheTTL)
	}

	return &domain.HotelSearchResult{
		Hotels: hotels,
		Source: domain.ProvenanceLive,
		Count:  len(hotels),
	}
}
