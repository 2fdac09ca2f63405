package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wanderly/travel-search-api/internal/domain"
)

// InspireDestinations implements TravelSearchService.
func (s *travelSearchService) InspireDestinations(ctx context.Context, query domain.InspirationQuery) (*domain.InspirationResult, error) {
	query.SetDefaults()
	if err := query.Validate(); err != nil {
		return nil, err
	}
	fingerprint := query.Fingerprint()

	if payload, ok := s.cache.Get(ctx, fingerprint); ok {
		var destinations []domain.Inspiration
		if err := json.Unmarshal(payload, &destinations); err == nil {
			retagInspirations(destinations, domain.ProvenanceCached)
			return &domain.InspirationResult{
				Destinations: destinations,
				Source:       domain.ProvenanceCached,
			}, nil
		}
		s.log.Warn().Str("fingerprint", fingerprint).Msg("Discarding undecodable cached inspiration payload")
	}

	if !s.dedupe {
		return s.fetchInspirations(ctx, query, fingerprint), nil
	}

	result, err, _ := s.group.Do(fingerprint, func() (interface{}, error) {
		return s.fetchInspirations(ctx, query, fingerprint), nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.InspirationResult), nil
}

// fetchInspirations runs the rate gate, live fetch, and degraded tail.
func (s *travelSearchService) fetchInspirations(ctx context.Context, query domain.InspirationQuery, fingerprint string) *domain.InspirationResult {
	if !s.limiter.CanCall() {
		s.log.Warn().Str("fingerprint", fingerprint).Msg("Inspiration search denied by call budget")
		return &domain.InspirationResult{
			Destinations: []domain.Inspiration{},
			Source:       domain.ProvenanceError,
			Message:      "Destination suggestions are temporarily rate limited. Please try again in a moment.",
		}
	}

	s.limiter.RecordCall()
	destinations, err := s.provider.InspireDestinations(ctx, query)
	if err != nil {
		s.log.Error().Err(err).Str("fingerprint", fingerprint).Msg("Upstream inspiration search failed")
		return &domain.InspirationResult{
			Destinations: []domain.Inspiration{},
			Source:       domain.ProvenanceError,
			Message:      "Destination suggestions are temporarily unavailable. Please try again later.",
		}
	}

	if len(destinations) == 0 {
		return &domain.InspirationResult{
			Destinations: []domain.Inspiration{},
			Source:       domain.ProvenanceLive,
			Message:      fmt.Sprintf("No destination deals found from %s right now.", query.Origin),
		}
	}

	if payload, err := json.Marshal(destinations); err == nil {
		s.cache.Put(ctx, fingerprint, payload, InspirationCacheTTL)
	}

	return &domain.InspirationResult{
		Destinations: destinations,
		Source:       domain.ProvenanceLive,
	}
}
