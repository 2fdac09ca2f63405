package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wanderly/travel-search-api/internal/domain"
)

// SearchFlights implements TravelSearchService.
func (s *travelSearchService) SearchFlights(ctx context.Context, query domain.FlightQuery) (*domain.FlightSearchResult, error) {
	query.SetDefaults()
	if err := query.Validate(); err != nil {
		return nil, err
	}
	fingerprint := query.Fingerprint()

	if payload, ok := s.cache.Get(ctx, fingerprint); ok {
		var flights []domain.Flight
		if err := json.Unmarshal(payload, &flights); err == nil {
			retagFlights(flights, domain.ProvenanceCached)
			return &domain.FlightSearchResult{
				Flights: flights,
				Source:  domain.ProvenanceCached,
				Count:   len(flights),
			}, nil
		}
		s.log.Warn().Str("fingerprint", fingerprint).Msg("Discarding undecodable cached flight payload")
	}

	if !s.dedupe {
		return s.fetchFlights(ctx, query, fingerprint), nil
	}

	result, err, _ := s.group.Do(fingerprint, func() (interface{}, error) {
		return s.fetchFlights(ctx, query, fingerprint), nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.FlightSearchResult), nil
}

// fetchFlights runs the rate gate, live fetch, and degraded tail of the
// protocol. It never returns an error: every outcome is a tagged result.
func (s *travelSearchService) fetchFlights(ctx context.Context, query domain.FlightQuery, fingerprint string) *domain.FlightSearchResult {
	if !s.limiter.CanCall() {
		s.log.Warn().Str("fingerprint", fingerprint).Msg("Flight search denied by call budget")
		return &domain.FlightSearchResult{
			Flights: []domain.Flight{},
			Source:  domain.ProvenanceError,
			Warning: "Live flight search is temporarily rate limited. Please try again in a moment.",
		}
	}

	s.limiter.RecordCall()
	flights, err := s.provider.SearchFlights(ctx, query)
	if err != nil {
		s.log.Error().Err(err).Str("fingerprint", fingerprint).Msg("Upstream flight search failed")
		return &domain.FlightSearchResult{
			Flights: []domain.Flight{},
			Source:  domain.ProvenanceError,
			Warning: "Flight search is temporarily unavailable. Please try again later.",
		}
	}

	if len(flights) == 0 {
		// An empty live result is a valid answer; it is not cached so the
		// next attempt gets a fresh look.
		return &domain.FlightSearchResult{
			Flights: []domain.Flight{},
			Source:  domain.ProvenanceLive,
			Warning: fmt.Sprintf("No flights found from %s to %s on %s.", query.Origin, query.Destination, query.DepartureDate),
		}
	}

	if payload, err := json.Marshal(flights); err == nil {
		s.cache.Put(ctx, fingerprint, payload, FlightCacheTTL)
	}

	return &domain.FlightSearchResult{
		Flights: flights,
		Source:  domain.ProvenanceLive,
		Count:   len(flights),
	}
}
