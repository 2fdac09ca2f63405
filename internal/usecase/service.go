// Package usecase contains the acquisition orchestrators for the travel
// search system. Each query kind runs the same protocol: validate, check the
// result cache, gate on the upstream call budget, fetch live, and degrade to
// fallback data or an empty-but-explained result when the live tier is
// unavailable.
package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/wanderly/travel-search-api/internal/cache"
	"github.com/wanderly/travel-search-api/internal/domain"
	"github.com/wanderly/travel-search-api/internal/ratelimit"
)

// Cache TTLs per query kind. Reference data barely changes; priced offers
// go stale quickly.
const (
	FlightCacheTTL      = 15 * time.Minute
	HotelCacheTTL       = 30 * time.Minute
	LocationCacheTTL    = 24 * time.Hour
	InspirationCacheTTL = 15 * time.Minute
)

// TravelSearchService defines the four acquisition operations.
//
// Every operation returns normally for upstream unavailability, budget
// exhaustion, and cache failures: the result set degrades to empty with a
// human-readable warning. Only query validation failures are returned as
// errors (wrapping domain.ErrInvalidQuery).
type TravelSearchService interface {
	// SearchFlights returns flight offers for the query.
	SearchFlights(ctx context.Context, query domain.FlightQuery) (*domain.FlightSearchResult, error)

	// SearchHotels returns hotel offers for the query.
	SearchHotels(ctx context.Context, query domain.HotelQuery) (*domain.HotelSearchResult, error)

	// SearchLocations returns airport/city matches for the keyword.
	SearchLocations(ctx context.Context, query domain.LocationQuery) (*domain.LocationSearchResult, error)

	// InspireDestinations returns destination suggestions from an origin.
	InspireDestinations(ctx context.Context, query domain.InspirationQuery) (*domain.InspirationResult, error)
}

// Config contains optional settings for the service.
type Config struct {
	// DedupeInFlight shares one upstream call across concurrent identical
	// queries (same fingerprint). Off by default: duplicate concurrent
	// fetches are an accepted inefficiency bounded by the rate limiter.
	DedupeInFlight bool
}

// travelSearchService implements TravelSearchService.
type travelSearchService struct {
	provider domain.TravelDataProvider
	cache    *cache.Cache
	limiter  *ratelimit.Limiter
	log      zerolog.Logger
	dedupe   bool
	group    singleflight.Group
}

// NewTravelSearchService creates the service. The limiter must be the
// process-wide instance so the upstream budget is shared across all query
// kinds.
func NewTravelSearchService(
	provider domain.TravelDataProvider,
	resultCache *cache.Cache,
	limiter *ratelimit.Limiter,
	log zerolog.Logger,
	config *Config,
) TravelSearchService {
	dedupe := false
	if config != nil {
		dedupe = config.DedupeInFlight
	}
	return &travelSearchService{
		provider: provider,
		cache:    resultCache,
		limiter:  limiter,
		log:      log,
		dedupe:   dedupe,
	}
}

// retagFlights rewrites the provenance tag on replayed records.
func retagFlights(flights []domain.Flight, source domain.Provenance) {
	for i := range flights {
		flights[i].Source = source
	}
}

// retagHotels rewrites the provenance tag on replayed records.
func retagHotels(hotels []domain.Hotel, source domain.Provenance) {
	for i := range hotels {
		hotels[i].Source = source
	}
}

// retagInspirations rewrites the provenance tag on replayed records.
func retagInspirations(destinations []domain.Inspiration, source domain.Provenance) {
	for i := range destinations {
		destinations[i].Source = source
	}
}

// Ensure travelSearchService implements TravelSearchService at compile time.
var _ TravelSearchService = (*travelSearchService)(nil)
