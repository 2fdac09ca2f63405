package domain

import "context"

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// TravelDataProvider is the port to the metered travel-data upstream.
// Implementations return fully normalized records tagged ProvenanceLive;
// callers are responsible for rate limiting and caching around these calls.
type TravelDataProvider interface {
	// SearchFlights returns normalized flight offers for the query.
	SearchFlights(ctx context.Context, query FlightQuery) ([]Flight, error)

	// SearchHotels returns normalized hotel offers for the query.
	SearchHotels(ctx context.Context, query HotelQuery) ([]Hotel, error)

	// SearchLocations returns airport/city records matching the keyword.
	SearchLocations(ctx context.Context, query LocationQuery) ([]Location, error)

	// InspireDestinations returns destination suggestions from an origin.
	InspireDestinations(ctx context.Context, query InspirationQuery) ([]Inspiration, error)
}
