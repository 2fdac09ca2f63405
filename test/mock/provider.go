// Package mock provides test doubles for the travel search system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/wanderly/travel-search-api/internal/domain"
)

// Provider is a configurable mock implementation of domain.TravelDataProvider.
// It supports configurable delays, errors, and responses for testing
// various scenarios including degraded and slow upstreams.
type Provider struct {
	flights      []domain.Flight
	hotels       []domain.Hotel
	locations    []domain.Location
	inspirations []domain.Inspiration
	err          error
	delay        time.Duration
	callCount    int
	mu           sync.Mutex
}

// NewProvider creates a new mock provider.
// The provider is configured using the builder pattern methods.
func NewProvider() *Provider {
	return &Provider{}
}

// WithFlights configures the provider to return the given flights.
func (p *Provider) WithFlights(flights []domain.Flight) *Provider {
	p.flights = flights
	return p
}

// WithHotels configures the provider to return the given hotels.
func (p *Provider) WithHotels(hotels []domain.Hotel) *Provider {
	p.hotels = hotels
	return p
}

// WithLocations configures the provider to return the given locations.
func (p *Provider) WithLocations(locations []domain.Location) *Provider {
	p.locations = locations
	return p
}

// WithInspirations configures the provider to return the given suggestions.
func (p *Provider) WithInspirations(inspirations []domain.Inspiration) *Provider {
	p.inspirations = inspirations
	return p
}

// WithError configures the provider to return the given error from every call.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// CallCount returns how many upstream calls the provider has served.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// SearchFlights implements domain.TravelDataProvider.
func (p *Provider) SearchFlights(ctx context.Context, query domain.FlightQuery) ([]domain.Flight, error) {
	if err := p.respond(ctx); err != nil {
		return nil, err
	}
	return p.flights, nil
}

// SearchHotels implements domain.TravelDataProvider.
func (p *Provider) SearchHotels(ctx context.Context, query domain.HotelQuery) ([]domain.Hotel, error) {
	if err := p.respond(ctx); err != nil {
		return nil, err
	}
	return p.hotels, nil
}

// SearchLocations implements domain.TravelDataProvider.
func (p *Provider) SearchLocations(ctx context.Context, query domain.LocationQuery) ([]domain.Location, error) {
	if err := p.respond(ctx); err != nil {
		return nil, err
	}
	return p.locations, nil
}

// InspireDestinations implements domain.TravelDataProvider.
func (p *Provider) InspireDestinations(ctx context.Context, query domain.InspirationQuery) ([]domain.Inspiration, error) {
	if err := p.respond(ctx); err != nil {
		return nil, err
	}
	return p.inspirations, nil
}

// respond records the call, applies the configured delay, and returns the
// configured error, honoring context cancellation during the delay.
func (p *Provider) respond(ctx context.Context) error {
	p.mu.Lock()
	p.callCount++
	delay := p.delay
	err := p.err
	p.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

var _ domain.TravelDataProvider = (*Provider)(nil)
