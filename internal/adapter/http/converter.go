// Package http provides the HTTP handler layer for the travel search API.
package http

import (
	"github.com/wanderly/travel-search-api/internal/domain"
)

// ToFlightQuery converts a validated request to a domain flight query.
func ToFlightQuery(r *SearchFlightsRequest) domain.FlightQuery {
	return domain.FlightQuery{
		Origin:        r.Origin,
		Destination:   r.Destination,
		DepartureDate: r.DepartureDate,
		ReturnDate:    r.ReturnDate,
		Adults:        r.Adults,
		CabinClass:    r.CabinClass,
	}
}

// ToHotelQuery converts a validated request to a domain hotel query.
func ToHotelQuery(r *SearchHotelsRequest) domain.HotelQuery {
	return domain.HotelQuery{
		CityCode:     r.CityCode,
		CheckInDate:  r.CheckInDate,
		CheckOutDate: r.CheckOutDate,
		Adults:       r.Adults,
		Rooms:        r.Rooms,
	}
}

// ToLocationQuery converts a validated request to a domain location query.
func ToLocationQuery(r *SearchLocationsRequest) domain.LocationQuery {
	return domain.LocationQuery{
		Keyword: r.Keyword,
	}
}

// ToInspirationQuery converts a validated request to a domain inspiration query.
func ToInspirationQuery(r *InspireDestinationsRequest) domain.InspirationQuery {
	return domain.InspirationQuery{
		Origin: r.Origin,
	}
}
