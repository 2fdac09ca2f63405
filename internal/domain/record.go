package domain

import "time"

// Provenance records which tier of the acquisition protocol produced a
// result set.
type Provenance string

// The closed set of provenance values.
const (
	// ProvenanceLive marks results fetched fresh from the upstream API.
	ProvenanceLive Provenance = "live"

	// ProvenanceCached marks results replayed from the result cache.
	ProvenanceCached Provenance = "cached"

	// ProvenanceFallback marks results served from static reference data.
	ProvenanceFallback Provenance = "fallback"

	// ProvenanceError marks an empty result returned because neither the
	// cache nor the upstream could serve the query.
	ProvenanceError Provenance = "error"
)

// Flight is a normalized flight offer. It is an immutable value object
// produced once by the upstream normalizer; only the Source tag is rewritten
// when a record is replayed from cache.
type Flight struct {
	// ID is a unique identifier for this offer (upstream ID, or generated)
	ID string `json:"id"`

	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LHR")
	Destination string `json:"destination"`

	// OriginCity is the resolved display name for the origin code
	OriginCity string `json:"originCity"`

	// DestinationCity is the resolved display name for the destination code
	DestinationCity string `json:"destinationCity"`

	// DepartureTime is the scheduled departure of the first segment
	DepartureTime time.Time `json:"departureTime"`

	// ArrivalTime is the scheduled arrival of the last segment
	ArrivalTime time.Time `json:"arrivalTime"`

	// Duration is the total journey duration
	Duration DurationInfo `json:"duration"`

	// Stops is the number of intermediate stops (0 = direct)
	Stops int `json:"stops"`

	// CarrierCode is the IATA code of the validating carrier
	CarrierCode string `json:"carrierCode"`

	// Price contains the offer price and currency
	Price PriceInfo `json:"price"`

	// CabinClass is the travel class (ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST)
	CabinClass string `json:"cabinClass"`

	// Source records which acquisition tier produced this record
	Source Provenance `json:"source"`

	// FetchedAt is when the record was produced from upstream data
	FetchedAt time.Time `json:"fetchedAt"`
}

// Hotel is a normalized hotel offer for a stay.
type Hotel struct {
	// ID is a unique identifier for this offer
	ID string `json:"id"`

	// Name is the hotel display name
	Name string `json:"name"`

	// CityCode is the IATA city code the hotel was searched under
	CityCode string `json:"cityCode"`

	// CityName is the resolved display name for the city code
	CityName string `json:"cityName"`

	// Address is a single-line street address, possibly empty
	Address string `json:"address"`

	// Rating is the star rating, 1-5 (3 when the upstream omits it)
	Rating int `json:"rating"`

	// PricePerNight is the nightly rate after sanity correction
	PricePerNight float64 `json:"pricePerNight"`

	// TotalPrice is the total for the stay: round(PricePerNight * nights)
	TotalPrice float64 `json:"totalPrice"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency"`

	// RoomDescription describes the offered room, possibly empty
	RoomDescription string `json:"roomDescription"`

	// Amenities is the capped amenity list
	Amenities []string `json:"amenities"`

	// CancellationPolicy is free-form policy text, possibly empty
	CancellationPolicy string `json:"cancellationPolicy"`

	// Source records which acquisition tier produced this record
	Source Provenance `json:"source"`

	// FetchedAt is when the record was produced from upstream data
	FetchedAt time.Time `json:"fetchedAt"`
}

// Location is a normalized airport or city record used for autocomplete.
type Location struct {
	// Code is the IATA code (e.g., "GRU")
	Code string `json:"code"`

	// Name is the upstream display name for the location
	Name string `json:"name"`

	// CityName is the resolved city display name
	CityName string `json:"cityName"`

	// CountryName is the country display name, possibly empty
	CountryName string `json:"countryName"`

	// Type is the location kind: AIRPORT or CITY
	Type string `json:"type"`
}

// Location type values.
const (
	LocationTypeAirport = "AIRPORT"
	LocationTypeCity    = "CITY"
)

// Inspiration is a normalized destination-inspiration record: a destination
// reachable from an origin with an indicative round-trip price.
type Inspiration struct {
	// Destination is the IATA code of the suggested destination
	Destination string `json:"destination"`

	// CityName is the resolved display name for the destination code
	CityName string `json:"cityName"`

	// DepartureDate is the suggested outbound date (YYYY-MM-DD)
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the suggested return date (YYYY-MM-DD)
	ReturnDate string `json:"returnDate"`

	// Price is the indicative round-trip price
	Price float64 `json:"price"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency"`

	// Source records which acquisition tier produced this record
	Source Provenance `json:"source"`
}

// PriceInfo contains a price amount and its currency.
type PriceInfo struct {
	// Amount is the numeric price value, never negative
	Amount float64 `json:"amount"`

	// Currency is the ISO 4217 currency code (e.g., "USD")
	Currency string `json:"currency"`
}

// DurationInfo contains a journey duration.
type DurationInfo struct {
	// TotalMinutes is the total duration in minutes
	TotalMinutes int `json:"totalMinutes"`

	// Formatted is a human-readable duration string (e.g., "7h 25m")
	Formatted string `json:"formatted"`
}

// NewDurationInfo creates a DurationInfo from total minutes and formats it.
func NewDurationInfo(totalMinutes int) DurationInfo {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	var formatted string
	switch {
	case hours > 0 && mins > 0:
		formatted = itoa(hours) + "h " + itoa(mins) + "m"
	case hours > 0:
		formatted = itoa(hours) + "h"
	default:
		formatted = itoa(mins) + "m"
	}

	return DurationInfo{
		TotalMinutes: totalMinutes,
		Formatted:    formatted,
	}
}

// itoa converts a non-negative integer to a string without importing strconv.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
