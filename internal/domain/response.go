package domain

// FlightSearchResult is the tagged result set for a flight search.
type FlightSearchResult struct {
	// Flights contains the normalized flight offers
	Flights []Flight `json:"flights"`

	// Source records which acquisition tier produced the set
	Source Provenance `json:"source"`

	// Count is the number of records in Flights
	Count int `json:"count"`

	// Warning is a human-readable note when the result is degraded or empty
	Warning string `json:"warning,omitempty"`
}

// HotelSearchResult is the tagged result set for a hotel search.
type HotelSearchResult struct {
	// Hotels contains the normalized hotel offers
	Hotels []Hotel `json:"hotels"`

	// Source records which acquisition tier produced the set
	Source Provenance `json:"source"`

	// Count is the number of records in Hotels
	Count int `json:"count"`

	// Warning is a human-readable note when the result is degraded or empty
	Warning string `json:"warning,omitempty"`
}

// LocationSearchResult is the tagged result set for location autocomplete.
type LocationSearchResult struct {
	// Locations contains the matched airport/city records
	Locations []Location `json:"locations"`

	// Source records which acquisition tier produced the set
	Source Provenance `json:"source"`
}

// InspirationResult is the tagged result set for destination inspiration.
type InspirationResult struct {
	// Destinations contains the suggested destinations
	Destinations []Inspiration `json:"destinations"`

	// Source records which acquisition tier produced the set
	Source Provenance `json:"source"`

	// Message is a human-readable note when the result is degraded or empty
	Message string `json:"message,omitempty"`
}
