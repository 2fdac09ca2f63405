// Package http provides the HTTP handler layer for the travel search API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"regexp"
	"strings"
	"time"
)

// Validation regex patterns.
var (
	iataCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Valid cabin classes accepted on the wire.
var validCabinClasses = map[string]bool{
	"ECONOMY":         true,
	"PREMIUM_ECONOMY": true,
	"BUSINESS":        true,
	"FIRST":           true,
	"":                true, // Empty is valid (defaults to ECONOMY)
}

// SearchFlightsRequest represents the query parameters for flight search.
type SearchFlightsRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `query:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LHR")
	Destination string `query:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `query:"departureDate"`

	// ReturnDate is the optional return date in YYYY-MM-DD format
	ReturnDate string `query:"returnDate"`

	// Adults is the number of adult travellers (optional, defaults to 1)
	Adults int `query:"adults"`

	// CabinClass is ECONOMY, PREMIUM_ECONOMY, BUSINESS, or FIRST (optional)
	CabinClass string `query:"cabinClass"`
}

// SearchHotelsRequest represents the query parameters for hotel search.
type SearchHotelsRequest struct {
	// CityCode is the IATA city code to search in (e.g., "PAR")
	CityCode string `query:"cityCode"`

	// CheckInDate is the check-in date in YYYY-MM-DD format
	CheckInDate string `query:"checkInDate"`

	// CheckOutDate is the check-out date in YYYY-MM-DD format
	CheckOutDate string `query:"checkOutDate"`

	// Adults is the number of adult guests (optional, defaults to 1)
	Adults int `query:"adults"`

	// Rooms is the number of rooms (optional, defaults to 1)
	Rooms int `query:"rooms"`
}

// SearchLocationsRequest represents the query parameters for location lookup.
type SearchLocationsRequest struct {
	// Keyword is the free-text search term (minimum 2 characters)
	Keyword string `query:"keyword"`
}

// InspireDestinationsRequest represents the query parameters for destination
// inspiration.
type InspireDestinationsRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "MAD")
	Origin string `query:"origin"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the flight search request and returns any validation errors.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	validateIATACode(errs, "origin", &r.Origin)
	validateIATACode(errs, "destination", &r.Destination)

	if r.Origin != "" && r.Destination != "" && strings.EqualFold(r.Origin, r.Destination) {
		errs.Add("destination", "origin and destination must be different")
	}

	validateDate(errs, "departureDate", r.DepartureDate)

	if r.ReturnDate != "" {
		validateDate(errs, "returnDate", r.ReturnDate)
		if r.DepartureDate != "" && r.ReturnDate < r.DepartureDate {
			errs.Add("returnDate", "returnDate must not be before departureDate")
		}
	}

	if r.Adults < 0 || r.Adults > 9 {
		errs.Add("adults", "adults must be between 1 and 9")
	}

	if !validCabinClasses[strings.ToUpper(r.CabinClass)] {
		errs.Add("cabinClass", "cabinClass must be one of: ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the hotel search request and returns any validation errors.
func (r *SearchHotelsRequest) Validate() error {
	errs := &ValidationErrors{}

	validateIATACode(errs, "cityCode", &r.CityCode)
	validateDate(errs, "checkInDate", r.CheckInDate)
	validateDate(errs, "checkOutDate", r.CheckOutDate)

	if r.CheckInDate != "" && r.CheckOutDate != "" && r.CheckOutDate <= r.CheckInDate {
		errs.Add("checkOutDate", "checkOutDate must be after checkInDate")
	}

	if r.Adults < 0 || r.Adults > 9 {
		errs.Add("adults", "adults must be between 1 and 9")
	}
	if r.Rooms < 0 || r.Rooms > 9 {
		errs.Add("rooms", "rooms must be between 1 and 9")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the location search request and returns any validation errors.
func (r *SearchLocationsRequest) Validate() error {
	errs := &ValidationErrors{}

	keyword := strings.TrimSpace(r.Keyword)
	if keyword == "" {
		errs.Add("keyword", "keyword is required")
	} else if len(keyword) < 2 {
		errs.Add("keyword", "keyword must be at least 2 characters")
	}
	r.Keyword = keyword

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the inspiration request and returns any validation errors.
func (r *InspireDestinationsRequest) Validate() error {
	errs := &ValidationErrors{}

	validateIATACode(errs, "origin", &r.Origin)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateIATACode checks a required 3-letter IATA code and normalizes it to
// uppercase in place.
func validateIATACode(errs *ValidationErrors, field string, value *string) {
	if *value == "" {
		errs.Add(field, field+" is required")
		return
	}

	normalized := strings.ToUpper(strings.TrimSpace(*value))
	if !iataCodePattern.MatchString(normalized) {
		errs.Add(field, field+" must be a valid 3-letter IATA code")
		return
	}
	*value = normalized
}

// validateDate checks a required YYYY-MM-DD date string.
func validateDate(errs *ValidationErrors, field, value string) {
	if value == "" {
		errs.Add(field, field+" is required")
		return
	}

	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return
	}

	if _, err := time.Parse("2006-01-02", value); err != nil {
		errs.Add(field, field+" is not a valid date")
	}
}
