package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// iataCodeRegex matches valid IATA airport/city codes (3 uppercase letters).
var iataCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validCabinClasses defines the allowed cabin classes, in the upstream's
// uppercase convention.
var validCabinClasses = map[string]bool{
	"ECONOMY":         true,
	"PREMIUM_ECONOMY": true,
	"BUSINESS":        true,
	"FIRST":           true,
}

// DefaultCabinClass is substituted when no cabin class is requested.
const DefaultCabinClass = "ECONOMY"

// MinKeywordLength is the minimum keyword length for location autocomplete.
const MinKeywordLength = 2

// FlightQuery defines the parameters for a flight offer search.
type FlightQuery struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LHR")
	Destination string `json:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the optional return date in YYYY-MM-DD format
	ReturnDate string `json:"returnDate,omitempty"`

	// Adults is the number of adult travelers (default: 1)
	Adults int `json:"adults"`

	// CabinClass is the requested cabin (default: ECONOMY)
	CabinClass string `json:"cabinClass,omitempty"`
}

// Validate checks if the flight query is valid.
// Returns a wrapped ErrInvalidQuery error if validation fails.
func (q *FlightQuery) Validate() error {
	if q.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidQuery)
	}
	if !iataCodeRegex.MatchString(q.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidQuery, q.Origin)
	}
	if q.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidQuery)
	}
	if !iataCodeRegex.MatchString(q.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidQuery, q.Destination)
	}
	if q.Origin == q.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidQuery)
	}
	if q.DepartureDate == "" {
		return fmt.Errorf("%w: departureDate is required", ErrInvalidQuery)
	}
	if err := validateDate("departureDate", q.DepartureDate); err != nil {
		return err
	}
	if q.ReturnDate != "" {
		if err := validateDate("returnDate", q.ReturnDate); err != nil {
			return err
		}
		if q.ReturnDate < q.DepartureDate {
			return fmt.Errorf("%w: returnDate must not be before departureDate", ErrInvalidQuery)
		}
	}
	if q.Adults < 1 {
		return fmt.Errorf("%w: adults must be at least 1", ErrInvalidQuery)
	}
	if q.Adults > 9 {
		return fmt.Errorf("%w: adults cannot exceed 9", ErrInvalidQuery)
	}
	if q.CabinClass != "" && !validCabinClasses[q.CabinClass] {
		return fmt.Errorf("%w: cabinClass must be one of: ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST; got %q", ErrInvalidQuery, q.CabinClass)
	}
	return nil
}

// SetDefaults applies default values and normalizes field casing.
func (q *FlightQuery) SetDefaults() {
	q.Origin = strings.ToUpper(strings.TrimSpace(q.Origin))
	q.Destination = strings.ToUpper(strings.TrimSpace(q.Destination))
	q.CabinClass = strings.ToUpper(strings.TrimSpace(q.CabinClass))
	if q.Adults == 0 {
		q.Adults = 1
	}
	if q.CabinClass == "" {
		q.CabinClass = DefaultCabinClass
	}
}

// Fingerprint returns the deterministic cache key for this query.
// Call SetDefaults first so that semantically-equal queries (differing only
// in casing or omitted defaults) produce identical fingerprints.
func (q *FlightQuery) Fingerprint() string {
	return fmt.Sprintf("flight:%s:%s:%s:%s:%d:%s",
		q.Origin, q.Destination, q.DepartureDate, q.ReturnDate, q.Adults, q.CabinClass)
}

// HotelQuery defines the parameters for a hotel offer search.
type HotelQuery struct {
	// CityCode is the IATA city code to search hotels in (e.g., "PAR")
	CityCode string `json:"cityCode"`

	// CheckInDate is the check-in date in YYYY-MM-DD format
	CheckInDate string `json:"checkInDate"`

	// CheckOutDate is the check-out date in YYYY-MM-DD format
	CheckOutDate string `json:"checkOutDate"`

	// Adults is the number of adult guests (default: 1)
	Adults int `json:"adults"`

	// Rooms is the number of rooms requested (default: 1)
	Rooms int `json:"rooms"`
}

// Validate checks if the hotel query is valid.
// Returns a wrapped ErrInvalidQuery error if validation fails.
func (q *HotelQuery) Validate() error {
	if q.CityCode == "" {
		return fmt.Errorf("%w: cityCode is required", ErrInvalidQuery)
	}
	if !iataCodeRegex.MatchString(q.CityCode) {
		return fmt.Errorf("%w: cityCode must be a valid 3-letter IATA code, got %q", ErrInvalidQuery, q.CityCode)
	}
	if q.CheckInDate == "" {
		return fmt.Errorf("%w: checkInDate is required", ErrInvalidQuery)
	}
	if err := validateDate("checkInDate", q.CheckInDate); err != nil {
		return err
	}
	if q.CheckOutDate == "" {
		return fmt.Errorf("%w: checkOutDate is required", ErrInvalidQuery)
	}
	if err := validateDate("checkOutDate", q.CheckOutDate); err != nil {
		return err
	}
	if q.CheckOutDate <= q.CheckInDate {
		return fmt.Errorf("%w: checkOutDate must be after checkInDate", ErrInvalidQuery)
	}
	if q.Adults < 1 {
		return fmt.Errorf("%w: adults must be at least 1", ErrInvalidQuery)
	}
	if q.Adults > 9 {
		return fmt.Errorf("%w: adults cannot exceed 9", ErrInvalidQuery)
	}
	if q.Rooms < 1 {
		return fmt.Errorf("%w: rooms must be at least 1", ErrInvalidQuery)
	}
	if q.Rooms > 9 {
		return fmt.Errorf("%w: rooms cannot exceed 9", ErrInvalidQuery)
	}
	return nil
}

// SetDefaults applies default values and normalizes field casing.
func (q *HotelQuery) SetDefaults() {
	q.CityCode = strings.ToUpper(strings.TrimSpace(q.CityCode))
	if q.Adults == 0 {
		q.Adults = 1
	}
	if q.Rooms == 0 {
		q.Rooms = 1
	}
}

// Fingerprint returns the deterministic cache key for this query.
func (q *HotelQuery) Fingerprint() string {
	return fmt.Sprintf("hotel:%s:%s:%s:%d:%d",
		q.CityCode, q.CheckInDate, q.CheckOutDate, q.Adults, q.Rooms)
}

// Nights returns the length of the stay in whole days, minimum 1.
func (q *HotelQuery) Nights() int {
	return NightsBetween(q.CheckInDate, q.CheckOutDate)
}

// NightsBetween derives the number of nights from two YYYY-MM-DD dates as
// whole days of (checkOut - checkIn), minimum 1. Unparsable dates yield 1.
func NightsBetween(checkIn, checkOut string) int {
	in, errIn := time.Parse("2006-01-02", checkIn)
	out, errOut := time.Parse("2006-01-02", checkOut)
	if errIn != nil || errOut != nil {
		return 1
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

// LocationQuery defines the parameters for location autocomplete.
type LocationQuery struct {
	// Keyword is the partial city/airport name or code (min 2 characters)
	Keyword string `json:"keyword"`
}

// Validate checks if the location query is valid.
func (q *LocationQuery) Validate() error {
	if len(strings.TrimSpace(q.Keyword)) < MinKeywordLength {
		return fmt.Errorf("%w: keyword must be at least %d characters", ErrInvalidQuery, MinKeywordLength)
	}
	return nil
}

// SetDefaults normalizes the keyword for matching and fingerprinting.
func (q *LocationQuery) SetDefaults() {
	q.Keyword = strings.ToLower(strings.TrimSpace(q.Keyword))
}

// Fingerprint returns the deterministic cache key for this query.
func (q *LocationQuery) Fingerprint() string {
	return "location:" + q.Keyword
}

// InspirationQuery defines the parameters for destination inspiration.
type InspirationQuery struct {
	// Origin is the IATA code to suggest destinations from (e.g., "BOS")
	Origin string `json:"origin"`
}

// Validate checks if the inspiration query is valid.
func (q *InspirationQuery) Validate() error {
	if q.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidQuery)
	}
	if !iataCodeRegex.MatchString(q.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidQuery, q.Origin)
	}
	return nil
}

// SetDefaults normalizes field casing.
func (q *InspirationQuery) SetDefaults() {
	q.Origin = strings.ToUpper(strings.TrimSpace(q.Origin))
}

// Fingerprint returns the deterministic cache key for this query.
func (q *InspirationQuery) Fingerprint() string {
	return "inspiration:" + q.Origin
}

// validateDate checks that a date string is well-formed and a real date.
func validateDate(field, value string) error {
	if !dateRegex.MatchString(value) {
		return fmt.Errorf("%w: %s must be in YYYY-MM-DD format, got %q", ErrInvalidQuery, field, value)
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("%w: %s is not a valid date: %s", ErrInvalidQuery, field, value)
	}
	return nil
}
