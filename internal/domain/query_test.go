package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightQueryValidate(t *testing.T) {
	valid := FlightQuery{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2025-03-15",
		Adults:        1,
		CabinClass:    "ECONOMY",
	}

	tests := []struct {
		name    string
		modify  func(*FlightQuery)
		wantErr string
	}{
		{
			name:   "valid query",
			modify: func(q *FlightQuery) {},
		},
		{
			name:   "valid with return date",
			modify: func(q *FlightQuery) { q.ReturnDate = "2025-03-22" },
		},
		{
			name:    "missing origin",
			modify:  func(q *FlightQuery) { q.Origin = "" },
			wantErr: "origin is required",
		},
		{
			name:    "lowercase origin",
			modify:  func(q *FlightQuery) { q.Origin = "jfk" },
			wantErr: "origin must be a valid 3-letter IATA code",
		},
		{
			name:    "missing destination",
			modify:  func(q *FlightQuery) { q.Destination = "" },
			wantErr: "destination is required",
		},
		{
			name:    "same origin and destination",
			modify:  func(q *FlightQuery) { q.Destination = "JFK" },
			wantErr: "origin and destination must be different",
		},
		{
			name:    "missing departure date",
			modify:  func(q *FlightQuery) { q.DepartureDate = "" },
			wantErr: "departureDate is required",
		},
		{
			name:    "malformed departure date",
			modify:  func(q *FlightQuery) { q.DepartureDate = "15-03-2025" },
			wantErr: "departureDate must be in YYYY-MM-DD format",
		},
		{
			name:    "impossible departure date",
			modify:  func(q *FlightQuery) { q.DepartureDate = "2025-02-30" },
			wantErr: "not a valid date",
		},
		{
			name:    "return before departure",
			modify:  func(q *FlightQuery) { q.ReturnDate = "2025-03-01" },
			wantErr: "returnDate must not be before departureDate",
		},
		{
			name:    "zero adults",
			modify:  func(q *FlightQuery) { q.Adults = 0 },
			wantErr: "adults must be at least 1",
		},
		{
			name:    "too many adults",
			modify:  func(q *FlightQuery) { q.Adults = 10 },
			wantErr: "adults cannot exceed 9",
		},
		{
			name:    "unknown cabin class",
			modify:  func(q *FlightQuery) { q.CabinClass = "COACH" },
			wantErr: "cabinClass must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := valid
			tt.modify(&q)

			err := q.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidQuery)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFlightQuerySetDefaults(t *testing.T) {
	q := FlightQuery{
		Origin:        " jfk ",
		Destination:   "lhr",
		DepartureDate: "2025-03-15",
	}
	q.SetDefaults()

	assert.Equal(t, "JFK", q.Origin)
	assert.Equal(t, "LHR", q.Destination)
	assert.Equal(t, 1, q.Adults)
	assert.Equal(t, "ECONOMY", q.CabinClass)
}

func TestFlightQueryFingerprintDeterminism(t *testing.T) {
	// Semantically-equal queries must produce identical fingerprints once
	// defaults are applied, regardless of input casing or omitted fields.
	a := FlightQuery{Origin: "jfk", Destination: "lhr", DepartureDate: "2025-03-15"}
	b := FlightQuery{Origin: "JFK", Destination: "LHR", DepartureDate: "2025-03-15", Adults: 1, CabinClass: "ECONOMY"}
	a.SetDefaults()
	b.SetDefaults()

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	// Any cache-relevant field change must change the fingerprint.
	variants := []FlightQuery{
		{Origin: "BOS", Destination: "LHR", DepartureDate: "2025-03-15"},
		{Origin: "JFK", Destination: "CDG", DepartureDate: "2025-03-15"},
		{Origin: "JFK", Destination: "LHR", DepartureDate: "2025-03-16"},
		{Origin: "JFK", Destination: "LHR", DepartureDate: "2025-03-15", ReturnDate: "2025-03-22"},
		{Origin: "JFK", Destination: "LHR", DepartureDate: "2025-03-15", Adults: 2},
		{Origin: "JFK", Destination: "LHR", DepartureDate: "2025-03-15", CabinClass: "BUSINESS"},
	}

	seen := map[string]bool{a.Fingerprint(): true}
	for _, v := range variants {
		v.SetDefaults()
		fp := v.Fingerprint()
		assert.False(t, seen[fp], "fingerprint collision for %+v", v)
		seen[fp] = true
	}
}

func TestHotelQueryValidate(t *testing.T) {
	valid := HotelQuery{
		CityCode:     "PAR",
		CheckInDate:  "2025-03-15",
		CheckOutDate: "2025-03-17",
		Adults:       2,
		Rooms:        1,
	}

	tests := []struct {
		name    string
		modify  func(*HotelQuery)
		wantErr string
	}{
		{
			name:   "valid query",
			modify: func(q *HotelQuery) {},
		},
		{
			name:    "missing city code",
			modify:  func(q *HotelQuery) { q.CityCode = "" },
			wantErr: "cityCode is required",
		},
		{
			name:    "invalid city code",
			modify:  func(q *HotelQuery) { q.CityCode = "PARIS" },
			wantErr: "cityCode must be a valid 3-letter IATA code",
		},
		{
			name:    "missing check-in",
			modify:  func(q *HotelQuery) { q.CheckInDate = "" },
			wantErr: "checkInDate is required",
		},
		{
			name:    "missing check-out",
			modify:  func(q *HotelQuery) { q.CheckOutDate = "" },
			wantErr: "checkOutDate is required",
		},
		{
			name:    "check-out not after check-in",
			modify:  func(q *HotelQuery) { q.CheckOutDate = "2025-03-15" },
			wantErr: "checkOutDate must be after checkInDate",
		},
		{
			name:    "zero rooms",
			modify:  func(q *HotelQuery) { q.Rooms = 0 },
			wantErr: "rooms must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := valid
			tt.modify(&q)

			err := q.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidQuery)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestHotelQueryNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"two nights", "2025-03-15", "2025-03-17", 2},
		{"one night", "2025-03-15", "2025-03-16", 1},
		{"long stay", "2025-03-01", "2025-03-15", 14},
		{"same day still one night", "2025-03-15", "2025-03-15", 1},
		{"unparsable dates default to one", "garbage", "2025-03-17", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NightsBetween(tt.checkIn, tt.checkOut))
		})
	}
}

func TestLocationQueryValidate(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		wantErr bool
	}{
		{"valid keyword", "sao", false},
		{"minimum length", "ny", false},
		{"too short", "s", true},
		{"whitespace only", "   ", true},
		{"padded but long enough", " pa ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := LocationQuery{Keyword: tt.keyword}
			err := q.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidQuery)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLocationQueryFingerprint(t *testing.T) {
	a := LocationQuery{Keyword: "  SAO "}
	b := LocationQuery{Keyword: "sao"}
	a.SetDefaults()
	b.SetDefaults()

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.Equal(t, "location:sao", a.Fingerprint())
}

func TestInspirationQueryValidate(t *testing.T) {
	q := InspirationQuery{Origin: "BOS"}
	assert.NoError(t, q.Validate())

	q = InspirationQuery{}
	assert.ErrorIs(t, q.Validate(), ErrInvalidQuery)

	q = InspirationQuery{Origin: "bos"}
	assert.ErrorIs(t, q.Validate(), ErrInvalidQuery)

	q = InspirationQuery{Origin: "bos"}
	q.SetDefaults()
	assert.NoError(t, q.Validate())
	assert.Equal(t, "inspiration:BOS", q.Fingerprint())
}
