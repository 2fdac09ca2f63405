package amadeus

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wanderly/travel-search-api/internal/domain"
	"github.com/wanderly/travel-search-api/internal/refdata"
)

// maxSanePricePerNight is the threshold above which a nightly rate is
// treated as a minor-currency-unit error (cents reported as whole units)
// and divided by 100.
const maxSanePricePerNight = 5000.0

// maxAmenities caps the amenity list carried on a normalized hotel record.
const maxAmenities = 8

// defaultHotelRating is substituted when the upstream rating is absent or
// unparsable.
const defaultHotelRating = 3

// normalizeFlightOffers converts upstream flight offers to domain records.
// Normalization never fails for sparse input: missing nested fields get
// type-appropriate defaults.
func normalizeFlightOffers(offers []FlightOffer, fetchedAt time.Time) []domain.Flight {
	result := make([]domain.Flight, 0, len(offers))
	for _, offer := range offers {
		result = append(result, normalizeFlightOffer(offer, fetchedAt))
	}
	return result
}

// normalizeFlightOffer converts a single flight offer. The first itinerary
// is canonical; departure comes from its first segment and arrival from its
// last.
func normalizeFlightOffer(offer FlightOffer, fetchedAt time.Time) domain.Flight {
	flight := domain.Flight{
		ID:         offer.ID,
		CabinClass: domain.DefaultCabinClass,
		Source:     domain.ProvenanceLive,
		FetchedAt:  fetchedAt,
	}
	if flight.ID == "" {
		flight.ID = uuid.New().String()
	}

	if len(offer.Itineraries) > 0 {
		itinerary := offer.Itineraries[0]
		segments := itinerary.Segments

		flight.Stops = stopCount(len(segments))
		flight.Duration = domain.NewDurationInfo(parseISODurationMinutes(itinerary.Duration))

		if len(segments) > 0 {
			first := segments[0]
			last := segments[len(segments)-1]

			flight.Origin = first.Departure.IataCode
			flight.Destination = last.Arrival.IataCode
			flight.DepartureTime = parseDateTime(first.Departure.At)
			flight.ArrivalTime = parseDateTime(last.Arrival.At)
			flight.CarrierCode = first.CarrierCode
		}
	}

	flight.OriginCity = refdata.ResolveCity(flight.Origin)
	flight.DestinationCity = refdata.ResolveCity(flight.Destination)

	if len(offer.ValidatingAirlineCodes) > 0 {
		flight.CarrierCode = offer.ValidatingAirlineCodes[0]
	}

	flight.Price = domain.PriceInfo{
		Amount:   parsePrice(offer.Price.Total),
		Currency: offer.Price.Currency,
	}

	if len(offer.TravelerPricings) > 0 && len(offer.TravelerPricings[0].FareDetailsBySegment) > 0 {
		if cabin := strings.ToUpper(offer.TravelerPricings[0].FareDetailsBySegment[0].Cabin); cabin != "" {
			flight.CabinClass = cabin
		}
	}

	return flight
}

// normalizeHotelOffers converts upstream hotel offers to domain records.
func normalizeHotelOffers(offers []HotelOffer, fetchedAt time.Time) []domain.Hotel {
	result := make([]domain.Hotel, 0, len(offers))
	for _, offer := range offers {
		result = append(result, normalizeHotelOffer(offer, fetchedAt))
	}
	return result
}

// normalizeHotelOffer converts a single hotel with its commercial offers.
// The first offer in upstream order is canonical; see DESIGN.md for the
// open question on cheapest-offer selection.
func normalizeHotelOffer(offer HotelOffer, fetchedAt time.Time) domain.Hotel {
	hotel := domain.Hotel{
		ID:        offer.Hotel.HotelID,
		Name:      offer.Hotel.Name,
		CityCode:  offer.Hotel.CityCode,
		CityName:  refdata.ResolveCity(offer.Hotel.CityCode),
		Rating:    parseRating(offer.Hotel.Rating),
		Amenities: capAmenities(offer.Hotel.Amenities),
		Source:    domain.ProvenanceLive,
		FetchedAt: fetchedAt,
	}
	if hotel.ID == "" {
		hotel.ID = uuid.New().String()
	}
	if offer.Hotel.Address.CityName != "" && hotel.CityName == hotel.CityCode {
		hotel.CityName = offer.Hotel.Address.CityName
	}
	if len(offer.Hotel.Address.Lines) > 0 {
		hotel.Address = strings.Join(offer.Hotel.Address.Lines, ", ")
	}

	if len(offer.Offers) == 0 {
		return hotel
	}

	room := offer.Offers[0]
	hotel.Currency = room.Price.Currency
	hotel.RoomDescription = room.Room.Description.Text
	if len(room.Policies.Cancellations) > 0 {
		hotel.CancellationPolicy = room.Policies.Cancellations[0].Description.Text
	}

	nights := domain.NightsBetween(room.CheckInDate, room.CheckOutDate)
	perNight := parsePrice(room.Price.Total) / float64(nights)

	// Some upstream feeds report minor currency units as whole units. Once
	// the correction fires the upstream total is no longer trusted; the
	// total is recomputed from the corrected nightly rate.
	if perNight > maxSanePricePerNight {
		perNight = perNight / 100
	}

	hotel.PricePerNight = round2(perNight)
	hotel.TotalPrice = round2(hotel.PricePerNight * float64(nights))

	return hotel
}

// normalizeLocations converts upstream location entries to domain records.
func normalizeLocations(entries []LocationEntry) []domain.Location {
	result := make([]domain.Location, 0, len(entries))
	for _, entry := range entries {
		locType := strings.ToUpper(entry.SubType)
		if locType != domain.LocationTypeAirport && locType != domain.LocationTypeCity {
			locType = domain.LocationTypeAirport
		}

		cityName := entry.Address.CityName
		if cityName == "" {
			cityName = refdata.ResolveCity(entry.IataCode)
		}

		result = append(result, domain.Location{
			Code:        entry.IataCode,
			Name:        entry.Name,
			CityName:    cityName,
			CountryName: entry.Address.CountryName,
			Type:        locType,
		})
	}
	return result
}

// normalizeDestinations converts upstream inspiration entries to domain
// records. The document-level currency applies to every entry.
func normalizeDestinations(doc destinationsResponse) []domain.Inspiration {
	currency := doc.Meta.Currency
	if currency == "" {
		currency = "USD"
	}

	result := make([]domain.Inspiration, 0, len(doc.Data))
	for _, entry := range doc.Data {
		result = append(result, domain.Inspiration{
			Destination:   entry.Destination,
			CityName:      refdata.ResolveCity(entry.Destination),
			DepartureDate: entry.DepartureDate,
			ReturnDate:    entry.ReturnDate,
			Price:         parsePrice(entry.Price.Total),
			Currency:      currency,
			Source:        domain.ProvenanceLive,
		})
	}
	return result
}

// stopCount derives stops from a segment count: max(0, segments - 1).
func stopCount(segments int) int {
	if segments <= 1 {
		return 0
	}
	return segments - 1
}

// parsePrice parses an upstream decimal string. Unparsable or negative
// values normalize to zero.
func parsePrice(raw string) float64 {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || amount < 0 {
		return 0
	}
	return amount
}

// parseRating parses an upstream star rating, defaulting and clamping to
// the 1-5 range.
func parseRating(raw string) int {
	rating, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return defaultHotelRating
	}
	if rating < 1 || rating > 5 {
		return defaultHotelRating
	}
	return rating
}

// capAmenities bounds the amenity list, always returning a non-nil slice.
func capAmenities(amenities []string) []string {
	if len(amenities) > maxAmenities {
		amenities = amenities[:maxAmenities]
	}
	capped := make([]string, len(amenities))
	copy(capped, amenities)
	return capped
}

// parseDateTime parses an upstream datetime, tolerating a missing timezone.
// Unparsable input yields the zero time.
func parseDateTime(raw string) time.Time {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02T15:04:05", raw); err == nil {
		return t
	}
	return time.Time{}
}

// parseISODurationMinutes parses an ISO 8601 duration like "PT7H25M" into
// minutes. Unparsable input yields zero.
func parseISODurationMinutes(raw string) int {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if !strings.HasPrefix(raw, "PT") {
		return 0
	}
	raw = strings.TrimPrefix(raw, "PT")

	minutes := 0
	if idx := strings.Index(raw, "H"); idx >= 0 {
		if hours, err := strconv.Atoi(raw[:idx]); err == nil {
			minutes += hours * 60
		}
		raw = raw[idx+1:]
	}
	if idx := strings.Index(raw, "M"); idx >= 0 {
		if mins, err := strconv.Atoi(raw[:idx]); err == nil {
			minutes += mins
		}
	}
	return minutes
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
