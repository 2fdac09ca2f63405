package amadeus

// Upstream payload shapes for the travel-data API. Only the fields the
// normalizers read are declared; everything else in the upstream documents
// is ignored during decoding.

// tokenResponse is the OAuth2 client-credentials grant response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// flightOffersResponse wraps the flight offer search document.
type flightOffersResponse struct {
	Data []FlightOffer `json:"data"`
}

// FlightOffer is a single upstream flight offer.
type FlightOffer struct {
	ID                     string            `json:"id"`
	Itineraries            []Itinerary       `json:"itineraries"`
	Price                  OfferPrice        `json:"price"`
	ValidatingAirlineCodes []string          `json:"validatingAirlineCodes"`
	TravelerPricings       []TravelerPricing `json:"travelerPricings"`
}

// Itinerary is one direction of a flight offer.
type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

// Segment is a single flight leg.
type Segment struct {
	Departure   SegmentPoint `json:"departure"`
	Arrival     SegmentPoint `json:"arrival"`
	CarrierCode string       `json:"carrierCode"`
	Number      string       `json:"number"`
}

// SegmentPoint is the departure or arrival of a segment.
type SegmentPoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

// OfferPrice is the priced total of an offer.
type OfferPrice struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

// TravelerPricing carries per-traveler fare details.
type TravelerPricing struct {
	FareDetailsBySegment []FareDetails `json:"fareDetailsBySegment"`
}

// FareDetails carries the cabin for a segment.
type FareDetails struct {
	Cabin string `json:"cabin"`
}

// hotelOffersResponse wraps the hotel offer search document.
type hotelOffersResponse struct {
	Data []HotelOffer `json:"data"`
}

// HotelOffer is a hotel with its commercial offers.
type HotelOffer struct {
	Hotel  HotelInfo   `json:"hotel"`
	Offers []RoomOffer `json:"offers"`
}

// HotelInfo describes the property.
type HotelInfo struct {
	HotelID   string       `json:"hotelId"`
	Name      string       `json:"name"`
	CityCode  string       `json:"cityCode"`
	Rating    string       `json:"rating"`
	Address   HotelAddress `json:"address"`
	Amenities []string     `json:"amenities"`
}

// HotelAddress is the property address.
type HotelAddress struct {
	Lines    []string `json:"lines"`
	CityName string   `json:"cityName"`
}

// RoomOffer is a single commercial offer for a stay.
type RoomOffer struct {
	ID           string        `json:"id"`
	CheckInDate  string        `json:"checkInDate"`
	CheckOutDate string        `json:"checkOutDate"`
	Price        OfferPrice    `json:"price"`
	Room         RoomInfo      `json:"room"`
	Policies     OfferPolicies `json:"policies"`
}

// RoomInfo describes the offered room.
type RoomInfo struct {
	Description TextBlock `json:"description"`
}

// OfferPolicies carries cancellation terms.
type OfferPolicies struct {
	Cancellations []Cancellation `json:"cancellations"`
}

// Cancellation is a single cancellation term.
type Cancellation struct {
	Description TextBlock `json:"description"`
}

// TextBlock is the upstream's nested free-text wrapper.
type TextBlock struct {
	Text string `json:"text"`
}

// locationsResponse wraps the location autocomplete document.
type locationsResponse struct {
	Data []LocationEntry `json:"data"`
}

// LocationEntry is a single airport or city record.
type LocationEntry struct {
	IataCode string          `json:"iataCode"`
	Name     string          `json:"name"`
	SubType  string          `json:"subType"`
	Address  LocationAddress `json:"address"`
}

// LocationAddress carries location display names.
type LocationAddress struct {
	CityName    string `json:"cityName"`
	CountryName string `json:"countryName"`
}

// destinationsResponse wraps the flight-destinations document.
type destinationsResponse struct {
	Data []DestinationEntry `json:"data"`
	Meta DestinationsMeta   `json:"meta"`
}

// DestinationEntry is a single inspiration record.
type DestinationEntry struct {
	Destination   string     `json:"destination"`
	DepartureDate string     `json:"departureDate"`
	ReturnDate    string     `json:"returnDate"`
	Price         TotalPrice `json:"price"`
}

// TotalPrice is a bare price total.
type TotalPrice struct {
	Total string `json:"total"`
}

// DestinationsMeta carries document-level metadata.
type DestinationsMeta struct {
	Currency string `json:"currency"`
}
