// Package refdata bundles the static city and airport reference table. It
// serves two roles in the acquisition layer: the last-resort fallback data
// source for location autocomplete, and the display-name resolver for IATA
// codes returned by the live API.
package refdata

import (
	"sort"
	"strings"

	"github.com/wanderly/travel-search-api/internal/domain"
)

// Place is a bundled reference entry for an airport or city.
type Place struct {
	// Name is the display name of the airport or city
	Name string

	// City is the city display name
	City string

	// Country is the country display name
	Country string

	// Type is domain.LocationTypeAirport or domain.LocationTypeCity
	Type string
}

// places maps IATA codes to bundled reference entries. The table covers the
// destinations the product surfaces on its browse pages plus the major hubs
// seen in live results, so code resolution rarely has to echo a raw code.
var places = map[string]Place{
	"AMS": {Name: "Amsterdam Schiphol", City: "Amsterdam", Country: "Netherlands", Type: domain.LocationTypeAirport},
	"ATL": {Name: "Hartsfield-Jackson Atlanta Intl", City: "Atlanta", Country: "United States", Type: domain.LocationTypeAirport},
	"BCN": {Name: "Barcelona El Prat", City: "Barcelona", Country: "Spain", Type: domain.LocationTypeAirport},
	"BKK": {Name: "Suvarnabhumi", City: "Bangkok", Country: "Thailand", Type: domain.LocationTypeAirport},
	"BOS": {Name: "Boston Logan Intl", City: "Boston", Country: "United States", Type: domain.LocationTypeAirport},
	"CDG": {Name: "Paris Charles de Gaulle", City: "Paris", Country: "France", Type: domain.LocationTypeAirport},
	"DEL": {Name: "Indira Gandhi Intl", City: "New Delhi", Country: "India", Type: domain.LocationTypeAirport},
	"DEN": {Name: "Denver Intl", City: "Denver", Country: "United States", Type: domain.LocationTypeAirport},
	"DXB": {Name: "Dubai Intl", City: "Dubai", Country: "United Arab Emirates", Type: domain.LocationTypeAirport},
	"EZE": {Name: "Ministro Pistarini Intl", City: "Buenos Aires", Country: "Argentina", Type: domain.LocationTypeAirport},
	"FCO": {Name: "Rome Fiumicino", City: "Rome", Country: "Italy", Type: domain.LocationTypeAirport},
	"FRA": {Name: "Frankfurt am Main", City: "Frankfurt", Country: "Germany", Type: domain.LocationTypeAirport},
	"GIG": {Name: "Rio de Janeiro Galeao Intl", City: "Rio de Janeiro", Country: "Brazil", Type: domain.LocationTypeAirport},
	"GRU": {Name: "Sao Paulo Guarulhos Intl", City: "Sao Paulo", Country: "Brazil", Type: domain.LocationTypeAirport},
	"HKG": {Name: "Hong Kong Intl", City: "Hong Kong", Country: "Hong Kong", Type: domain.LocationTypeAirport},
	"HND": {Name: "Tokyo Haneda", City: "Tokyo", Country: "Japan", Type: domain.LocationTypeAirport},
	"IST": {Name: "Istanbul Airport", City: "Istanbul", Country: "Turkey", Type: domain.LocationTypeAirport},
	"JFK": {Name: "John F. Kennedy Intl", City: "New York", Country: "United States", Type: domain.LocationTypeAirport},
	"LAX": {Name: "Los Angeles Intl", City: "Los Angeles", Country: "United States", Type: domain.LocationTypeAirport},
	"LHR": {Name: "London Heathrow", City: "London", Country: "United Kingdom", Type: domain.LocationTypeAirport},
	"LIS": {Name: "Lisbon Humberto Delgado", City: "Lisbon", Country: "Portugal", Type: domain.LocationTypeAirport},
	"LON": {Name: "London", City: "London", Country: "United Kingdom", Type: domain.LocationTypeCity},
	"MAD": {Name: "Madrid Barajas", City: "Madrid", Country: "Spain", Type: domain.LocationTypeAirport},
	"MEX": {Name: "Mexico City Intl", City: "Mexico City", Country: "Mexico", Type: domain.LocationTypeAirport},
	"MIA": {Name: "Miami Intl", City: "Miami", Country: "United States", Type: domain.LocationTypeAirport},
	"NYC": {Name: "New York City", City: "New York", Country: "United States", Type: domain.LocationTypeCity},
	"ORD": {Name: "Chicago O'Hare Intl", City: "Chicago", Country: "United States", Type: domain.LocationTypeAirport},
	"PAR": {Name: "Paris", City: "Paris", Country: "France", Type: domain.LocationTypeCity},
	"ROM": {Name: "Rome", City: "Rome", Country: "Italy", Type: domain.LocationTypeCity},
	"SAO": {Name: "Sao Paulo", City: "Sao Paulo", Country: "Brazil", Type: domain.LocationTypeCity},
	"SEA": {Name: "Seattle-Tacoma Intl", City: "Seattle", Country: "United States", Type: domain.LocationTypeAirport},
	"SFO": {Name: "San Francisco Intl", City: "San Francisco", Country: "United States", Type: domain.LocationTypeAirport},
	"SIN": {Name: "Singapore Changi", City: "Singapore", Country: "Singapore", Type: domain.LocationTypeAirport},
	"SYD": {Name: "Sydney Kingsford Smith", City: "Sydney", Country: "Australia", Type: domain.LocationTypeAirport},
	"TYO": {Name: "Tokyo", City: "Tokyo", Country: "Japan", Type: domain.LocationTypeCity},
	"YYZ": {Name: "Toronto Pearson Intl", City: "Toronto", Country: "Canada", Type: domain.LocationTypeAirport},
}

// ResolveCity returns the city display name for an IATA code, echoing the
// code itself when unmapped so callers always have something to show.
func ResolveCity(code string) string {
	if place, ok := places[strings.ToUpper(code)]; ok {
		return place.City
	}
	return code
}

// Lookup returns the reference entry for an IATA code.
func Lookup(code string) (Place, bool) {
	place, ok := places[strings.ToUpper(code)]
	return place, ok
}

// Search filters the reference table by case-insensitive substring match on
// code, name, and city. Results are sorted by code for determinism.
func Search(keyword string) []domain.Location {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	if needle == "" {
		return nil
	}

	var results []domain.Location
	for code, place := range places {
		if !strings.Contains(strings.ToLower(code), needle) &&
			!strings.Contains(strings.ToLower(place.Name), needle) &&
			!strings.Contains(strings.ToLower(place.City), needle) {
			continue
		}
		results = append(results, domain.Location{
			Code:        code,
			Name:        place.Name,
			CityName:    place.City,
			CountryName: place.Country,
			Type:        place.Type,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Code < results[j].Code
	})
	return results
}
