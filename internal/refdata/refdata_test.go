package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderly/travel-search-api/internal/domain"
)

func TestResolveCity(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"mapped airport code", "GRU", "Sao Paulo"},
		{"mapped city code", "PAR", "Paris"},
		{"lowercase input", "jfk", "New York"},
		{"unmapped code echoes itself", "XXX", "XXX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveCity(tt.code))
		})
	}
}

func TestSearchMatchesCityCodeAndName(t *testing.T) {
	results := Search("sao")

	require.NotEmpty(t, results)
	codes := make([]string, 0, len(results))
	for _, loc := range results {
		codes = append(codes, loc.Code)
	}
	assert.Contains(t, codes, "GRU")
	assert.Contains(t, codes, "SAO")

	for _, loc := range results {
		assert.NotEmpty(t, loc.CityName)
		assert.Contains(t, []string{domain.LocationTypeAirport, domain.LocationTypeCity}, loc.Type)
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, Search("LONDON"), Search("london"))
}

func TestSearchByCode(t *testing.T) {
	results := Search("lhr")

	require.Len(t, results, 1)
	assert.Equal(t, "LHR", results[0].Code)
	assert.Equal(t, "London", results[0].CityName)
}

func TestSearchSortedByCode(t *testing.T) {
	results := Search("a")
	for i := 1; i < len(results); i++ {
		assert.Less(t, results[i-1].Code, results[i].Code)
	}
}

func TestSearchNoMatch(t *testing.T) {
	assert.Empty(t, Search("zzzz"))
	assert.Empty(t, Search("   "))
}

func TestLookup(t *testing.T) {
	place, ok := Lookup("GRU")
	require.True(t, ok)
	assert.Equal(t, "Sao Paulo", place.City)
	assert.Equal(t, "Brazil", place.Country)

	_, ok = Lookup("QQQ")
	assert.False(t, ok)
}
