package integration

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wanderly/travel-search-api/internal/usecase"
	"github.com/wanderly/travel-search-api/test/mock"
)

func TestConcurrentIdenticalQueriesAreDeduped(t *testing.T) {
	provider := mock.NewProvider().
		WithFlights(SampleFlights()).
		WithDelay(50 * time.Millisecond)
	server := NewTestServer(provider, &usecase.Config{DedupeInFlight: true})

	const parallel = 8
	var wg sync.WaitGroup
	codes := make([]int, parallel)

	for i := 0; i < parallel; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec := server.GET(t, "/api/v1/flights/search", flightParams())
			codes[i] = rec.Code
		}(i)
	}
	wg.Wait()

	for _, code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}
	assert.Equal(t, 1, provider.CallCount(), "identical in-flight queries share one upstream call")
}

func TestConcurrentDistinctQueriesAreNotDeduped(t *testing.T) {
	provider := mock.NewProvider().WithFlights(SampleFlights())
	server := NewTestServer(provider, &usecase.Config{DedupeInFlight: true})

	routes := []string{"2025-03-20", "2025-03-21", "2025-03-22"}
	var wg sync.WaitGroup
	for _, date := range routes {
		wg.Add(1)
		go func(date string) {
			defer wg.Done()
			params := flightParams()
			params.Set("departureDate", date)
			server.GET(t, "/api/v1/flights/search", params)
		}(date)
	}
	wg.Wait()

	assert.Equal(t, len(routes), provider.CallCount())
}
