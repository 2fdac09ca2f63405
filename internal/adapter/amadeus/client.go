// Package amadeus implements the domain.TravelDataProvider port against the
// metered travel-data API: OAuth2 client-credentials auth, the four query
// endpoints, and normalization of every upstream payload shape into the
// canonical domain records.
package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/wanderly/travel-search-api/internal/domain"
	"github.com/wanderly/travel-search-api/internal/infrastructure/retry"
	"github.com/wanderly/travel-search-api/internal/infrastructure/timeutil"
)

// DefaultTimeout bounds every upstream HTTP call. The source system left
// this to client defaults; a few seconds keeps a hung upstream from
// suspending a request indefinitely.
const DefaultTimeout = 5 * time.Second

// tokenExpirySlack refreshes the access token slightly before the upstream
// considers it expired.
const tokenExpirySlack = 30 * time.Second

// maxFlightOffers caps how many offers a single search requests upstream.
const maxFlightOffers = 20

// Config holds the upstream client settings.
type Config struct {
	// BaseURL is the upstream API root (e.g., "https://test.api.amadeus.com")
	BaseURL string

	// APIKey is the OAuth2 client ID
	APIKey string

	// APISecret is the OAuth2 client secret
	APISecret string

	// Timeout bounds each HTTP call (default: DefaultTimeout)
	Timeout time.Duration

	// Currency is the currency code requested for priced results
	Currency string
}

// Client is the travel-data API client. It is safe for concurrent use; the
// cached access token is refreshed under a mutex.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiSecret  string
	currency   string
	clock      timeutil.Clock
	log        zerolog.Logger

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewClient creates a Client with the given configuration.
func NewClient(cfg Config, clock timeutil.Clock, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	currency := cfg.Currency
	if currency == "" {
		currency = "USD"
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		currency:   currency,
		clock:      clock,
		log:        log,
	}
}

// SearchFlights implements domain.TravelDataProvider.
func (c *Client) SearchFlights(ctx context.Context, query domain.FlightQuery) ([]domain.Flight, error) {
	params := url.Values{}
	params.Set("originLocationCode", query.Origin)
	params.Set("destinationLocationCode", query.Destination)
	params.Set("departureDate", query.DepartureDate)
	if query.ReturnDate != "" {
		params.Set("returnDate", query.ReturnDate)
	}
	params.Set("adults", strconv.Itoa(query.Adults))
	params.Set("travelClass", query.CabinClass)
	params.Set("currencyCode", c.currency)
	params.Set("max", strconv.Itoa(maxFlightOffers))

	var doc flightOffersResponse
	if err := c.get(ctx, "flight-offers", "/v2/shopping/flight-offers", params, &doc); err != nil {
		return nil, err
	}
	return normalizeFlightOffers(doc.Data, c.clock.Now()), nil
}

// SearchHotels implements domain.TravelDataProvider.
func (c *Client) SearchHotels(ctx context.Context, query domain.HotelQuery) ([]domain.Hotel, error) {
	params := url.Values{}
	params.Set("cityCode", query.CityCode)
	params.Set("checkInDate", query.CheckInDate)
	params.Set("checkOutDate", query.CheckOutDate)
	params.Set("adults", strconv.Itoa(query.Adults))
	params.Set("roomQuantity", strconv.Itoa(query.Rooms))
	params.Set("currency", c.currency)

	var doc hotelOffersResponse
	if err := c.get(ctx, "hotel-offers", "/v2/shopping/hotel-offers", params, &doc); err != nil {
		return nil, err
	}
	return normalizeHotelOffers(doc.Data, c.clock.Now()), nil
}

// SearchLocations implements domain.TravelDataProvider.
func (c *Client) SearchLocations(ctx context.Context, query domain.LocationQuery) ([]domain.Location, error) {
	params := url.Values{}
	params.Set("keyword", query.Keyword)
	params.Set("subType", "AIRPORT,CITY")

	var doc locationsResponse
	if err := c.get(ctx, "locations", "/v1/reference-data/locations", params, &doc); err != nil {
		return nil, err
	}
	return normalizeLocations(doc.Data), nil
}

// InspireDestinations implements domain.TravelDataProvider.
func (c *Client) InspireDestinations(ctx context.Context, query domain.InspirationQuery) ([]domain.Inspiration, error) {
	params := url.Values{}
	params.Set("origin", query.Origin)

	var doc destinationsResponse
	if err := c.get(ctx, "flight-destinations", "/v1/shopping/flight-destinations", params, &doc); err != nil {
		return nil, err
	}
	return normalizeDestinations(doc), nil
}

// get performs an authenticated GET and decodes the JSON response into v.
func (c *Client) get(ctx context.Context, op, path string, params url.Values, v interface{}) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return domain.NewUpstreamError(op, 0, fmt.Errorf("acquire token: %w", err))
	}

	endpoint := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.NewUpstreamError(op, 0, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewUpstreamError(op, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.NewUpstreamError(op, resp.StatusCode,
			fmt.Errorf("%w: %s", domain.ErrUpstreamUnavailable, strings.TrimSpace(string(body))))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return domain.NewUpstreamError(op, resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// accessToken returns a valid bearer token, refreshing it when the cached
// one is near expiry. The token request retries with backoff since a
// transient auth failure would otherwise fail every query in flight.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	if c.token != "" && now.Before(c.tokenExpiry.Add(-tokenExpirySlack)) {
		return c.token, nil
	}

	tok, err := retry.DoWithResult(ctx, func() (tokenResponse, error) {
		return c.requestToken(ctx)
	}, retry.ProviderConfig)
	if err != nil {
		return "", err
	}

	c.token = tok.AccessToken
	c.tokenExpiry = now.Add(time.Duration(tok.ExpiresIn) * time.Second)

	c.log.Debug().Time("expires", c.tokenExpiry).Msg("Upstream access token refreshed")
	return c.token, nil
}

// requestToken performs the OAuth2 client-credentials grant.
func (c *Client) requestToken(ctx context.Context) (tokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.apiKey)
	form.Set("client_secret", c.apiSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return tokenResponse{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return tokenResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return tokenResponse{}, fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return tokenResponse{}, fmt.Errorf("decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return tokenResponse{}, errors.New("token endpoint returned empty access token")
	}
	return tok, nil
}

// Ensure Client implements the provider port at compile time.
var _ domain.TravelDataProvider = (*Client)(nil)
